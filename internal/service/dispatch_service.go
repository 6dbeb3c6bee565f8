package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/email"
	"github.com/motibot/motibot/internal/logger"
	"github.com/motibot/motibot/internal/quote"
)

// Dispatch errors
var (
	// ErrNoRecipient means neither the trigger nor the configuration
	// yields a recipient address.
	ErrNoRecipient = errors.New("no recipient email found")
	// ErrAllDeliveriesFailed means every recipient's send failed.
	ErrAllDeliveriesFailed = errors.New("all deliveries failed")
)

// SendOutcome records the result of one recipient's send attempt.
type SendOutcome struct {
	Recipient string
	Err       error
}

// DispatchResult aggregates one invocation: the generated quote and the
// per-recipient outcomes, in send order.
type DispatchResult struct {
	Quote    string
	Outcomes []SendOutcome
}

// Delivered returns the addresses that were successfully sent to, in order.
func (r *DispatchResult) Delivered() []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Err == nil {
			out = append(out, o.Recipient)
		}
	}
	return out
}

// DispatchService composes quote generation, rendering, and delivery into a
// single generate-and-broadcast operation. It is invoked identically by the
// HTTP trigger and the daily scheduler.
type DispatchService struct {
	gen    quote.Generator
	sender email.Sender
	cfg    *config.Config
	log    *logger.Logger
	now    func() time.Time
}

// NewDispatchService creates a new DispatchService.
func NewDispatchService(gen quote.Generator, sender email.Sender, cfg *config.Config, log *logger.Logger) *DispatchService {
	return &DispatchService{
		gen:    gen,
		sender: sender,
		cfg:    cfg,
		log:    log.WithComponent("dispatch"),
		now:    time.Now,
	}
}

// Dispatch resolves recipients, generates one quote, renders the email once,
// and sends it to each recipient in turn. A failed send is logged and
// recorded without aborting the remaining sends; the invocation fails only
// when no recipient could be resolved, the quote could not be generated, or
// every delivery failed.
func (s *DispatchService) Dispatch(ctx context.Context, overrideEmail string) (*DispatchResult, error) {
	recipients := s.resolveRecipients(overrideEmail)
	if len(recipients) == 0 {
		return nil, ErrNoRecipient
	}

	// One quote per invocation, broadcast to every recipient.
	text, err := s.gen.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote: %w", err)
	}

	now := s.now()
	msg := email.Message{
		Subject:  email.Subject,
		TextBody: email.MotivationEmailText(text),
		HTMLBody: email.MotivationEmailHTML(text, s.cfg.Email.SenderName, now),
	}

	result := &DispatchResult{Quote: text}
	failures := 0
	for _, to := range recipients {
		msg.To = to
		err := s.sender.Send(ctx, msg)
		if err != nil {
			failures++
			s.log.Error().Err(err).Str("recipient", to).Msg("delivery failed")
		} else {
			s.log.Info().Str("recipient", to).Msg("email sent")
		}
		result.Outcomes = append(result.Outcomes, SendOutcome{Recipient: to, Err: err})
	}

	if failures == len(recipients) {
		return result, ErrAllDeliveriesFailed
	}
	return result, nil
}

// resolveRecipients applies the recipient-resolution rule: a trigger override
// wins outright; otherwise the configured list (with its legacy single-field
// fallback) is used.
func (s *DispatchService) resolveRecipients(overrideEmail string) []string {
	if overrideEmail != "" {
		return []string{overrideEmail}
	}
	return s.cfg.Recipients()
}
