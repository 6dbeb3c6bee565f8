package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/motibot/motibot/internal/config"
)

// SMTPSender implements Sender over a plain SMTP session upgraded with
// STARTTLS. Each send opens and tears down its own connection; there is no
// pooling or reuse, which is fine at daily cadence.
type SMTPSender struct {
	cfg        config.SMTPConfig
	senderName string
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg config.SMTPConfig, senderName string) *SMTPSender {
	return &SMTPSender{cfg: cfg, senderName: senderName}
}

// Send transmits the message over a fresh STARTTLS-authenticated session.
// The context is checked before dialing; net/smtp itself is not
// context-aware, so an in-flight session runs to completion.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrMissingCredentials
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := smtp.Dial(s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("smtp: failed to connect to %s: %w", s.cfg.Addr(), err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return fmt.Errorf("smtp: STARTTLS failed: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp: authentication failed: %w", err)
	}

	if err := c.Mail(s.cfg.User); err != nil {
		return fmt.Errorf("smtp: MAIL FROM failed: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp: RCPT TO %s failed: %w", msg.To, err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA failed: %w", err)
	}
	raw := buildMIME(formatFrom(s.senderName, s.cfg.User), msg)
	if _, err := w.Write([]byte(raw)); err != nil {
		return fmt.Errorf("smtp: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: failed to finish message: %w", err)
	}

	return c.Quit()
}
