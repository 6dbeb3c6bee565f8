package email

import (
	"context"
	"fmt"

	"github.com/motibot/motibot/internal/config"
)

// NewSender builds the Sender selected by the email.provider setting.
func NewSender(ctx context.Context, cfg *config.Config) (Sender, error) {
	switch cfg.Email.Provider {
	case "", "smtp":
		return NewSMTPSender(cfg.SMTP, cfg.Email.SenderName), nil
	case "gmail":
		return NewGmailSender(ctx, cfg.Email.Gmail, cfg.Email.SenderName)
	default:
		return nil, fmt.Errorf("unknown email provider: %q", cfg.Email.Provider)
	}
}
