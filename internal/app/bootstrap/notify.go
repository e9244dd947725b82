package bootstrap

import (
	"context"
	"fmt"

	appconfig "github.com/flexora/physio-booking/internal/config"
	"github.com/flexora/physio-booking/internal/notify"
	"github.com/flexora/physio-booking/pkg/logging"
)

// BuildEmailSender selects the staff email transport from EMAIL_PROVIDER.
// A provider missing its credentials degrades to the stub sender.
func BuildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, error) {
	if logger == nil {
		logger = logging.Default()
	}
	switch cfg.EmailProvider {
	case "", "none":
		return notify.NewStubEmailSender(logger), nil
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			logger.Warn("SENDGRID_API_KEY not set, staff emails disabled")
			return notify.NewStubEmailSender(logger), nil
		}
		return sender, nil
	case "ses":
		client, err := notify.NewSESClient(ctx, notify.AWSConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.AWSEndpointOverride,
		})
		if err != nil {
			return nil, err
		}
		return notify.NewSESSender(client, notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger), nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}
