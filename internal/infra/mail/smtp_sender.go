// Package mail implements outbound mail delivery for domain services.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

const verificationBody = `<html><body>
<p>Welcome!</p>
<p>Please confirm your email address by following the link below.</p>
<p><a href="%s">Verify email</a></p>
</body></html>`

// smtpSender is a concrete implementation of the MailSender interface using SMTP.
type smtpSender struct {
	client        *gomail.Client
	from          string
	fromName      string
	verifyBaseURL string
}

// NewSMTPSender is the constructor for smtpSender.
// Authentication is optional so local development can point at an open relay.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpSender{
		client:        client,
		from:          cfg.SMTP.From,
		fromName:      cfg.SMTP.FromName,
		verifyBaseURL: strings.TrimRight(cfg.SMTP.VerifyBaseURL, "/"),
	}, nil
}

// SendVerificationMail sends the email ownership confirmation link to the recipient.
func (s *smtpSender) SendVerificationMail(ctx context.Context, recipient, token string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return errors.Wrap(err, "set mail sender")
	}
	if err := msg.To(recipient); err != nil {
		return errors.Wrap(err, "set mail recipient")
	}

	link := fmt.Sprintf("%s/verify_email?token=%s", s.verifyBaseURL, url.QueryEscape(token))
	msg.Subject("Confirm your email")
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(verificationBody, link))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send verification mail")
	}

	return nil
}
