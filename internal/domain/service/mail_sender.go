package service

import "context"

// MailSender delivers transactional mail. Send failures are reported to the
// caller but never abort the business operation that triggered the send.
type MailSender interface {
	// SendVerificationMail sends the email ownership confirmation link to the
	// recipient. The token rides along as a query parameter of the link.
	SendVerificationMail(ctx context.Context, recipient, token string) error
}
