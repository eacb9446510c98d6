package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"context"
)

// MailSender delivers one rendered e-mail and returns the provider message id
type MailSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}
