package mail

import (
	"campaign-intake/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resendlabs/resend-go"
)

var ErrMissingAPIKey = errors.New("resend api key is required")

// ResendClient sends transactional e-mail through Resend
type ResendClient struct {
	client  *resend.Client
	replyTo string
	logger  *observability.Logger
}

// Option customises a ResendClient
type Option func(*ResendClient)

// WithReplyTo sets the Reply-To address of every outgoing message
func WithReplyTo(address string) Option {
	return func(c *ResendClient) {
		c.replyTo = address
	}
}

func NewResendClient(apiKey string, logger *observability.Logger, opts ...Option) (*ResendClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := &ResendClient{
		client: resend.NewClient(apiKey),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SendEmail sends one HTML message and returns Resend's message id
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
		ReplyTo: c.replyTo,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "email_id", Value: res.Id})
	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
