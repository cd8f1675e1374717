package mail

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
)

// Email is one outbound transactional message.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender dispatches a single email and returns the provider's message id.
// Implementations do not retry; a failed send is terminal for the request
// that triggered it.
type Sender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// ResendSender sends through the Resend API.
type ResendSender struct {
	apiKey string
	client *resend.Client
}

// NewResendSender builds a sender for the given API key. An empty key is
// tolerated at construction and rejected at send time, so a misconfigured
// deployment fails per request rather than at startup.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{apiKey: apiKey, client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(ctx context.Context, email Email) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("RESEND_API_KEY is not configured")
	}
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
