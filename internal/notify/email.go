package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Email is a plain-text message addressed to the site owner.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Sender delivers emails.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender delivers emails through Amazon SES v2.
type SESSender struct {
	client sesAPI
	from   string
}

// NewSESSender constructs an SES sender using from as the verified source address.
func NewSESSender(ctx context.Context, region, from string) (*SESSender, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, errors.New("NOTIFY_EMAIL_FROM is required")
	}
	cfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &SESSender{client: sesv2.NewFromConfig(cfg), from: from}, nil
}

func (s *SESSender) Send(ctx context.Context, email Email) error {
	if strings.TrimSpace(email.To) == "" {
		return errors.New("missing recipient")
	}
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &sestypes.Destination{ToAddresses: []string{email.To}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(email.Subject), Charset: aws.String("UTF-8")},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(email.Text), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if email.ReplyTo != "" {
		input.ReplyToAddresses = []string{email.ReplyTo}
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}

var _ Sender = (*SESSender)(nil)
