package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Publisher sends notification messages to a queue backend.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Noop drops every message. Used when no queue is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Message) error { return nil }

type sqsSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends notification messages to AWS SQS.
type SQSPublisher struct {
	client   sqsSender
	queueURL string
}

// NewSQSPublisher constructs an SQS-backed publisher for queueURL.
func NewSQSPublisher(ctx context.Context, region, queueURL string) (*SQSPublisher, error) {
	queueURL = strings.TrimSpace(queueURL)
	if queueURL == "" {
		return nil, errors.New("CONTACT_QUEUE_URL is required")
	}
	cfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &SQSPublisher{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// Publish delivers a message to the configured queue. Messages for the same
// contact share a deduplication id so FIFO queues drop replays.
func (p *SQSPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("encode sqs message: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
	}
	if strings.HasSuffix(p.queueURL, ".fifo") {
		input.MessageGroupId = aws.String(msg.Type)
		input.MessageDeduplicationId = aws.String(msg.ContactID)
	}
	if _, err := p.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("sqs send message: %w", err)
	}
	return nil
}

var (
	_ Publisher = (*SQSPublisher)(nil)
	_ Publisher = Noop{}
)
