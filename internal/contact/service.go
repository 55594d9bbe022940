package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service validates and records contact submissions.
type Service struct {
	Repo      Repo
	Publisher notify.Publisher
	NewID     func() string
}

// NewService wires a Service. A nil publisher disables notifications.
func NewService(repo Repo, publisher notify.Publisher) *Service {
	if publisher == nil {
		publisher = notify.Noop{}
	}
	return &Service{
		Repo:      repo,
		Publisher: publisher,
		NewID:     uuid.NewString,
	}
}

// Normalize trims every field and lower-cases the email, then validates the result.
func Normalize(in Input) (Input, error) {
	out := Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if out.Name == "" || out.Email == "" || out.Subject == "" || out.Message == "" {
		return Input{}, ErrMissingFields
	}
	if !emailPattern.MatchString(out.Email) {
		return Input{}, ErrInvalidEmail
	}
	return out, nil
}

// Submit stores one message per call and publishes a best-effort notification.
func (s *Service) Submit(ctx context.Context, in Input, requestID string) (Message, error) {
	clean, err := Normalize(in)
	if err != nil {
		return Message{}, err
	}

	msg, err := s.Repo.Create(ctx, Message{
		ID:      s.NewID(),
		Name:    clean.Name,
		Email:   clean.Email,
		Subject: clean.Subject,
		Message: clean.Message,
	})
	if err != nil {
		metrics.IncContactFailed()
		return Message{}, fmt.Errorf("store contact message: %w", err)
	}
	metrics.IncContactCreated()
	telemetry.Info("contact.created", map[string]any{"contact_id": msg.ID, "request_id": requestID})

	note := notify.ContactCreated(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt, requestID)
	if err := s.Publisher.Publish(ctx, note); err != nil {
		telemetry.Warn("contact.notify.publish_failed", map[string]any{
			"contact_id": msg.ID,
			"request_id": requestID,
			"error":      err.Error(),
		})
	}
	return msg, nil
}
