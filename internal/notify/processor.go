package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// ErrNotConfigured is returned when no sender or recipient is available.
var ErrNotConfigured = errors.New("notification sender not configured")

// Marker records that a contact message was delivered to the owner.
type Marker interface {
	MarkNotified(ctx context.Context, id string, at time.Time) error
}

// Processor turns queued contact notifications into owner emails.
type Processor struct {
	Sender Sender
	Marker Marker
	To     string
	Now    func() time.Time
}

// Process sends the email for msg. Marking the row as notified is best-effort:
// a failure there must not cause the email to be resent.
func (p *Processor) Process(ctx context.Context, msg Message) error {
	if p == nil || p.Sender == nil || strings.TrimSpace(p.To) == "" {
		return ErrNotConfigured
	}
	if msg.Type != TypeContactCreated {
		return fmt.Errorf("unsupported message type %q", msg.Type)
	}

	if err := p.Sender.Send(ctx, BuildEmail(p.To, msg)); err != nil {
		metrics.IncNotifyFailed()
		return err
	}
	metrics.IncNotifySent()

	if p.Marker != nil && msg.ContactID != "" {
		if err := p.Marker.MarkNotified(ctx, msg.ContactID, p.now()); err != nil {
			telemetry.Warn("notify.mark_failed", map[string]any{
				"contact_id": msg.ContactID,
				"request_id": msg.RequestID,
				"error":      err.Error(),
			})
		}
	}
	telemetry.Info("notify.sent", map[string]any{"contact_id": msg.ContactID, "request_id": msg.RequestID})
	return nil
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

// BuildEmail renders the owner notification for a contact message.
func BuildEmail(to string, msg Message) Email {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.Name, msg.Email)
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	if msg.CreatedAt != "" {
		fmt.Fprintf(&b, "Received: %s\n", msg.CreatedAt)
	}
	b.WriteString("\n")
	b.WriteString(msg.Body)
	b.WriteString("\n")

	return Email{
		To:      to,
		ReplyTo: msg.Email,
		Subject: "New contact message: " + msg.Subject,
		Text:    b.String(),
	}
}
