package workerproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/notify"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{BodyLen: 0, BodySHA: ""}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrMissingContactID indicates a notification without a contact id.
type ErrMissingContactID struct {
	Meta      MessageMeta
	RequestID string
}

func (e ErrMissingContactID) Error() string { return "missing contact id" }

// ErrProcess indicates processing failed after successful parsing.
type ErrProcess struct {
	ContactID string
	RequestID string
	Err       error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process notification"
	}
	return "process notification: " + e.Err.Error()
}

func (e ErrProcess) Unwrap() error { return e.Err }

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (notify.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return notify.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := notify.DecodeMessage([]byte(body))
	if err != nil {
		return notify.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if strings.TrimSpace(msg.ContactID) == "" {
		return msg, meta, ErrMissingContactID{Meta: meta, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

type parsedMessageKey struct{}

// WithParsedMessage stores a decoded message in the context for reuse.
func WithParsedMessage(ctx context.Context, msg notify.Message) context.Context {
	return context.WithValue(ctx, parsedMessageKey{}, msg)
}

func parsedMessageFromContext(ctx context.Context) (notify.Message, bool) {
	if ctx == nil {
		return notify.Message{}, false
	}
	msg, ok := ctx.Value(parsedMessageKey{}).(notify.Message)
	return msg, ok
}

// IsUnrecoverable reports whether a message can never succeed and should be
// removed from the queue instead of retried.
func IsUnrecoverable(err error) bool {
	var (
		empty   ErrEmptyBody
		decode  ErrDecode
		missing ErrMissingContactID
	)
	return errors.As(err, &empty) || errors.As(err, &decode) || errors.As(err, &missing)
}

// HandleMessage parses, validates, and processes a message payload.
func HandleMessage(ctx context.Context, app *bootstrap.App, body string) error {
	if app == nil || app.NotifyProcessor == nil {
		return errors.New("notification processor not configured")
	}

	msg, ok := parsedMessageFromContext(ctx)
	if !ok {
		var err error
		msg, _, err = ParseMessage(body)
		if err != nil {
			return err
		}
	}

	if strings.TrimSpace(msg.ContactID) == "" {
		return ErrMissingContactID{Meta: ComputeMeta(body), RequestID: msg.RequestID}
	}

	if err := app.NotifyProcessor.Process(ctx, msg); err != nil {
		return ErrProcess{ContactID: msg.ContactID, RequestID: msg.RequestID, Err: err}
	}
	return nil
}
