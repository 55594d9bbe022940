package contact

import (
	"context"
	"time"
)

// Repo defines persistence operations for contact messages.
type Repo interface {
	// Create stores msg and returns it with the store-assigned created_at.
	Create(ctx context.Context, msg Message) (Message, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
