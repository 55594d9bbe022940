package contact

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	data  map[string]Message
	now   func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Message),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) Create(ctx context.Context, msg Message) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.CreatedAt = r.now()
	r.data[msg.ID] = msg
	r.order = append(r.order, msg.ID)
	return msg, nil
}

func (r *MemoryRepo) MarkNotified(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	msg.NotifiedAt = &at
	r.data[id] = msg
	return nil
}

// List returns stored messages in insertion order.
func (r *MemoryRepo) List() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.data[id])
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
