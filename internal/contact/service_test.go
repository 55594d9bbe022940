package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/notify"
)

type capturePublisher struct {
	msgs []notify.Message
	err  error
}

func (c *capturePublisher) Publish(_ context.Context, msg notify.Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

type failingRepo struct{ err error }

func (f failingRepo) Create(context.Context, Message) (Message, error) { return Message{}, f.err }
func (f failingRepo) MarkNotified(context.Context, string, time.Time) error {
	return f.err
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantErr error
	}{
		{name: "valid", in: Input{Name: " Jane ", Email: " Jane@X.com ", Subject: "Hi", Message: "Hello"}},
		{name: "missing name", in: Input{Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, wantErr: ErrMissingFields},
		{name: "blank message", in: Input{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "   "}, wantErr: ErrMissingFields},
		{name: "no at sign", in: Input{Name: "Jane", Email: "not-an-email", Subject: "Hi", Message: "Hello"}, wantErr: ErrInvalidEmail},
		{name: "no tld", in: Input{Name: "Jane", Email: "jane@x", Subject: "Hi", Message: "Hello"}, wantErr: ErrInvalidEmail},
		{name: "inner space", in: Input{Name: "Jane", Email: "ja ne@x.com", Subject: "Hi", Message: "Hello"}, wantErr: ErrInvalidEmail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Jane", got.Name)
			assert.Equal(t, "jane@x.com", got.Email)
		})
	}
}

func TestSubmitStoresOneRowAndPublishes(t *testing.T) {
	repo := NewMemoryRepo()
	pub := &capturePublisher{}
	svc := NewService(repo, pub)
	svc.NewID = func() string { return "fixed-id" }

	msg, err := svc.Submit(context.Background(), Input{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, "req-1")

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	require.Len(t, repo.List(), 1)
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, notify.TypeContactCreated, pub.msgs[0].Type)
	assert.Equal(t, "fixed-id", pub.msgs[0].ContactID)
	assert.Equal(t, "req-1", pub.msgs[0].RequestID)
}

func TestSubmitInvalidInputStoresNothing(t *testing.T) {
	repo := NewMemoryRepo()
	pub := &capturePublisher{}
	svc := NewService(repo, pub)

	_, err := svc.Submit(context.Background(), Input{Name: "Jane", Email: "jane@x.com"}, "")

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, repo.List())
	assert.Empty(t, pub.msgs)
}

func TestSubmitPublishFailureIsNotFatal(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, &capturePublisher{err: errors.New("queue down")})

	_, err := svc.Submit(context.Background(), Input{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, "")

	require.NoError(t, err)
	assert.Len(t, repo.List(), 1)
}

func TestSubmitStoreFailureWraps(t *testing.T) {
	sentinel := errors.New("connection refused")
	pub := &capturePublisher{}
	svc := NewService(failingRepo{err: sentinel}, pub)

	_, err := svc.Submit(context.Background(), Input{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}, "")

	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, pub.msgs)
}

func TestMemoryRepoMarkNotified(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Create(context.Background(), Message{ID: "c-1"})
	require.NoError(t, err)

	at := time.Now().UTC()
	require.NoError(t, repo.MarkNotified(context.Background(), "c-1", at))
	assert.ErrorIs(t, repo.MarkNotified(context.Background(), "nope", at), ErrNotFound)

	stored := repo.List()[0]
	require.NotNil(t, stored.NotifiedAt)
	assert.True(t, stored.NotifiedAt.Equal(at))
}
