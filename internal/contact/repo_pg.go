package contact

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new contact message.
func (r *PGRepo) Create(ctx context.Context, msg Message) (Message, error) {
	const query = `
INSERT INTO contact_messages (
    id,
    name,
    email,
    subject,
    message
) VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

	err := r.DB.QueryRowContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

// MarkNotified records when the owner was emailed about a message.
func (r *PGRepo) MarkNotified(ctx context.Context, id string, at time.Time) error {
	const query = `
UPDATE contact_messages
SET notified_at = $2
WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
