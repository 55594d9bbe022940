package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsStoreTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := Message{ID: "c-1", Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}

	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), msg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at %s, got %s", created, got.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreatePropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sentinel := errors.New("relation does not exist")
	mock.ExpectQuery("INSERT INTO contact_messages").WillReturnError(sentinel)

	_, err = (&PGRepo{DB: db}).Create(context.Background(), Message{ID: "c-1"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestPGRepoMarkNotified(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	at := time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE contact_messages").
		WithArgs("c-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE contact_messages").
		WithArgs("missing", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkNotified(context.Background(), "c-1", at); err != nil {
		t.Fatalf("MarkNotified: %v", err)
	}
	if err := repo.MarkNotified(context.Background(), "missing", at); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
