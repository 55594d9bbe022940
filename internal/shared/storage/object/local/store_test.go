package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"portfolio-backend/internal/shared/storage/object"
)

func TestSaveWithKeyOverwritesAndOpens(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, err := store.SaveWithKey(ctx, "manish-cv.pdf", "application/pdf", bytes.NewReader([]byte("first"))); err != nil {
		t.Fatalf("first save: %v", err)
	}
	n, err := store.SaveWithKey(ctx, "manish-cv.pdf", "application/pdf", bytes.NewReader([]byte("%PDF-second")))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if n != int64(len("%PDF-second")) {
		t.Fatalf("unexpected size %d", n)
	}

	rc, err := store.Open(ctx, "manish-cv.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "%PDF-second" {
		t.Fatalf("expected overwritten content, got %q", got)
	}
}

func TestOpenMissingReturnsErrNotFound(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "omkar-cv.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.SaveWithKey(context.Background(), "../escape.pdf", "application/pdf", bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}

func TestReadAll(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()
	if _, err := store.SaveWithKey(ctx, "cv/manish-cv.pdf", "application/pdf", bytes.NewReader([]byte("%PDF-1.4"))); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := object.ReadAll(ctx, store, "cv/manish-cv.pdf")
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if string(data) != "%PDF-1.4" {
		t.Fatalf("unexpected data %q", data)
	}
}
