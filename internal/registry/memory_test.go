package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

func TestMemoryPutGetDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	session := &model.InterviewSession{ID: "s1", Domain: "Engineering"}
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Domain != "Engineering" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestMemoryGetUnknownSession(t *testing.T) {
	store := NewMemory()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryDeleteUnknownSessionIsNoop(t *testing.T) {
	store := NewMemory()
	if err := store.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of unknown session must be a no-op, got %v", err)
	}
}

func TestMemoryPutOverwrites(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Put(ctx, &model.InterviewSession{ID: "s1", Domain: "HR"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put(ctx, &model.InterviewSession{ID: "s1", Domain: "Engineering"}); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Domain != "Engineering" {
		t.Fatalf("expected overwritten session, got %+v", got)
	}
}
