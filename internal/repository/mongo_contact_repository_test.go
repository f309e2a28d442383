package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devportfolio/backend/internal/model"
)

func TestMongoContactRepository_SaveListMarkReadDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := Connect(ctx, "mongodb://localhost:27017")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	dbName := fmt.Sprintf("devportfolio_test_%d", time.Now().UnixNano())
	db := client.Database(dbName)
	defer func() { _ = db.Drop(ctx) }()

	repo := NewMongoContactRepository(db)

	first := &model.Contact{
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "hello",
		CreatedAt: time.Now().UTC().Add(-time.Minute),
		UpdatedAt: time.Now().UTC().Add(-time.Minute),
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("expected ID to be set after Save")
	}

	second := &model.Contact{
		Name:      "Grace",
		Email:     "grace@example.com",
		Message:   "hi",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	messages, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Email != "grace@example.com" {
		t.Errorf("expected newest first, got %q", messages[0].Email)
	}

	updated, err := repo.MarkRead(ctx, first.ID.Hex())
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !updated.IsRead {
		t.Error("expected isRead=true after MarkRead")
	}

	// Idempotent: a second call succeeds and stays read.
	updated, err = repo.MarkRead(ctx, first.ID.Hex())
	if err != nil {
		t.Fatalf("second MarkRead failed: %v", err)
	}
	if !updated.IsRead {
		t.Error("expected isRead=true after repeated MarkRead")
	}

	if err := repo.Delete(ctx, first.ID.Hex()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, first.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMongoContactRepository_MarkRead_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := Connect(ctx, "mongodb://localhost:27017")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	dbName := fmt.Sprintf("devportfolio_test_%d", time.Now().UnixNano())
	db := client.Database(dbName)
	defer func() { _ = db.Drop(ctx) }()

	repo := NewMongoContactRepository(db)

	if _, err := repo.MarkRead(ctx, "64b7f0f0f0f0f0f0f0f0f0f0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.MarkRead(ctx, "not-a-hex-id"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected malformed-id error distinct from ErrNotFound, got %v", err)
	}
}
