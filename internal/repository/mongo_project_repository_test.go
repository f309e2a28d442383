package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devportfolio/backend/internal/model"
)

func TestMongoProjectRepository_CRUD(t *testing.T) {
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

	repo := NewMongoProjectRepository(db)

	older := &model.Project{
		Title:        "Old Project",
		Description:  "first",
		Image:        "https://example.com/old.png",
		Technologies: []string{"Go"},
		Category:     model.CategoryBackend,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
		UpdatedAt:    time.Now().UTC().Add(-time.Hour),
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if older.ID.IsZero() {
		t.Error("expected ID to be set after Create")
	}

	newer := &model.Project{
		Title:        "New Project",
		Description:  "second",
		Image:        "https://example.com/new.png",
		Technologies: []string{"Go", "MongoDB"},
		Category:     model.CategoryFullstack,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	projects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "New Project" {
		t.Errorf("expected newest first, got %q", projects[0].Title)
	}

	got, err := repo.GetByID(ctx, older.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Old Project" {
		t.Errorf("expected title %q, got %q", "Old Project", got.Title)
	}

	got.Description = "rewritten"
	got.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	reread, err := repo.GetByID(ctx, older.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID after update failed: %v", err)
	}
	if reread.Description != "rewritten" {
		t.Errorf("expected updated description, got %q", reread.Description)
	}

	if err := repo.Delete(ctx, older.ID.Hex()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, older.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMongoProjectRepository_GetByID_MalformedID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := Connect(ctx, "mongodb://localhost:27017")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := NewMongoProjectRepository(client.Database("devportfolio_test_malformed"))

	_, err = repo.GetByID(ctx, "definitely-not-an-object-id")
	if err == nil {
		t.Fatal("expected error for malformed id")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("malformed id must not map to ErrNotFound")
	}
}
