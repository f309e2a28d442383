package service

import (
	"context"

	"github.com/devportfolio/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)

	// GetByID returns one project or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// Create validates and stores a new project. ID and timestamps are
	// populated by the implementation.
	Create(ctx context.Context, p *model.Project) error

	// Update merges the patch into the stored project, re-validates the
	// merged document and persists it, returning the updated project.
	Update(ctx context.Context, id string, patch *model.ProjectPatch) (*model.Project, error)

	// Delete removes a project by id.
	Delete(ctx context.Context, id string) error
}
