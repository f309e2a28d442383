package service

import (
	"context"
	"time"

	"github.com/devportfolio/backend/internal/model"
	"github.com/devportfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit normalizes and validates the message, forces isRead to false and
// stamps timestamps before persisting. Whatever the caller put in IsRead is
// discarded.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.IsRead = false
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.repo.Save(ctx, c)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
