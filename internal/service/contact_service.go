package service

import (
	"context"

	"github.com/devportfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form messages.
type ContactService interface {
	// Submit validates and stores a new contact message. isRead always
	// starts false; ID and timestamps are populated by the implementation.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns all contact messages, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// MarkRead sets isRead=true on one message and returns the updated
	// document. Idempotent.
	MarkRead(ctx context.Context, id string) (*model.Contact, error)

	// Delete removes a contact message by id.
	Delete(ctx context.Context, id string) error
}
