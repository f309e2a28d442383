package model

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// emailPattern is the basic local@domain.tld shape the contact form has
// always accepted. Intentionally loose.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Contact is a message submitted via the public contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims name and email and lowercases the email.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

// Validate checks required fields and the email shape.
func (c *Contact) Validate() error {
	return validate("Contact", []constraint{
		{"name", "Name is required", c.Name != ""},
		{"email", "Email is required", c.Email != ""},
		{"email", "Please enter a valid email", c.Email == "" || emailPattern.MatchString(c.Email)},
		{"message", "Message is required", c.Message != ""},
	})
}
