package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories accepted by the schema.
const (
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryFullstack = "fullstack"
	CategoryMobile    = "mobile"
)

var projectCategories = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryFullstack,
	CategoryMobile,
}

// Project is one portfolio entry. Timestamps are server-assigned and never
// taken from the client.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Image        string             `bson:"image" json:"image"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	GithubLink   string             `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	LiveLink     string             `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	Category     string             `bson:"category" json:"category"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims the title and applies the category default. Runs before
// Validate on every write path.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Category == "" {
		p.Category = CategoryFrontend
	}
}

// Validate checks the schema constraints: required fields and enum
// membership. Returns a *ValidationError naming every violated field.
func (p *Project) Validate() error {
	return validate("Project", []constraint{
		{"title", "Project title is required", p.Title != ""},
		{"description", "Project description is required", p.Description != ""},
		{"image", "Project image URL is required", p.Image != ""},
		{"technologies", "Path `technologies` is required", len(p.Technologies) > 0},
		{"category", "`" + p.Category + "` is not a valid enum value for path `category`", validCategory(p.Category)},
	})
}

func validCategory(c string) bool {
	for _, v := range projectCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ProjectPatch carries the fields a partial update may change. A nil field
// means "leave the stored value alone"; timestamps and the id are not
// patchable at all.
type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	GithubLink   *string   `json:"githubLink"`
	LiveLink     *string   `json:"liveLink"`
	Category     *string   `json:"category"`
}

// Apply overlays the patch onto p. Validation runs afterwards on the merged
// document, not here.
func (patch *ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.GithubLink != nil {
		p.GithubLink = *patch.GithubLink
	}
	if patch.LiveLink != nil {
		p.LiveLink = *patch.LiveLink
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}
