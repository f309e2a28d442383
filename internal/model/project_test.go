package model

import (
	"errors"
	"strings"
	"testing"
)

func validProject() *Project {
	return &Project{
		Title:        "Portfolio Site",
		Description:  "A personal portfolio",
		Image:        "https://example.com/shot.png",
		Technologies: []string{"Go", "MongoDB"},
		Category:     CategoryFullstack,
	}
}

func TestProject_Validate_OK(t *testing.T) {
	p := validProject()
	p.Normalize()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProject_Validate_MissingTitle(t *testing.T) {
	p := validProject()
	p.Title = "   "
	p.Normalize()

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(ve.Error(), "Project title is required") {
		t.Errorf("unexpected message: %q", ve.Error())
	}
}

func TestProject_Validate_MissingRequiredFields(t *testing.T) {
	p := &Project{}
	p.Normalize()

	err := p.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	// title, description, image, technologies all missing; category defaulted
	if len(ve.Fields) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func TestProject_Validate_BadCategory(t *testing.T) {
	p := validProject()
	p.Category = "desktop"
	p.Normalize()

	err := p.Validate()
	if err == nil {
		t.Fatal("expected enum error, got nil")
	}
	if !strings.Contains(err.Error(), "`desktop` is not a valid enum value") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestProject_Normalize_DefaultsCategory(t *testing.T) {
	p := validProject()
	p.Category = ""
	p.Normalize()
	if p.Category != CategoryFrontend {
		t.Errorf("expected default category %q, got %q", CategoryFrontend, p.Category)
	}
}

func TestProject_Normalize_TrimsTitle(t *testing.T) {
	p := validProject()
	p.Title = "  My App  "
	p.Normalize()
	if p.Title != "My App" {
		t.Errorf("expected trimmed title, got %q", p.Title)
	}
}

func TestProjectPatch_Apply_PartialFields(t *testing.T) {
	p := validProject()
	title := "Renamed"
	live := "https://live.example.com"
	patch := &ProjectPatch{Title: &title, LiveLink: &live}

	patch.Apply(p)

	if p.Title != "Renamed" {
		t.Errorf("expected patched title, got %q", p.Title)
	}
	if p.LiveLink != live {
		t.Errorf("expected patched live link, got %q", p.LiveLink)
	}
	if p.Description != "A personal portfolio" {
		t.Errorf("unpatched field changed: %q", p.Description)
	}
	if p.Category != CategoryFullstack {
		t.Errorf("unpatched category changed: %q", p.Category)
	}
}

func TestProjectPatch_Apply_EmptyValueStillApplies(t *testing.T) {
	p := validProject()
	empty := ""
	patch := &ProjectPatch{Title: &empty}

	patch.Apply(p)
	p.Normalize()

	if err := p.Validate(); err == nil {
		t.Error("expected merged document to fail validation with empty title")
	}
}
