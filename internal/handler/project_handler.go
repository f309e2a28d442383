package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devportfolio/backend/internal/model"
	"github.com/devportfolio/backend/internal/repository"
	"github.com/devportfolio/backend/internal/service"
)

// ProjectHandler handles the project CRUD endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectRequest is the writable subset of a project. ID and timestamps are
// server-owned and deliberately absent.
type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"githubLink"`
	LiveLink     string   `json:"liveLink"`
	Category     string   `json:"category"`
}

// List handles GET /api/projects (public).
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server Error: Could not fetch projects", err.Error())
		return
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	count := len(projects)
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: projects})
}

// Get handles GET /api/projects/{id} (public).
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		fail(w, http.StatusNotFound, "Project not found", "")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server Error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: project})
}

// Create handles POST /api/projects (admin only).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Failed to create project", err.Error())
		return
	}

	project := &model.Project{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Technologies: req.Technologies,
		GithubLink:   req.GithubLink,
		LiveLink:     req.LiveLink,
		Category:     req.Category,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		fail(w, http.StatusBadRequest, "Failed to create project", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Project created successfully",
		Data:    project,
	})
}

// Update handles PUT /api/projects/{id} (admin only). Fields absent from the
// body keep their stored values; validators re-run on the merged document.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		fail(w, http.StatusBadRequest, "Failed to update project", err.Error())
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), &patch)
	if errors.Is(err, repository.ErrNotFound) {
		fail(w, http.StatusNotFound, "Project not found", "")
		return
	}
	if err != nil {
		fail(w, http.StatusBadRequest, "Failed to update project", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Project updated successfully",
		Data:    project,
	})
}

// Delete handles DELETE /api/projects/{id} (admin only).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.projectService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		fail(w, http.StatusNotFound, "Project not found", "")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to delete project", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Project deleted successfully"})
}
