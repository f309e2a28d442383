package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devportfolio/backend/internal/model"
	"github.com/devportfolio/backend/internal/repository"
	"github.com/devportfolio/backend/internal/service"
)

// ContactHandler handles contact form submission and the admin message
// endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact. Only these
// three fields are read off the body — a client-supplied isRead is ignored.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact (public).
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Failed to send message. Please try again.", err.Error())
		return
	}

	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), contact); err != nil {
		fail(w, http.StatusBadRequest, "Failed to send message. Please try again.", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Thank you for your message! We will get back to you soon.",
		Data:    contact,
	})
}

// List handles GET /api/contact (admin only).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server Error: Could not fetch messages", err.Error())
		return
	}

	if messages == nil {
		messages = []*model.Contact{}
	}
	count := len(messages)
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: messages})
}

// MarkRead handles PATCH /api/contact/{id}/read (admin only). Idempotent.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.MarkRead(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		fail(w, http.StatusNotFound, "Message not found", "")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to update message", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Message marked as read",
		Data:    contact,
	})
}

// Delete handles DELETE /api/contact/{id} (admin only).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.contactService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		fail(w, http.StatusNotFound, "Message not found", "")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to delete message", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Message deleted successfully"})
}
