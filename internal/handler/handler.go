package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// envelope is the uniform JSON response shape of every endpoint:
// {success, message?, count?, data?, error?}.
type envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Count     *int              `json:"count,omitempty"`
	Data      any               `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// fail writes an error envelope. detail lands in the `error` field and may
// be empty (404s carry no detail).
func fail(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, envelope{Success: false, Message: message, Error: detail})
}

// Handler owns the cross-cutting HTTP concerns: CORS, the root descriptor
// and the JSON 404 fallback.
type Handler struct {
	allowedOrigins []string
}

// localDevOrigin is always allowed so the frontend dev server works without
// extra configuration.
const localDevOrigin = "http://localhost:3000"

// New creates a Handler allowing the configured frontend origin plus the
// fixed local-development origin.
func New(frontendURL string) *Handler {
	origins := []string{localDevOrigin}
	if frontendURL != "" && frontendURL != localDevOrigin {
		origins = append(origins, frontendURL)
	}
	return &Handler{allowedOrigins: origins}
}

// CORS enforces the origin allow-list. Requests without an Origin header
// (curl, same-host tools) always pass. Credentialed requests are permitted,
// and the admin password header is allow-listed so the dashboard can send it
// cross-origin.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && h.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Password")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	for _, o := range h.allowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Root handles GET / — a static service descriptor used as a liveness probe.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "DevPortfolio Pro API is running! 🚀",
		Endpoints: map[string]string{
			"projects": "/api/projects",
			"contact":  "/api/contact",
		},
	})
}

// RouteFallback wraps mux so anything it cannot dispatch — unknown paths and
// wrong methods on known paths alike — gets the JSON 404 envelope instead of
// the stdlib text response.
func RouteFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Route not found"})
			return
		}
		mux.ServeHTTP(w, r)
	})
}
