package handler

import "net/http"

// Routes assembles the full API surface: the root descriptor, public project
// reads, the public contact form, and the admin-gated mutations, wrapped in
// the CORS / logging / recovery chain. Unmatched requests fall through to
// the JSON 404.
func Routes(h *Handler, projects *ProjectHandler, contacts *ContactHandler, adminPassword string) http.Handler {
	admin := AdminAuth(adminPassword)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)

	mux.HandleFunc("GET /api/projects", projects.List)
	mux.HandleFunc("GET /api/projects/{id}", projects.Get)
	mux.Handle("POST /api/projects", admin(http.HandlerFunc(projects.Create)))
	mux.Handle("PUT /api/projects/{id}", admin(http.HandlerFunc(projects.Update)))
	mux.Handle("DELETE /api/projects/{id}", admin(http.HandlerFunc(projects.Delete)))

	mux.HandleFunc("POST /api/contact", contacts.Submit)
	mux.Handle("GET /api/contact", admin(http.HandlerFunc(contacts.List)))
	mux.Handle("PATCH /api/contact/{id}/read", admin(http.HandlerFunc(contacts.MarkRead)))
	mux.Handle("DELETE /api/contact/{id}", admin(http.HandlerFunc(contacts.Delete)))

	return h.CORS(RequestLogger(Recover(RouteFallback(mux))))
}
