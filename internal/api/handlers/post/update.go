package post

import (
	"net/http"

	"Posts/internal/core/posts"
)

// UpdateHandler handles full-replacement updates
type UpdateHandler struct {
	service      posts.Service
	maxBodyBytes int64
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service, maxBodyBytes int64) *UpdateHandler {
	return &UpdateHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandleUpdate handles PUT /api/posts/id/{id}
//
// Request body: {"title": "...", "content": "..."}
// Response: {"data": [Post, ...]} with every post after the update
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	// 1. Parse request body
	payload, err := decodePayload(w, r, h.maxBodyBytes)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// 2. Validate, locate and replace title and content
	// A malformed id resolves to 0, which the service reports as not found
	// only after the payload has passed validation
	id, _ := parseID(r)
	if _, err := h.service.UpdatePost(r.Context(), id, payload); err != nil {
		handleServiceError(w, r, err)
		return
	}

	// 3. Respond with the refreshed collection
	writePostList(w, r, h.service)
}
