package post

import (
	"net/http"

	"Posts/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service      posts.Service
	maxBodyBytes int64
}

// NewCreateHandler creates a new create handler
// maxBodyBytes <= 0 falls back to DefaultMaxBodyBytes
func NewCreateHandler(service posts.Service, maxBodyBytes int64) *CreateHandler {
	return &CreateHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandleCreate handles POST /api/post
//
// Request body: {"title": "...", "content": "..."}
// Response: {"data": [Post, ...]} with every post, including the new one
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1. Parse request body
	payload, err := decodePayload(w, r, h.maxBodyBytes)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	// 2. Validate and insert
	if _, err := h.service.CreatePost(r.Context(), payload); err != nil {
		handleServiceError(w, r, err)
		return
	}

	// 3. Respond with the refreshed collection
	writePostList(w, r, h.service)
}
