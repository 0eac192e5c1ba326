package post

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"Posts/internal/api/handlers"
	"Posts/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodyBytes bounds request bodies when no explicit limit is configured
const DefaultMaxBodyBytes int64 = 1 << 20

// parseID reads the {id} route parameter
// Anything that is not a positive base-10 integer can never match a row,
// so it is reported as not found rather than as a bad request
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// errBodyTooLarge is returned when the body exceeds the configured limit
var errBodyTooLarge = errors.New("request body too large")

// decodePayload reads the body as a single JSON object, keeping raw value
// types so the validation layer can tell strings apart from numbers and booleans.
// Anything other than one object (or an empty body) yields posts.ErrInvalidPayload.
func decodePayload(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, decodeError(err)
	}

	// The object must be the whole body
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, decodeError(err)
	}

	if payload == nil {
		// Empty body or the JSON literal null: every field is missing
		payload = map[string]any{}
	}
	return payload, nil
}

func decodeError(err error) error {
	if err == nil {
		// A second value followed the object
		return posts.ErrInvalidPayload
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return fmt.Errorf("%w: %v", posts.ErrInvalidPayload, err)
}

// writePostList responds with the full, refreshed list of posts
// Create and update answer with the whole collection, not the single row
func writePostList(w http.ResponseWriter, r *http.Request, service posts.Service) {
	list, err := service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, posts.ListPostsResponse{Data: list})
}
