package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Posts/internal/core/posts"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fieldError(field, message string) error {
	return &posts.ValidationError{Fields: map[string][]string{field: {message}}}
}

// MockPostService is a mock implementation of posts.Service
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]*posts.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id int64) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, payload map[string]any) (*posts.Post, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, id int64, payload map[string]any) (*posts.Post, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// withID attaches a chi route context carrying the {id} parameter
func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func samplePosts() []*posts.Post {
	return []*posts.Post{
		{ID: 1, Title: "first", Content: "one"},
		{ID: 2, Title: "second", Content: "two"},
	}
}

func decodeListBody(t *testing.T, body string) []map[string]any {
	t.Helper()
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope.Data
}

func TestListHandler_Success(t *testing.T) {
	service := new(MockPostService)
	handler := NewListHandler(service)
	service.On("ListPosts", mock.Anything).Return(samplePosts(), nil)

	w := httptest.NewRecorder()
	handler.HandleList(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	data := decodeListBody(t, w.Body.String())
	require.Len(t, data, 2)
	for _, item := range data {
		assert.Contains(t, item, "id")
		assert.Contains(t, item, "title")
		assert.Contains(t, item, "content")
	}
}

func TestListHandler_StorageFailure(t *testing.T) {
	service := new(MockPostService)
	handler := NewListHandler(service)
	service.On("ListPosts", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := httptest.NewRecorder()
	handler.HandleList(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCreateHandler_Success(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 0)

	payload := map[string]any{"title": "hello", "content": "world"}
	service.On("CreatePost", mock.Anything, payload).Return(&posts.Post{ID: 3, Title: "hello", Content: "world"}, nil)
	service.On("ListPosts", mock.Anything).Return(append(samplePosts(), &posts.Post{ID: 3, Title: "hello", Content: "world"}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/post", strings.NewReader(`{"title":"hello","content":"world"}`))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeListBody(t, w.Body.String()), 3)
	service.AssertExpectations(t)
}

func TestCreateHandler_ValidationFailure(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 0)

	verr := &posts.ValidationError{}
	verr.Add("title", "The title must not be greater than 50 characters.")
	service.On("CreatePost", mock.Anything, mock.Anything).Return(nil, verr)

	req := httptest.NewRequest(http.MethodPost, "/api/post", strings.NewReader(`{"title":"x","content":"y"}`))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	assert.Equal(t, []string{"The title must not be greater than 50 characters."}, fields["title"])
	service.AssertNotCalled(t, "ListPosts", mock.Anything)
}

func TestCreateHandler_KeepsRawValueTypes(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 0)

	service.On("CreatePost", mock.Anything, mock.MatchedBy(func(p map[string]any) bool {
		_, isNumber := p["title"].(float64)
		return isNumber
	})).Return(nil, fieldError("title", "The title must be a string."))

	req := httptest.NewRequest(http.MethodPost, "/api/post", strings.NewReader(`{"title":5,"content":"y"}`))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	service.AssertExpectations(t)
}

func TestCreateHandler_EmptyBodyIsValidated(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 0)

	service.On("CreatePost", mock.Anything, map[string]any{}).
		Return(nil, fieldError("title", "The title field is required."))

	w := httptest.NewRecorder()
	handler.HandleCreate(w, httptest.NewRequest(http.MethodPost, "/api/post", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	service.AssertExpectations(t)
}

func TestCreateHandler_InvalidJSON(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 0)

	for _, body := range []string{
		`{"title":`,
		`["title"]`,
		`"text"`,
		`{"title":"a","content":"b"}garbage`,
		`{"title":"a","content":"b"}{"x":1}`,
		`{"title":"a","content":"b"}}`,
	} {
		w := httptest.NewRecorder()
		handler.HandleCreate(w, httptest.NewRequest(http.MethodPost, "/api/post", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "InvalidRequest")
	}
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestCreateHandler_BodyTooLarge(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service, 16)

	body := `{"title":"` + strings.Repeat("a", 64) + `","content":"b"}`
	w := httptest.NewRecorder()
	handler.HandleCreate(w, httptest.NewRequest(http.MethodPost, "/api/post", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestUpdateHandler_Success(t *testing.T) {
	service := new(MockPostService)
	handler := NewUpdateHandler(service, 0)

	payload := map[string]any{"title": "X", "content": "Y"}
	service.On("UpdatePost", mock.Anything, int64(2), payload).Return(&posts.Post{ID: 2, Title: "X", Content: "Y"}, nil)
	service.On("ListPosts", mock.Anything).Return([]*posts.Post{{ID: 1}, {ID: 2, Title: "X", Content: "Y"}}, nil)

	req := withID(httptest.NewRequest(http.MethodPut, "/api/posts/id/2", strings.NewReader(`{"title":"X","content":"Y"}`)), "2")
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeListBody(t, w.Body.String())
	require.Len(t, data, 2)
	assert.Equal(t, "X", data[1]["title"])
	service.AssertExpectations(t)
}

func TestUpdateHandler_NotFound(t *testing.T) {
	service := new(MockPostService)
	handler := NewUpdateHandler(service, 0)

	service.On("UpdatePost", mock.Anything, int64(99), mock.Anything).Return(nil, posts.NewNotFoundError(99))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/posts/id/99", strings.NewReader(`{"title":"X","content":"Y"}`)), "99")
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NotFound")
}

func TestUpdateHandler_MalformedIDIsPassedAsZero(t *testing.T) {
	service := new(MockPostService)
	handler := NewUpdateHandler(service, 0)

	service.On("UpdatePost", mock.Anything, int64(0), mock.Anything).Return(nil, posts.NewNotFoundError(0))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/posts/id/text", strings.NewReader(`{"title":"X","content":"Y"}`)), "text")
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	service.AssertExpectations(t)
}

func TestUpdateHandler_ValidationFailure(t *testing.T) {
	service := new(MockPostService)
	handler := NewUpdateHandler(service, 0)

	service.On("UpdatePost", mock.Anything, int64(2), mock.Anything).
		Return(nil, fieldError("content", "The content field is required."))

	req := withID(httptest.NewRequest(http.MethodPut, "/api/posts/id/2", strings.NewReader(`{"title":"X","content":null}`)), "2")
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"content":["The content field is required."]`)
}

func TestUpdateHandler_TrailingDataRejected(t *testing.T) {
	service := new(MockPostService)
	handler := NewUpdateHandler(service, 0)

	for _, body := range []string{
		`{"title":"X","content":"Y"}garbage`,
		`{"title":"X","content":"Y"}{"title":"Z"}`,
	} {
		req := withID(httptest.NewRequest(http.MethodPut, "/api/posts/id/2", strings.NewReader(body)), "2")
		w := httptest.NewRecorder()
		handler.HandleUpdate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "InvalidRequest")
	}
	service.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleServiceError_InvalidPayload(t *testing.T) {
	w := httptest.NewRecorder()
	err := fmt.Errorf("%w: unexpected end of JSON input", posts.ErrInvalidPayload)
	handleServiceError(w, httptest.NewRequest(http.MethodPost, "/api/post", nil), err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"InvalidRequest","message":"request body must be a JSON object"}`, w.Body.String())
}

func TestDeleteHandler_Success(t *testing.T) {
	service := new(MockPostService)
	handler := NewDeleteHandler(service)
	service.On("DeletePost", mock.Anything, int64(5)).Return(nil)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/posts/id/5", nil), "5")
	w := httptest.NewRecorder()
	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestDeleteHandler_InvalidParams(t *testing.T) {
	for _, id := range []string{"text", "-1", "0", "1.5", ""} {
		t.Run(id, func(t *testing.T) {
			service := new(MockPostService)
			handler := NewDeleteHandler(service)

			req := withID(httptest.NewRequest(http.MethodDelete, "/api/posts/id/"+id, nil), id)
			w := httptest.NewRecorder()
			handler.HandleDelete(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			service.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	service := new(MockPostService)
	handler := NewDeleteHandler(service)
	service.On("DeletePost", mock.Anything, int64(5)).Return(posts.ErrNotFound)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/posts/id/5", nil), "5")
	w := httptest.NewRecorder()
	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHandler(t *testing.T) {
	service := new(MockPostService)
	handler := NewGetHandler(service)
	service.On("GetPost", mock.Anything, int64(1)).Return(&posts.Post{ID: 1, Title: "t", Content: "c"}, nil)
	service.On("GetPost", mock.Anything, int64(2)).Return(nil, posts.NewNotFoundError(2))

	w := httptest.NewRecorder()
	handler.HandleGet(w, withID(httptest.NewRequest(http.MethodGet, "/api/posts/id/1", nil), "1"))
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data posts.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data.ID)
	assert.Equal(t, "t", envelope.Data.Title)

	w = httptest.NewRecorder()
	handler.HandleGet(w, withID(httptest.NewRequest(http.MethodGet, "/api/posts/id/2", nil), "2"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.HandleGet(w, withID(httptest.NewRequest(http.MethodGet, "/api/posts/id/abc", nil), "abc"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
