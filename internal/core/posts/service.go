package posts

import (
	"context"
	"fmt"
	"log/slog"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
	}
}

// ListPosts returns every post ordered by id
func (s *postService) ListPosts(ctx context.Context) ([]*Post, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if list == nil {
		// Always serialize as [] rather than null
		list = []*Post{}
	}
	return list, nil
}

// GetPost retrieves a post by id
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	if id < 1 {
		return nil, NewNotFoundError(id)
	}
	return s.repo.GetByID(ctx, id)
}

// CreatePost creates a new post
// Flow: Validate -> Insert -> Return persisted row
func (s *postService) CreatePost(ctx context.Context, payload map[string]any) (*Post, error) {
	// 1. Validate payload
	input, err := ValidatePostInput(payload)
	if err != nil {
		return nil, err
	}

	// 2. Insert
	post := &Post{
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	slog.InfoContext(ctx, "post created", slog.Int64("post_id", post.ID))
	return post, nil
}

// UpdatePost replaces title and content of an existing post
// Flow: Validate -> Find (404) -> Update
func (s *postService) UpdatePost(ctx context.Context, id int64, payload map[string]any) (*Post, error) {
	// 1. Validate payload before looking the row up
	input, err := ValidatePostInput(payload)
	if err != nil {
		return nil, err
	}

	// 2. Locate the post
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Full replacement of the writable fields
	post.Title = input.Title
	post.Content = input.Content
	if err := s.repo.Update(ctx, post); err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	slog.InfoContext(ctx, "post updated", slog.Int64("post_id", post.ID))
	return post, nil
}

// DeletePost permanently removes a post
// Flow: Find (404) -> Delete
func (s *postService) DeletePost(ctx context.Context, id int64) error {
	if _, err := s.GetPost(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	slog.InfoContext(ctx, "post deleted", slog.Int64("post_id", id))
	return nil
}
