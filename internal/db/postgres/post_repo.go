package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Posts/internal/core/posts"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by the repositories
// Accepting it lets callers run repository operations inside a transaction
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type postgresPostRepo struct {
	db DBTX
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db DBTX) posts.Repository {
	return &postgresPostRepo{db: db}
}

// List returns all posts in insertion order
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, title, content, created_at, updated_at
		FROM posts
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.Post{}
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, nil
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, content, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, post.Title, post.Content).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its primary key
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, title, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.NewNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return &post, nil
}

// Update overwrites title and content and bumps updated_at
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, post.ID, post.Title, post.Content).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return posts.NewNotFoundError(post.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete removes a post permanently
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return posts.NewNotFoundError(id)
	}

	return nil
}
