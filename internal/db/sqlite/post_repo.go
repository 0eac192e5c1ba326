// Package sqlite provides a GORM-backed SQLite implementation of the post
// store. It backs local development runs and the HTTP end-to-end tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Posts/internal/core/posts"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// postRow is the GORM model for the posts table
type postRow struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"size:50;not null"`
	Content   string `gorm:"size:255;not null"`
	ID        int64  `gorm:"primaryKey;autoIncrement"`
}

func (postRow) TableName() string {
	return "posts"
}

func (r *postRow) toPost() *posts.Post {
	return &posts.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Open opens (or creates) the SQLite database at path and migrates the schema
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&postRow{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return db, nil
}

type sqlitePostRepo struct {
	db *gorm.DB
}

// NewPostRepository creates a new SQLite post repository
func NewPostRepository(db *gorm.DB) posts.Repository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	var rows []postRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	result := make([]*posts.Post, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toPost())
	}
	return result, nil
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *posts.Post) error {
	row := postRow{Title: post.Title, Content: post.Content}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	post.ID = row.ID
	post.CreatedAt = row.CreatedAt
	post.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *sqlitePostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	var row postRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, posts.NewNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}
	return row.toPost(), nil
}

// Update runs in a transaction so the row read back matches the write
func (r *sqlitePostRepo) Update(ctx context.Context, post *posts.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&postRow{}).
			Where("id = ?", post.ID).
			Updates(map[string]any{
				"title":      post.Title,
				"content":    post.Content,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return posts.NewNotFoundError(post.ID)
		}

		var row postRow
		if err := tx.First(&row, post.ID).Error; err != nil {
			return fmt.Errorf("failed to reload post: %w", err)
		}
		post.CreatedAt = row.CreatedAt
		post.UpdatedAt = row.UpdatedAt
		return nil
	})
}

func (r *sqlitePostRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&postRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return posts.NewNotFoundError(id)
	}
	return nil
}
