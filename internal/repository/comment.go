package repository

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	observability.StoreOperations.WithLabelValues("comments", "add").Inc()
	comment.ID = 0
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		observability.StoreErrors.WithLabelValues("comments", "add").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// ListByPost returns the comments for one post in insertion order. A post
// with no comments yields an empty slice, not an error.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	observability.StoreOperations.WithLabelValues("comments", "getAllByIndex").Inc()
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error; err != nil {
		observability.StoreErrors.WithLabelValues("comments", "getAllByIndex").Inc()
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
