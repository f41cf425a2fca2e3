package repository

import (
	"context"
	"errors"
	"log/slog"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	IncrementLike(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post. The store assigns the id; the likes counter
// starts at zero regardless of what the caller set.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	observability.StoreOperations.WithLabelValues("posts", "add").Inc()
	post.ID = 0
	post.Likes = 0
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		observability.StoreErrors.WithLabelValues("posts", "add").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	observability.StoreOperations.WithLabelValues("posts", "get").Inc()
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		observability.StoreErrors.WithLabelValues("posts", "get").Inc()
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// IncrementLike bumps a post's like counter by one inside a transaction.
// A missing post is logged and swallowed: the feed may legitimately show a
// post that no longer exists when a like races a refresh.
func (r *postRepository) IncrementLike(ctx context.Context, id uint) error {
	observability.StoreOperations.WithLabelValues("posts", "put").Inc()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		return tx.Model(&post).Update("likes", post.Likes+1).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.Logger.WarnContext(ctx, "like on missing post ignored", slog.Uint64("post_id", uint64(id)))
			return nil
		}
		observability.StoreErrors.WithLabelValues("posts", "put").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// ListAll returns every post, newest first.
func (r *postRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	observability.StoreOperations.WithLabelValues("posts", "getAll").Inc()
	var posts []*models.Post
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error; err != nil {
		observability.StoreErrors.WithLabelValues("posts", "getAll").Inc()
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
