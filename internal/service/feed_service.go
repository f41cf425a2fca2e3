package service

import (
	"context"
	"strings"

	"ripple/internal/feed"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/session"
)

const maxContentLen = 5000

// FeedService handles posting, liking, and commenting. Every mutation is
// followed by the matching targeted refresh: a full feed refresh after post
// and like, a single-thread refresh after comment.
type FeedService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	sessions *session.Holder
	sync     *feed.Synchronizer
}

// NewFeedService creates a FeedService.
func NewFeedService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	sessions *session.Holder,
	sync *feed.Synchronizer,
) *FeedService {
	return &FeedService{posts: posts, comments: comments, sessions: sessions, sync: sync}
}

// SubmitPost creates a post authored by the current user and refreshes the
// feed. The author's identity is snapshotted onto the post at creation time.
func (s *FeedService) SubmitPost(ctx context.Context, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return nil, models.NewValidationError("Content too long")
	}

	actor := s.sessions.Current()
	if actor == nil {
		return nil, models.NewValidationError("Login required")
	}

	post := &models.Post{
		UserEmail: actor.Email,
		Username:  actor.Username,
		Content:   content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if err := s.sync.RefreshFeed(ctx); err != nil {
		return nil, err
	}
	return post, nil
}

// Like increments a post's like counter and refreshes the feed. Liking a
// post that no longer exists is a silent no-op.
func (s *FeedService) Like(ctx context.Context, postID uint) error {
	if err := s.posts.IncrementLike(ctx, postID); err != nil {
		return err
	}
	return s.sync.RefreshFeed(ctx)
}

// SubmitComment adds a comment to a post's thread and refreshes only that
// thread.
func (s *FeedService) SubmitComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return nil, models.NewValidationError("Content too long")
	}

	actor := s.sessions.Current()
	if actor == nil {
		return nil, models.NewValidationError("Login required")
	}

	comment := &models.Comment{
		PostID:    postID,
		UserEmail: actor.Email,
		Username:  actor.Username,
		Content:   content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.sync.RefreshComments(ctx, postID); err != nil {
		return nil, err
	}
	return comment, nil
}
