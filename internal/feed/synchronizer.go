package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ripple/internal/observability"
	"ripple/internal/repository"
)

// Refresh triggers, used as the metrics label.
const (
	triggerAction = "action"
	triggerTimer  = "timer"
)

// Synchronizer re-pulls posts and comments from the store and pushes them to
// the renderer. The store has no change notifications, so consistency comes
// from refreshing after every local mutation plus a periodic full refresh
// while the feed view is active. A timer refresh racing a user mutation may
// observe it before or after it commits; both outcomes are valid, the next
// pass converges.
type Synchronizer struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	renderer Renderer
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	stopCh chan struct{}
	done   chan struct{}
}

// NewSynchronizer creates a Synchronizer. The timer does not run until
// Activate is called.
func NewSynchronizer(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	renderer Renderer,
	interval time.Duration,
) *Synchronizer {
	return &Synchronizer{
		posts:    posts,
		comments: comments,
		renderer: renderer,
		interval: interval,
		logger:   observability.Logger,
	}
}

// RefreshFeed re-lists all posts newest-first, renders the list, then
// re-lists and renders each post's comment thread.
func (s *Synchronizer) RefreshFeed(ctx context.Context) error {
	return s.refreshFeed(ctx, triggerAction)
}

func (s *Synchronizer) refreshFeed(ctx context.Context, trigger string) error {
	observability.FeedRefreshes.WithLabelValues(trigger).Inc()

	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		observability.FeedRefreshErrors.WithLabelValues(trigger).Inc()
		return err
	}
	s.renderer.RenderPosts(posts)

	for _, post := range posts {
		comments, err := s.comments.ListByPost(ctx, post.ID)
		if err != nil {
			observability.FeedRefreshErrors.WithLabelValues(trigger).Inc()
			return err
		}
		s.renderer.RenderComments(post.ID, comments)
	}
	return nil
}

// RefreshComments re-renders a single post's comment thread, used after a
// local comment submission to avoid a full feed re-render.
func (s *Synchronizer) RefreshComments(ctx context.Context, postID uint) error {
	observability.FeedRefreshes.WithLabelValues(triggerAction).Inc()

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		observability.FeedRefreshErrors.WithLabelValues(triggerAction).Inc()
		return err
	}
	s.renderer.RenderComments(postID, comments)
	return nil
}

// Activate enters the feed view: the periodic refresh timer starts. Calling
// Activate while already active is a no-op.
func (s *Synchronizer) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		return
	}
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	go s.timerLoop(s.stopCh, s.done)
}

// Deactivate leaves the feed view: the timer is stopped and not re-armed.
// An already-issued refresh runs to completion. Calling Deactivate while
// inactive is a no-op.
func (s *Synchronizer) Deactivate() {
	s.mu.Lock()
	stopCh, done := s.stopCh, s.done
	s.stopCh, s.done = nil, nil
	s.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-done
}

// Active reports whether the feed view timer is running.
func (s *Synchronizer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCh != nil
}

func (s *Synchronizer) timerLoop(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx := observability.WithCorrelationID(context.Background(), observability.NewCorrelationID())
			if err := s.refreshFeed(ctx, triggerTimer); err != nil {
				// Background failures are logged, never surfaced: transient
				// sync noise must not interrupt the user.
				s.logger.WarnContext(ctx, "timer refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
