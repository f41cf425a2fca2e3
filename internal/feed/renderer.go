// Package feed keeps the rendered view consistent with the store, on demand
// after user actions and on a fixed timer while the feed view is active.
package feed

import (
	"log/slog"

	"ripple/internal/models"
)

// Renderer is the view boundary. The synchronizer pushes full replacement
// state into it; there is no diffing, which is an accepted tradeoff for the
// small feed sizes this application targets.
type Renderer interface {
	RenderPosts(posts []*models.Post)
	RenderComments(postID uint, comments []*models.Comment)
}

// LogRenderer is a Renderer that writes render calls to the structured log.
// It backs the command-line entrypoint, where no real view exists.
type LogRenderer struct {
	Logger *slog.Logger
}

func (r *LogRenderer) RenderPosts(posts []*models.Post) {
	r.Logger.Info("render posts", slog.Int("count", len(posts)))
	for _, p := range posts {
		r.Logger.Info("post",
			slog.Uint64("id", uint64(p.ID)),
			slog.String("author", p.Username),
			slog.Int("likes", p.Likes),
			slog.String("content", p.Content),
		)
	}
}

func (r *LogRenderer) RenderComments(postID uint, comments []*models.Comment) {
	for _, c := range comments {
		r.Logger.Info("comment",
			slog.Uint64("post_id", uint64(postID)),
			slog.String("author", c.Username),
			slog.String("content", c.Content),
		)
	}
}
