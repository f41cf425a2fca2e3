package seed

import (
	"context"
	"log/slog"

	"ripple/internal/observability"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikesPerPost    int
}

// DefaultOptions is a small, readable demo feed.
var DefaultOptions = Options{
	Users:           3,
	PostsPerUser:    2,
	CommentsPerPost: 2,
	LikesPerPost:    3,
}

// Run creates demo users, posts, comments, and likes through the factory.
func Run(ctx context.Context, f *Factory, opts Options) error {
	for u := 0; u < opts.Users; u++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return err
		}

		for p := 0; p < opts.PostsPerUser; p++ {
			post, err := f.CreatePost(ctx, user)
			if err != nil {
				return err
			}

			for c := 0; c < opts.CommentsPerPost; c++ {
				if _, err := f.CreateComment(ctx, post, user); err != nil {
					return err
				}
			}

			likes := f.rng.Intn(opts.LikesPerPost + 1)
			for l := 0; l < likes; l++ {
				if err := f.posts.IncrementLike(ctx, post.ID); err != nil {
					return err
				}
			}
		}
	}

	observability.Logger.InfoContext(ctx, "seed complete",
		slog.Int("users", opts.Users),
		slog.Int("posts_per_user", opts.PostsPerUser),
	)
	return nil
}
