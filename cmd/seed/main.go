// Command seed fills the local store with demo users, posts, and comments.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/repository"
	"ripple/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	users := flag.Int("users", seed.DefaultOptions.Users, "number of demo users")
	postsPerUser := flag.Int("posts", seed.DefaultOptions.PostsPerUser, "posts per user")
	commentsPerPost := flag.Int("comments", seed.DefaultOptions.CommentsPerPost, "comments per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()

	store := database.NewStore(cfg)
	db, err := store.Open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	factory := seed.NewFactory(
		repository.NewUserRepository(db),
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
	)

	opts := seed.Options{
		Users:           *users,
		PostsPerUser:    *postsPerUser,
		CommentsPerPost: *commentsPerPost,
		LikesPerPost:    seed.DefaultOptions.LikesPerPost,
	}
	if err := seed.Run(ctx, factory, opts); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	return nil
}
