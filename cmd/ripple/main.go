// Command ripple runs the local social feed: it opens the embedded store,
// brings the schema to the current version, restores any persisted session,
// and keeps the feed view active until interrupted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/feed"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
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

	slot, err := newSessionSlot(cfg)
	if err != nil {
		return fmt.Errorf("session slot: %w", err)
	}
	sessions, err := session.NewHolder(ctx, slot)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if current := sessions.Current(); current != nil {
		observability.Logger.Info("session restored", "username", current.Username)
	} else {
		observability.Logger.Info("no active session")
	}

	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)
	renderer := &feed.LogRenderer{Logger: observability.Logger}

	sync := feed.NewSynchronizer(posts, comments, renderer,
		time.Duration(cfg.FeedRefreshSeconds)*time.Second)

	// Entering the feed view: render once, then keep the timer running.
	if err := sync.RefreshFeed(ctx); err != nil {
		return fmt.Errorf("initial refresh: %w", err)
	}
	sync.Activate()
	defer sync.Deactivate()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	observability.Logger.Info("shutting down", "signal", sig.String())
	return nil
}

func newSessionSlot(cfg *config.Config) (session.Slot, error) {
	if cfg.SessionRedisURL != "" {
		return session.NewRedisSlot(cfg.SessionRedisURL)
	}
	return session.NewFileSlot(cfg.SessionPath), nil
}
