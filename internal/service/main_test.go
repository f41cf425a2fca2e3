package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ripple/internal/feed"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/session"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeRenderer counts render calls for assertions.
type fakeRenderer struct {
	mu           sync.Mutex
	postRenders  int
	threadCalls  map[uint]int
	lastPosts    []*models.Post
	lastComments []*models.Comment
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{threadCalls: make(map[uint]int)}
}

func (r *fakeRenderer) RenderPosts(posts []*models.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postRenders++
	r.lastPosts = posts
}

func (r *fakeRenderer) RenderComments(postID uint, comments []*models.Comment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threadCalls[postID]++
	r.lastComments = comments
}

type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	sessions *session.Holder
	renderer *fakeRenderer
	accounts *AccountService
	feed     *FeedService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)

	slot := session.NewFileSlot(filepath.Join(t.TempDir(), "session.json"))
	sessions, err := session.NewHolder(context.Background(), slot)
	require.NoError(t, err)

	renderer := newFakeRenderer()
	sync := feed.NewSynchronizer(posts, comments, renderer, time.Hour)

	return &testEnv{
		db:       db,
		users:    users,
		posts:    posts,
		comments: comments,
		sessions: sessions,
		renderer: renderer,
		accounts: NewAccountService(users, sessions),
		feed:     NewFeedService(posts, comments, sessions, sync),
	}
}
