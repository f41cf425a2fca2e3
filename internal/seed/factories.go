// Package seed provides helpers to create demo data for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds domain records through the repositories, so seeded data
// goes through the same id-assignment and constraint paths as real usage.
type Factory struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	rng      *rand.Rand
}

// NewFactory creates a Factory bound to the given repositories.
func NewFactory(
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:    users,
		posts:    posts,
		comments: comments,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a fake user. The username gets a numeric suffix to
// keep the unique index happy across repeated seed runs.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), f.rng.Intn(100000))
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a fake post authored by the given user.
func (f *Factory) CreatePost(ctx context.Context, author *models.User) (*models.Post, error) {
	post := &models.Post{
		UserEmail: author.Email,
		Username:  author.Username,
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a fake comment by the given user on the given post.
func (f *Factory) CreateComment(ctx context.Context, post *models.Post, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		UserEmail: author.Email,
		Username:  author.Username,
		Content:   gofakeit.Sentence(8),
	}
	if err := f.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
