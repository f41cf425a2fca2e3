package repository

import (
	"context"
	"fmt"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		comment := &models.Comment{
			PostID:    1,
			UserEmail: "a@x.com",
			Username:  "alice",
			Content:   fmt.Sprintf("comment %d", i),
		}
		require.NoError(t, repo.Create(ctx, comment))
		assert.NotZero(t, comment.ID)
	}

	comments, err := repo.ListByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	// insertion order, oldest first
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("comment %d", i), c.Content)
	}
}

func TestCommentRepository_ListByPost_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	comments, err := repo.ListByPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_ListByPost_FiltersByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 1, Username: "alice", Content: "on one"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 2, Username: "bob", Content: "on two"}))

	comments, err := repo.ListByPost(ctx, 2)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on two", comments[0].Content)
}

// A comment whose post never existed stays readable; referential integrity
// is not enforced by the store.
func TestCommentRepository_OrphanCommentTolerated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 777, Username: "alice", Content: "orphan"}))

	comments, err := repo.ListByPost(ctx, 777)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}
