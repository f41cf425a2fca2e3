package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ripple/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "pw"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "pw", found.Password)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "pw"}))

	err := repo.Create(ctx, &models.User{Username: "other", Email: "a@x.com", Password: "pw2"})
	require.Error(t, err)
	assert.True(t, models.IsDuplicateUser(err))

	// No partial record: the colliding username must not exist.
	ghost, err := repo.GetByUsername(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "pw"}))

	err := repo.Create(ctx, &models.User{Username: "alice", Email: "b@x.com", Password: "pw2"})
	require.Error(t, err)
	assert.True(t, models.IsDuplicateUser(err))

	ghost, err := repo.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_VerifyCredentials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "secret"}))

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"exact match", "a@x.com", "secret", true},
		{"wrong password", "a@x.com", "nope", false},
		{"unknown email", "ghost@x.com", "secret", false},
		{"empty password", "a@x.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := repo.VerifyCredentials(ctx, tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("select sqlite_version()")).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.45.1"))

	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlmock",
		Conn:       db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByEmail_StoreError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE email = ?")).
		WillReturnError(errors.New("database is locked"))

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, models.CodeInternal, models.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
