package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Signup(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	user, err := env.accounts.Signup(ctx, SignupInput{
		Username: "alice", Email: "a@x.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	found, err := env.users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Username)
}

func TestAccountService_Signup_Validation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   SignupInput
	}{
		{"missing username", SignupInput{Email: "a@x.com", Password: "pw"}},
		{"missing email", SignupInput{Username: "alice", Password: "pw"}},
		{"malformed email", SignupInput{Username: "alice", Email: "not-an-email", Password: "pw"}},
		{"missing password", SignupInput{Username: "alice", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.Signup(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, models.CodeValidation, models.CodeOf(err))
		})
	}
}

func TestAccountService_Signup_Duplicate(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Signup(ctx, SignupInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = env.accounts.Signup(ctx, SignupInput{Username: "alice2", Email: "a@x.com", Password: "pw"})
	assert.True(t, models.IsDuplicateUser(err))

	_, err = env.accounts.Signup(ctx, SignupInput{Username: "alice", Email: "fresh@x.com", Password: "pw"})
	assert.True(t, models.IsDuplicateUser(err))

	// The failed signups must not have persisted anything.
	ghost, err := env.users.GetByEmail(ctx, "fresh@x.com")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestAccountService_LoginLogout(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Signup(ctx, SignupInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	id, err := env.accounts.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)

	current := env.sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)

	require.NoError(t, env.accounts.Logout(ctx))
	assert.Nil(t, env.sessions.Current())
}

func TestAccountService_Login_BadCredentials(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Signup(ctx, SignupInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, errWrongPw := env.accounts.Login(ctx, "a@x.com", "nope")
	_, errUnknown := env.accounts.Login(ctx, "ghost@x.com", "pw")
	require.Error(t, errWrongPw)
	require.Error(t, errUnknown)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
	assert.Nil(t, env.sessions.Current())
}
