package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/testutil"
)

func TestSignUpAndAuthenticate(t *testing.T) {
	db := testutil.TestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "new@example.com", "New User", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "new@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSignUpValidation(t *testing.T) {
	db := testutil.TestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "", "Name", "password")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.SignUp(ctx, "x@example.com", "", "password")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.SignUp(ctx, "x@example.com", "Name", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := testutil.TestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "dup@example.com", "First", "passwordpassword")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "dup@example.com", "Second", "passwordpassword")
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestAuthenticateFailures(t *testing.T) {
	db := testutil.TestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	testutil.TestUser(t, db, "known@example.com")

	// Wrong password and unknown email look the same to the caller.
	_, err := svc.Authenticate(ctx, "known@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	_, err = svc.Authenticate(ctx, "unknown@example.com", testutil.Password)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
