package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
	"github.com/12keith/spelling-bee-backend/internal/tokens"
)

func newTestAuthService(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Score{}, &models.Word{}))

	return &AuthService{
		Repo:     &repo.GormRepo{DB: db},
		Secret:   []byte("test-jwt-secret"),
		TokenTTL: time.Hour,
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.ErrorIs(t, svc.Register(ctx, "", "password"), ErrMissingFields)
	require.ErrorIs(t, svc.Register(ctx, "test_user", ""), ErrMissingFields)
}

func TestRegister_HashesPasswordAndRejectsDuplicate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password"))

	user, err := svc.Repo.FindUserByUsername(ctx, "test_user")
	require.NoError(t, err)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.NotEmpty(t, user.ID)

	require.ErrorIs(t, svc.Register(ctx, "test_user", "other_password"), ErrUserAlreadyExists)
}

func TestLogin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password"))

	_, errUnknown := svc.Login(ctx, "no_such_user", "password")
	_, errWrongPw := svc.Login(ctx, "test_user", "wrong_password")

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password"))
	user, err := svc.Repo.FindUserByUsername(ctx, "test_user")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "test_user", "password")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 2*time.Second)

	claims, err := tokens.ClaimsFromToken(res.Token, svc.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "test_user", claims.Username)
}

func TestAuthenticate_YieldsIssuedIdentity(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password"))
	res, err := svc.Login(ctx, "test_user", "password")
	require.NoError(t, err)

	ident, err := svc.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "test_user", ident.Username)
	assert.NotZero(t, ident.ID)

	_, err = svc.Authenticate(res.Token + "x")
	require.Error(t, err)
}
