package usecase

import (
	"context"
	"testing"
	"time"

	"shikkhabazar/internal/domain"
	"shikkhabazar/internal/infrastructure/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	tokens map[string]string // refresh -> userID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) SaveRefresh(_ context.Context, userID, refreshToken string) error {
	f.tokens[refreshToken] = userID
	return nil
}

func (f *fakeTokenStore) CheckRefresh(_ context.Context, refreshToken string) (string, error) {
	userID, ok := f.tokens[refreshToken]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return userID, nil
}

func (f *fakeTokenStore) DeleteRefresh(_ context.Context, refreshToken string) error {
	delete(f.tokens, refreshToken)
	return nil
}

func authTestSetup(t *testing.T) (*AuthUseCase, *fakeUserRepo, *fakeTokenStore) {
	t.Helper()
	users := newFakeUserRepo()
	store := newFakeTokenStore()
	uc := NewAuthUseCase(users, store,
		security.NewPasswordHasher(),
		security.NewTokenManager("test-access", "test-refresh"))
	return uc, users, store
}

func TestAuthRegisterAndLogin(t *testing.T) {
	uc, users, _ := authTestSetup(t)
	ctx := context.Background()

	id, err := uc.Register(ctx, "Rahim Uddin", "  Rahim@Example.COM ", "01712345678", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Email нормализуется, пароль хранится хешем
	user, err := users.GetByEmail(ctx, "rahim@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)

	access, refresh, err := uc.Login(ctx, "rahim@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	sub, err := uc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, id, sub)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := authTestSetup(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "Rahim", "rahim@example.com", "", "s3cret")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "Other", "rahim@example.com", "", "p4ss")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	uc, _, _ := authTestSetup(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "Rahim", "rahim@example.com", "", "s3cret")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "rahim@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = uc.Login(ctx, "nobody@example.com", "s3cret")
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthRefreshRotation(t *testing.T) {
	uc, _, store := authTestSetup(t)
	ctx := context.Background()

	id, err := uc.Register(ctx, "Rahim", "rahim@example.com", "", "s3cret")
	require.NoError(t, err)

	_, refresh, err := uc.Login(ctx, "rahim@example.com", "s3cret")
	require.NoError(t, err)

	// iat в клеймах с точностью до секунды: без паузы новый refresh
	// совпал бы со старым байт в байт
	time.Sleep(1100 * time.Millisecond)

	access2, refresh2, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)

	sub, err := uc.ValidateAccess(access2)
	require.NoError(t, err)
	assert.Equal(t, id, sub)

	// Старый refresh погашен ротацией
	_, _, err = uc.Refresh(ctx, refresh)
	assert.EqualError(t, err, "token revoked")

	// Новый еще жив
	_, ok := store.tokens[refresh2]
	assert.True(t, ok)
}

func TestAuthLogout(t *testing.T) {
	uc, _, store := authTestSetup(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "Rahim", "rahim@example.com", "", "s3cret")
	require.NoError(t, err)

	_, refresh, err := uc.Login(ctx, "rahim@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, refresh))
	assert.Empty(t, store.tokens)

	_, _, err = uc.Refresh(ctx, refresh)
	assert.EqualError(t, err, "token revoked")
}

func TestAuthUpdateProfile(t *testing.T) {
	uc, _, _ := authTestSetup(t)
	ctx := context.Background()

	id, err := uc.Register(ctx, "Rahim", "rahim@example.com", "", "s3cret")
	require.NoError(t, err)
	userID := uuid.MustParse(id)

	require.NoError(t, uc.UpdateProfile(ctx, userID, "Rahim Uddin", "01712345678", "https://cdn.example.com/a.png"))

	user, err := uc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", user.FullName)
	assert.Equal(t, "01712345678", user.Phone)
	assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)
}
