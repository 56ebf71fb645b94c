package usecase

import (
	"context"
	"testing"

	"job-board/internal/domain/user"
	"job-board/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUsecase_Login(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	created, err := newTestUserUsecase(store).Create(ctx, UserInput{
		Name:     str("A"),
		Email:    str("a@example.com"),
		Password: str("secret1"),
		Role:     func() *user.Role { r := user.RoleEmployer; return &r }(),
	})
	require.NoError(t, err)

	auth := NewAuthUsecase(store.Users())

	u, err := auth.Login(ctx, " A@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, user.RoleEmployer, u.Role)

	_, err = auth.Login(ctx, "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	store := memory.NewStore()
	auth := NewAuthUsecase(store.Users())

	_, err := auth.CurrentUser(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
