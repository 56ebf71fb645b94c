package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"job-board/internal/domain/employer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/repository/memory"
	"job-board/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUsecase_Create(t *testing.T) {
	store := memory.NewStore()
	uc := newTestUserUsecase(store)
	ctx := context.Background()

	u, err := uc.Create(ctx, UserInput{
		Name:     str(" Tolesa "),
		Email:    str(" Tolesa@Example.com "),
		Password: str("secret1"),
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "Tolesa", u.Name)
	assert.Equal(t, "tolesa@example.com", u.Email)
	assert.Equal(t, user.RoleJobSeeker, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestUserUsecase_Create_Validation(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())
	ctx := context.Background()

	_, err := uc.Create(ctx, UserInput{})
	requireFieldError(t, err, "name", validation.MsgBlank)
	requireFieldError(t, err, "email", validation.MsgBlank)
	requireFieldError(t, err, "password", validation.MsgBlank)

	_, err = uc.Create(ctx, UserInput{Name: str("A"), Email: str("not-an-email"), Password: str("123")})
	requireFieldError(t, err, "email", validation.MsgInvalid)
	requireFieldError(t, err, "password", "is too short (minimum is 6 characters)")
}

func TestUserUsecase_Create_UnknownRoleName(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())

	var in UserInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@example.com","password":"secret1","role":"manager"}`), &in))

	_, err := uc.Create(context.Background(), in)
	requireFieldError(t, err, "role", validation.MsgNotInList)
}

func TestUserUsecase_Create_RoleByName(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())

	var in UserInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@example.com","password":"secret1","role":"employer"}`), &in))

	u, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployer, u.Role)
}

func TestUserUsecase_Create_DuplicateEmail(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())
	ctx := context.Background()

	_, err := uc.Create(ctx, UserInput{Name: str("A"), Email: str("a@example.com"), Password: str("secret1")})
	require.NoError(t, err)

	_, err = uc.Create(ctx, UserInput{Name: str("B"), Email: str("A@EXAMPLE.COM"), Password: str("secret2")})
	requireFieldError(t, err, "email", validation.MsgTaken)
}

func TestUserUsecase_Update_Partial(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())
	ctx := context.Background()

	u, err := uc.Create(ctx, UserInput{Name: str("A"), Email: str("a@example.com"), Password: str("secret1")})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, u.ID, UserPatch{Name: str("Renamed"), Password: str("")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "a@example.com", updated.Email)
	assert.Equal(t, u.PasswordHash, updated.PasswordHash)

	updated, err = uc.Update(ctx, u.ID, UserPatch{Password: str("another1")})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("another1")))

	_, err = uc.Update(ctx, u.ID, UserPatch{Name: str("  ")})
	requireFieldError(t, err, "name", validation.MsgBlank)

	_, err = uc.Update(ctx, 999, UserPatch{})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserUsecase_Update_EmailTaken(t *testing.T) {
	uc := newTestUserUsecase(memory.NewStore())
	ctx := context.Background()

	_, err := uc.Create(ctx, UserInput{Name: str("A"), Email: str("a@example.com"), Password: str("secret1")})
	require.NoError(t, err)
	b, err := uc.Create(ctx, UserInput{Name: str("B"), Email: str("b@example.com"), Password: str("secret1")})
	require.NoError(t, err)

	_, err = uc.Update(ctx, b.ID, UserPatch{Email: str("a@example.com")})
	requireFieldError(t, err, "email", validation.MsgTaken)

	same, err := uc.Update(ctx, b.ID, UserPatch{Email: str("B@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", same.Email)
}

func TestUserUsecase_Delete_RemovesProfiles(t *testing.T) {
	store := memory.NewStore()
	uc := newTestUserUsecase(store)
	ctx := context.Background()

	u, err := uc.Create(ctx, UserInput{Name: str("A"), Email: str("a@example.com"), Password: str("secret1")})
	require.NoError(t, err)
	_, err = store.Seekers().Create(ctx, seeker.Profile{UserID: u.ID, Title: "Dev"})
	require.NoError(t, err)
	_, err = store.Employers().Create(ctx, employer.Profile{UserID: u.ID, CompanyName: "Acme"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, u.ID))

	_, err = store.Seekers().GetByUserID(ctx, u.ID)
	assert.ErrorIs(t, err, seeker.ErrNotFound)
	_, err = store.Employers().GetByUserID(ctx, u.ID)
	assert.ErrorIs(t, err, employer.ErrNotFound)
	_, err = uc.Get(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, u.ID), user.ErrNotFound)
}
