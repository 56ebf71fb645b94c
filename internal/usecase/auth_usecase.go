package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (user.User, error)
	CurrentUser(ctx context.Context, userID int64) (user.User, error)
}

type Auth struct {
	users user.Repository
}

func NewAuthUsecase(users user.Repository) *Auth {
	return &Auth{users: users}
}

func (u *Auth) Login(ctx context.Context, email, password string) (user.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (u *Auth) CurrentUser(ctx context.Context, userID int64) (user.User, error) {
	return u.users.GetByID(ctx, userID)
}
