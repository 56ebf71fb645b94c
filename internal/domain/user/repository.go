package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrHasDependents = errors.New("user has dependent records")
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	// DeleteWithProfiles removes the user's job seeker profile, employer
	// profile and the user row in one transaction.
	DeleteWithProfiles(ctx context.Context, id int64) error
}
