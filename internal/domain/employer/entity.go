package employer

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("employer profile not found")
	ErrAlreadyExists = errors.New("employer profile already exists")
	ErrHasDependents = errors.New("employer profile has dependent records")
)

type Profile struct {
	ID                 int64
	UserID             int64
	CompanyName        string
	CompanyDescription string
	Location           string
	Industry           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Repository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Profile, error)
	GetByUserID(ctx context.Context, userID int64) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
}
