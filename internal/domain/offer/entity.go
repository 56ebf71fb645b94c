package offer

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("offer not found")

// Status is stored and serialized as its string value.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Offer struct {
	ID                  int64
	JobPostID           int64
	JobSeekerProfileID  int64
	EmployerProfileID   int64
	BaseSalary          int
	BenefitsDescription string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Filter struct {
	JobPostID          int64
	JobSeekerProfileID int64
}

type Repository interface {
	Create(ctx context.Context, o Offer) (Offer, error)
	Update(ctx context.Context, o Offer) (Offer, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Offer, error)
	List(ctx context.Context, f Filter) ([]Offer, error)
}
