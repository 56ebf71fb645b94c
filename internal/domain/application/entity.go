package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"job-board/internal/domain/enum"
)

var ErrNotFound = errors.New("application not found")

type Status int

const (
	StatusPending Status = iota
	StatusAccepted
	StatusRejected
)

var statusNames = []string{"pending", "accepted", "rejected"}

func (s Status) Valid() bool { return enum.InRange(int(s), statusNames) }
func (s Status) String() string { return enum.Name(int(s), statusNames) }
func (s Status) MarshalJSON() ([]byte, error) { return json.Marshal(int(s)) }

func (s *Status) UnmarshalJSON(b []byte) error {
	v, err := enum.Parse(b, statusNames)
	if err != nil {
		return err
	}
	*s = Status(v)
	return nil
}

type Application struct {
	ID                 int64
	JobPostID          int64
	JobSeekerProfileID int64
	CoverLetter        string
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Filter struct {
	JobPostID          int64
	JobSeekerProfileID int64
}

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	Update(ctx context.Context, a Application) (Application, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Application, error)
	List(ctx context.Context, f Filter) ([]Application, error)
}
