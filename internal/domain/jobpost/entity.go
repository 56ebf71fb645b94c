package jobpost

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"job-board/internal/domain/enum"
)

var (
	ErrNotFound      = errors.New("job post not found")
	ErrHasDependents = errors.New("job post has dependent records")
)

// DateLayout is the wire format of application_deadline.
const DateLayout = "2006-01-02"

type JobType int

const (
	JobTypeFullTime JobType = iota
	JobTypePartTime
	JobTypeContract
	JobTypeInternship
)

var jobTypeNames = []string{"full_time", "part_time", "contract", "internship"}

func (t JobType) Valid() bool { return enum.InRange(int(t), jobTypeNames) }
func (t JobType) String() string { return enum.Name(int(t), jobTypeNames) }
func (t JobType) MarshalJSON() ([]byte, error) { return json.Marshal(int(t)) }

func (t *JobType) UnmarshalJSON(b []byte) error {
	v, err := enum.Parse(b, jobTypeNames)
	if err != nil {
		return err
	}
	*t = JobType(v)
	return nil
}

type Post struct {
	ID                  int64
	EmployerProfileID   int64
	Title               string
	Description         string
	RequiredSkills      string
	SalaryMin           int
	SalaryMax           int
	JobType             JobType
	Location            string
	ApplicationDeadline time.Time
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Filter struct {
	EmployerProfileID int64
	ActiveOnly        bool
}

type Repository interface {
	Create(ctx context.Context, p Post) (Post, error)
	Update(ctx context.Context, p Post) (Post, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Post, error)
	List(ctx context.Context, f Filter) ([]Post, error)
}
