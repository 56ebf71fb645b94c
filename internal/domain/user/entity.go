package user

import (
	"encoding/json"
	"time"

	"job-board/internal/domain/enum"
)

type Role int

const (
	RoleJobSeeker Role = iota
	RoleEmployer
	RoleAdmin
)

var roleNames = []string{"job_seeker", "employer", "admin"}

func (r Role) Valid() bool { return enum.InRange(int(r), roleNames) }
func (r Role) String() string { return enum.Name(int(r), roleNames) }
func (r Role) MarshalJSON() ([]byte, error) { return json.Marshal(int(r)) }

func (r *Role) UnmarshalJSON(b []byte) error {
	v, err := enum.Parse(b, roleNames)
	if err != nil {
		return err
	}
	*r = Role(v)
	return nil
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
