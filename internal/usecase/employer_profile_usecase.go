package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/employer"
	"job-board/internal/domain/user"
	"job-board/internal/validation"
)

type EmployerProfileInput struct {
	CompanyName        *string `json:"company_name" validate:"required,notblank"`
	CompanyDescription *string `json:"company_description" validate:"required,notblank"`
	Location           *string `json:"location" validate:"required,notblank"`
	Industry           *string `json:"industry" validate:"required,notblank"`
}

type EmployerProfileUsecase interface {
	List(ctx context.Context) ([]employer.Profile, error)
	Get(ctx context.Context, id int64) (employer.Profile, error)
	GetByUser(ctx context.Context, userID int64) (employer.Profile, error)
	Create(ctx context.Context, userID int64, in EmployerProfileInput) (employer.Profile, error)
	Update(ctx context.Context, userID int64, in EmployerProfileInput) (employer.Profile, error)
	Delete(ctx context.Context, userID int64) error
}

type EmployerProfile struct {
	users    user.Repository
	profiles employer.Repository
}

func NewEmployerProfileUsecase(users user.Repository, profiles employer.Repository) *EmployerProfile {
	return &EmployerProfile{users: users, profiles: profiles}
}

func (u *EmployerProfile) List(ctx context.Context) ([]employer.Profile, error) {
	return u.profiles.List(ctx)
}

func (u *EmployerProfile) Get(ctx context.Context, id int64) (employer.Profile, error) {
	return u.profiles.GetByID(ctx, id)
}

func (u *EmployerProfile) GetByUser(ctx context.Context, userID int64) (employer.Profile, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return employer.Profile{}, err
	}
	return u.profiles.GetByUserID(ctx, userID)
}

func (u *EmployerProfile) Create(ctx context.Context, userID int64, in EmployerProfileInput) (employer.Profile, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return employer.Profile{}, err
	}

	errs := validation.Errors{}
	validation.Collect(in, errs)
	_, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		errs.Add("user_id", validation.MsgTaken)
	case !errors.Is(err, employer.ErrNotFound):
		return employer.Profile{}, fmt.Errorf("lookup employer profile: %w", err)
	}
	if err := errs.Err(); err != nil {
		return employer.Profile{}, err
	}

	p, err := u.profiles.Create(ctx, employer.Profile{
		UserID:             userID,
		CompanyName:        trimmed(in.CompanyName),
		CompanyDescription: trimmed(in.CompanyDescription),
		Location:           trimmed(in.Location),
		Industry:           trimmed(in.Industry),
	})
	if errors.Is(err, employer.ErrAlreadyExists) {
		return employer.Profile{}, validation.Errors{"user_id": {validation.MsgTaken}}
	}
	return p, err
}

func (u *EmployerProfile) Update(ctx context.Context, userID int64, in EmployerProfileInput) (employer.Profile, error) {
	cur, err := u.GetByUser(ctx, userID)
	if err != nil {
		return employer.Profile{}, err
	}

	merged := EmployerProfileInput{
		CompanyName:        orDefault(in.CompanyName, cur.CompanyName),
		CompanyDescription: orDefault(in.CompanyDescription, cur.CompanyDescription),
		Location:           orDefault(in.Location, cur.Location),
		Industry:           orDefault(in.Industry, cur.Industry),
	}
	if err := validation.Struct(merged); err != nil {
		return employer.Profile{}, err
	}

	cur.CompanyName = trimmed(merged.CompanyName)
	cur.CompanyDescription = trimmed(merged.CompanyDescription)
	cur.Location = trimmed(merged.Location)
	cur.Industry = trimmed(merged.Industry)
	return u.profiles.Update(ctx, cur)
}

func (u *EmployerProfile) Delete(ctx context.Context, userID int64) error {
	cur, err := u.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return u.profiles.Delete(ctx, cur.ID)
}
