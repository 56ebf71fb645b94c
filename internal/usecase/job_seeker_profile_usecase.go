package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/validation"
)

type JobSeekerProfileInput struct {
	Title              *string `json:"title" validate:"required,notblank"`
	Bio                *string `json:"bio" validate:"required,notblank"`
	YearsOfExperience  *int    `json:"years_of_experience" validate:"required,gte=0"`
	Skills             *string `json:"skills" validate:"required,notblank"`
	AvailabilityStatus *string `json:"availability_status" validate:"required,notblank"`
	PortfolioURL       *string `json:"portfolio_url" validate:"required,notblank"`
}

type JobSeekerProfileUsecase interface {
	List(ctx context.Context) ([]seeker.Profile, error)
	Get(ctx context.Context, id int64) (seeker.Profile, error)
	GetByUser(ctx context.Context, userID int64) (seeker.Profile, error)
	Create(ctx context.Context, userID int64, in JobSeekerProfileInput) (seeker.Profile, error)
	Update(ctx context.Context, userID int64, in JobSeekerProfileInput) (seeker.Profile, error)
	Delete(ctx context.Context, userID int64) error
}

type JobSeekerProfile struct {
	users    user.Repository
	profiles seeker.Repository
}

func NewJobSeekerProfileUsecase(users user.Repository, profiles seeker.Repository) *JobSeekerProfile {
	return &JobSeekerProfile{users: users, profiles: profiles}
}

func (u *JobSeekerProfile) List(ctx context.Context) ([]seeker.Profile, error) {
	return u.profiles.List(ctx)
}

func (u *JobSeekerProfile) Get(ctx context.Context, id int64) (seeker.Profile, error) {
	return u.profiles.GetByID(ctx, id)
}

func (u *JobSeekerProfile) GetByUser(ctx context.Context, userID int64) (seeker.Profile, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return seeker.Profile{}, err
	}
	return u.profiles.GetByUserID(ctx, userID)
}

func (u *JobSeekerProfile) Create(ctx context.Context, userID int64, in JobSeekerProfileInput) (seeker.Profile, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return seeker.Profile{}, err
	}

	errs := validation.Errors{}
	validation.Collect(in, errs)
	_, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		errs.Add("user_id", validation.MsgTaken)
	case !errors.Is(err, seeker.ErrNotFound):
		return seeker.Profile{}, fmt.Errorf("lookup job seeker profile: %w", err)
	}
	if err := errs.Err(); err != nil {
		return seeker.Profile{}, err
	}

	p, err := u.profiles.Create(ctx, seeker.Profile{
		UserID:             userID,
		Title:              trimmed(in.Title),
		Bio:                trimmed(in.Bio),
		YearsOfExperience:  *in.YearsOfExperience,
		Skills:             trimmed(in.Skills),
		AvailabilityStatus: trimmed(in.AvailabilityStatus),
		PortfolioURL:       trimmed(in.PortfolioURL),
	})
	if errors.Is(err, seeker.ErrAlreadyExists) {
		return seeker.Profile{}, validation.Errors{"user_id": {validation.MsgTaken}}
	}
	return p, err
}

func (u *JobSeekerProfile) Update(ctx context.Context, userID int64, in JobSeekerProfileInput) (seeker.Profile, error) {
	cur, err := u.GetByUser(ctx, userID)
	if err != nil {
		return seeker.Profile{}, err
	}

	merged := JobSeekerProfileInput{
		Title:              orDefault(in.Title, cur.Title),
		Bio:                orDefault(in.Bio, cur.Bio),
		YearsOfExperience:  orDefault(in.YearsOfExperience, cur.YearsOfExperience),
		Skills:             orDefault(in.Skills, cur.Skills),
		AvailabilityStatus: orDefault(in.AvailabilityStatus, cur.AvailabilityStatus),
		PortfolioURL:       orDefault(in.PortfolioURL, cur.PortfolioURL),
	}
	if err := validation.Struct(merged); err != nil {
		return seeker.Profile{}, err
	}

	cur.Title = trimmed(merged.Title)
	cur.Bio = trimmed(merged.Bio)
	cur.YearsOfExperience = *merged.YearsOfExperience
	cur.Skills = trimmed(merged.Skills)
	cur.AvailabilityStatus = trimmed(merged.AvailabilityStatus)
	cur.PortfolioURL = trimmed(merged.PortfolioURL)
	return u.profiles.Update(ctx, cur)
}

func (u *JobSeekerProfile) Delete(ctx context.Context, userID int64) error {
	cur, err := u.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return u.profiles.Delete(ctx, cur.ID)
}
