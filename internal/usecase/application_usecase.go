package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain/application"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/seeker"
	"job-board/internal/validation"
)

type ApplicationInput struct {
	JobSeekerProfileID *int64              `json:"job_seeker_profile_id" validate:"required"`
	CoverLetter        *string             `json:"cover_letter"`
	Status             *application.Status `json:"status" validate:"required,enum"`
}

type ApplicationUsecase interface {
	ListForJobPost(ctx context.Context, jobPostID int64) ([]application.Application, error)
	ListForSeeker(ctx context.Context, seekerProfileID int64) ([]application.Application, error)
	Get(ctx context.Context, id int64) (application.Application, error)
	// Create falls back to the signed-in user's job seeker profile when the
	// payload carries no job_seeker_profile_id.
	Create(ctx context.Context, jobPostID, currentUserID int64, in ApplicationInput) (application.Application, error)
	Update(ctx context.Context, id int64, in ApplicationInput) (application.Application, error)
	Delete(ctx context.Context, id int64) error
}

type Application struct {
	applications application.Repository
	posts        jobpost.Repository
	seekers      seeker.Repository
	events       EventPublisher
}

func NewApplicationUsecase(applications application.Repository, posts jobpost.Repository, seekers seeker.Repository, events EventPublisher) *Application {
	return &Application{applications: applications, posts: posts, seekers: seekers, events: events}
}

func (u *Application) ListForJobPost(ctx context.Context, jobPostID int64) ([]application.Application, error) {
	if _, err := u.posts.GetByID(ctx, jobPostID); err != nil {
		return nil, err
	}
	return u.applications.List(ctx, application.Filter{JobPostID: jobPostID})
}

func (u *Application) ListForSeeker(ctx context.Context, seekerProfileID int64) ([]application.Application, error) {
	if _, err := u.seekers.GetByID(ctx, seekerProfileID); err != nil {
		return nil, err
	}
	return u.applications.List(ctx, application.Filter{JobSeekerProfileID: seekerProfileID})
}

func (u *Application) Get(ctx context.Context, id int64) (application.Application, error) {
	return u.applications.GetByID(ctx, id)
}

func (u *Application) Create(ctx context.Context, jobPostID, currentUserID int64, in ApplicationInput) (application.Application, error) {
	if _, err := u.posts.GetByID(ctx, jobPostID); err != nil {
		return application.Application{}, err
	}

	if in.JobSeekerProfileID == nil && currentUserID > 0 {
		p, err := u.seekers.GetByUserID(ctx, currentUserID)
		switch {
		case err == nil:
			in.JobSeekerProfileID = &p.ID
		case !errors.Is(err, seeker.ErrNotFound):
			return application.Application{}, fmt.Errorf("lookup job seeker profile: %w", err)
		}
	}
	in.Status = orDefault(in.Status, application.StatusPending)

	a, err := u.build(ctx, application.Application{JobPostID: jobPostID}, in)
	if err != nil {
		return application.Application{}, err
	}

	created, err := u.applications.Create(ctx, a)
	if err != nil {
		return application.Application{}, fmt.Errorf("create application: %w", err)
	}
	publish(u.events, EventApplicationCreated, created.ID)
	return created, nil
}

func (u *Application) Update(ctx context.Context, id int64, in ApplicationInput) (application.Application, error) {
	cur, err := u.applications.GetByID(ctx, id)
	if err != nil {
		return application.Application{}, err
	}

	merged := ApplicationInput{
		JobSeekerProfileID: orDefault(in.JobSeekerProfileID, cur.JobSeekerProfileID),
		CoverLetter:        orDefault(in.CoverLetter, cur.CoverLetter),
		Status:             orDefault(in.Status, cur.Status),
	}
	a, err := u.build(ctx, cur, merged)
	if err != nil {
		return application.Application{}, err
	}

	updated, err := u.applications.Update(ctx, a)
	if err != nil {
		return application.Application{}, err
	}
	publish(u.events, EventApplicationUpdated, updated.ID)
	return updated, nil
}

func (u *Application) Delete(ctx context.Context, id int64) error {
	return u.applications.Delete(ctx, id)
}

func (u *Application) build(ctx context.Context, base application.Application, in ApplicationInput) (application.Application, error) {
	errs := validation.Errors{}
	validation.Collect(in, errs)
	if in.JobSeekerProfileID != nil {
		if _, err := u.seekers.GetByID(ctx, *in.JobSeekerProfileID); err != nil {
			if !errors.Is(err, seeker.ErrNotFound) {
				return application.Application{}, fmt.Errorf("lookup job seeker profile: %w", err)
			}
			errs.Add("job_seeker_profile", validation.MsgMustExist)
		}
	}
	if err := errs.Err(); err != nil {
		return application.Application{}, err
	}

	base.JobSeekerProfileID = *in.JobSeekerProfileID
	base.CoverLetter = trimmed(in.CoverLetter)
	base.Status = *in.Status
	return base, nil
}
