package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/validation"

	"github.com/sirupsen/logrus"
)

// JobPostInput is used for both create and partial update. On update,
// omitted fields keep their stored value.
type JobPostInput struct {
	EmployerProfileID   *int64           `json:"employer_profile_id" validate:"required"`
	Title               *string          `json:"title"`
	Description         *string          `json:"description" validate:"required,notblank"`
	RequiredSkills      *string          `json:"required_skills" validate:"required,notblank"`
	SalaryMin           *int             `json:"salary_min" validate:"required,gte=0"`
	SalaryMax           *int             `json:"salary_max" validate:"required,gte=0"`
	JobType             *jobpost.JobType `json:"job_type" validate:"required,enum"`
	Location            *string          `json:"location" validate:"required,notblank"`
	ApplicationDeadline *string          `json:"application_deadline" validate:"required,notblank,datetime=2006-01-02"`
	IsActive            *bool            `json:"is_active" validate:"required"`
}

type JobPostUsecase interface {
	List(ctx context.Context, f jobpost.Filter) ([]jobpost.Post, error)
	ListForEmployer(ctx context.Context, employerProfileID int64, activeOnly bool) ([]jobpost.Post, error)
	Get(ctx context.Context, id int64) (jobpost.Post, error)
	// Create falls back to the signed-in user's employer profile when the
	// payload carries no employer_profile_id; currentUserID is 0 when nobody
	// is signed in.
	Create(ctx context.Context, currentUserID int64, in JobPostInput) (jobpost.Post, error)
	Update(ctx context.Context, id int64, in JobPostInput) (jobpost.Post, error)
	Delete(ctx context.Context, id int64) error
}

type JobPost struct {
	posts     jobpost.Repository
	employers employer.Repository
	cache     Cache
	ttl       time.Duration
	events    EventPublisher
	logger    logrus.FieldLogger
}

func NewJobPostUsecase(posts jobpost.Repository, employers employer.Repository, cache Cache, ttl time.Duration, events EventPublisher, logger logrus.FieldLogger) *JobPost {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &JobPost{posts: posts, employers: employers, cache: cache, ttl: ttl, events: events, logger: logger}
}

func (u *JobPost) List(ctx context.Context, f jobpost.Filter) ([]jobpost.Post, error) {
	key := JobPostListCacheKey(f)
	var cached []jobpost.Post
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	posts, err := u.posts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	u.cacheSet(ctx, key, posts)
	return posts, nil
}

func (u *JobPost) ListForEmployer(ctx context.Context, employerProfileID int64, activeOnly bool) ([]jobpost.Post, error) {
	if _, err := u.employers.GetByID(ctx, employerProfileID); err != nil {
		return nil, err
	}
	return u.List(ctx, jobpost.Filter{EmployerProfileID: employerProfileID, ActiveOnly: activeOnly})
}

func (u *JobPost) Get(ctx context.Context, id int64) (jobpost.Post, error) {
	key := JobPostCacheKey(id)
	var cached jobpost.Post
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	p, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return jobpost.Post{}, err
	}
	u.cacheSet(ctx, key, p)
	return p, nil
}

func (u *JobPost) Create(ctx context.Context, currentUserID int64, in JobPostInput) (jobpost.Post, error) {
	if in.EmployerProfileID == nil && currentUserID > 0 {
		p, err := u.employers.GetByUserID(ctx, currentUserID)
		switch {
		case err == nil:
			in.EmployerProfileID = &p.ID
		case !errors.Is(err, employer.ErrNotFound):
			return jobpost.Post{}, fmt.Errorf("lookup employer profile: %w", err)
		}
	}

	post, err := u.build(ctx, jobpost.Post{}, in)
	if err != nil {
		return jobpost.Post{}, err
	}

	created, err := u.posts.Create(ctx, post)
	if err != nil {
		return jobpost.Post{}, fmt.Errorf("create job post: %w", err)
	}
	u.changed(ctx, EventJobPostCreated, created.ID)
	return created, nil
}

func (u *JobPost) Update(ctx context.Context, id int64, in JobPostInput) (jobpost.Post, error) {
	cur, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return jobpost.Post{}, err
	}

	merged := JobPostInput{
		EmployerProfileID:   orDefault(in.EmployerProfileID, cur.EmployerProfileID),
		Title:               orDefault(in.Title, cur.Title),
		Description:         orDefault(in.Description, cur.Description),
		RequiredSkills:      orDefault(in.RequiredSkills, cur.RequiredSkills),
		SalaryMin:           orDefault(in.SalaryMin, cur.SalaryMin),
		SalaryMax:           orDefault(in.SalaryMax, cur.SalaryMax),
		JobType:             orDefault(in.JobType, cur.JobType),
		Location:            orDefault(in.Location, cur.Location),
		ApplicationDeadline: orDefault(in.ApplicationDeadline, cur.ApplicationDeadline.Format(jobpost.DateLayout)),
		IsActive:            orDefault(in.IsActive, cur.IsActive),
	}

	post, err := u.build(ctx, cur, merged)
	if err != nil {
		return jobpost.Post{}, err
	}

	updated, err := u.posts.Update(ctx, post)
	if err != nil {
		return jobpost.Post{}, err
	}
	u.changed(ctx, EventJobPostUpdated, updated.ID)
	return updated, nil
}

func (u *JobPost) Delete(ctx context.Context, id int64) error {
	if err := u.posts.Delete(ctx, id); err != nil {
		return err
	}
	u.changed(ctx, EventJobPostDeleted, id)
	return nil
}

// build validates in and copies it onto base.
func (u *JobPost) build(ctx context.Context, base jobpost.Post, in JobPostInput) (jobpost.Post, error) {
	errs := validation.Errors{}
	validation.Collect(in, errs)
	if in.EmployerProfileID != nil {
		if _, err := u.employers.GetByID(ctx, *in.EmployerProfileID); err != nil {
			if !errors.Is(err, employer.ErrNotFound) {
				return jobpost.Post{}, fmt.Errorf("lookup employer profile: %w", err)
			}
			errs.Add("employer_profile", validation.MsgMustExist)
		}
	}
	if err := errs.Err(); err != nil {
		return jobpost.Post{}, err
	}

	deadline, err := time.Parse(jobpost.DateLayout, *in.ApplicationDeadline)
	if err != nil {
		return jobpost.Post{}, validation.Errors{"application_deadline": {validation.MsgInvalid}}
	}

	base.EmployerProfileID = *in.EmployerProfileID
	base.Title = trimmed(in.Title)
	base.Description = trimmed(in.Description)
	base.RequiredSkills = trimmed(in.RequiredSkills)
	base.SalaryMin = *in.SalaryMin
	base.SalaryMax = *in.SalaryMax
	base.JobType = *in.JobType
	base.Location = trimmed(in.Location)
	base.ApplicationDeadline = deadline
	base.IsActive = *in.IsActive
	return base, nil
}

func (u *JobPost) changed(ctx context.Context, event string, id int64) {
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, JobPostCachePattern); err != nil {
			u.logger.WithError(err).Warn("job post cache invalidation failed")
		}
	}
	publish(u.events, event, id)
}

func (u *JobPost) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.WithError(err).WithField("key", key).Warn("job post cache read failed")
		return false
	}
	if hit {
		u.logger.WithField("key", key).Debug("job post cache hit")
	}
	return hit
}

func (u *JobPost) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.ttl); err != nil {
		u.logger.WithError(err).WithField("key", key).Warn("job post cache write failed")
	}
}
