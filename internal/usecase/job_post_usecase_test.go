package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/user"
	"job-board/internal/repository/memory"
	"job-board/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobPostFixture struct {
	store    *memory.Store
	cache    *fakeCache
	events   *recordingPublisher
	uc       *JobPost
	user     user.User
	employer employer.Profile
}

func newJobPostFixture(t *testing.T) jobPostFixture {
	t.Helper()
	store := memory.NewStore()
	u := seedUser(t, store, "e@example.com", user.RoleEmployer)
	ep, err := store.Employers().Create(context.Background(), employer.Profile{UserID: u.ID, CompanyName: "Acme"})
	require.NoError(t, err)

	cache := newFakeCache()
	events := &recordingPublisher{}
	return jobPostFixture{
		store:    store,
		cache:    cache,
		events:   events,
		uc:       NewJobPostUsecase(store.JobPosts(), store.Employers(), cache, time.Minute, events, nil),
		user:     u,
		employer: ep,
	}
}

func validJobPostInput() JobPostInput {
	jt := jobpost.JobTypeFullTime
	active := true
	return JobPostInput{
		Title:               str("Backend Engineer"),
		Description:         str("Build APIs"),
		RequiredSkills:      str("Go"),
		SalaryMin:           num(50000),
		SalaryMax:           num(80000),
		JobType:             &jt,
		Location:            str("Remote"),
		ApplicationDeadline: str("2026-12-31"),
		IsActive:            &active,
	}
}

func TestJobPostUsecase_Create_DefaultsEmployerFromSession(t *testing.T) {
	f := newJobPostFixture(t)

	p, err := f.uc.Create(context.Background(), f.user.ID, validJobPostInput())
	require.NoError(t, err)
	assert.Equal(t, f.employer.ID, p.EmployerProfileID)
	assert.Equal(t, "2026-12-31", p.ApplicationDeadline.Format(jobpost.DateLayout))
	assert.Equal(t, []string{EventJobPostCreated}, f.events.types())
	assert.Equal(t, []string{JobPostCachePattern}, f.cache.deletes)
}

func TestJobPostUsecase_Create_Validation(t *testing.T) {
	f := newJobPostFixture(t)
	ctx := context.Background()

	in := validJobPostInput()
	in.SalaryMin = nil
	_, err := f.uc.Create(ctx, f.user.ID, in)
	requireFieldError(t, err, "salary_min", validation.MsgBlank)

	in = validJobPostInput()
	in.SalaryMax = num(-5)
	in.ApplicationDeadline = str("31/12/2026")
	in.IsActive = nil
	_, err = f.uc.Create(ctx, f.user.ID, in)
	requireFieldError(t, err, "salary_max", validation.MsgNonNegative)
	requireFieldError(t, err, "application_deadline", validation.MsgInvalid)
	requireFieldError(t, err, "is_active", validation.MsgBlank)

	_, err = f.uc.Create(ctx, 0, validJobPostInput())
	requireFieldError(t, err, "employer_profile_id", validation.MsgBlank)

	in = validJobPostInput()
	missing := int64(9999)
	in.EmployerProfileID = &missing
	_, err = f.uc.Create(ctx, f.user.ID, in)
	requireFieldError(t, err, "employer_profile", validation.MsgMustExist)

	assert.Empty(t, f.events.types())
}

func TestJobPostUsecase_Create_FalseIsActiveAndTitleOptional(t *testing.T) {
	f := newJobPostFixture(t)

	in := validJobPostInput()
	in.Title = nil
	inactive := false
	in.IsActive = &inactive

	p, err := f.uc.Create(context.Background(), f.user.ID, in)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.Empty(t, p.Title)
}

func TestJobPostUsecase_JobTypeByNameAndUnknown(t *testing.T) {
	f := newJobPostFixture(t)
	ctx := context.Background()

	var in JobPostInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"description": "d", "required_skills": "Go", "salary_min": 1, "salary_max": 2,
		"job_type": "contract", "location": "Remote", "application_deadline": "2026-01-31", "is_active": true
	}`), &in))
	p, err := f.uc.Create(ctx, f.user.ID, in)
	require.NoError(t, err)
	assert.Equal(t, jobpost.JobTypeContract, p.JobType)

	in.JobType = nil
	require.NoError(t, json.Unmarshal([]byte(`{"job_type": 7}`), &in))
	_, err = f.uc.Create(ctx, f.user.ID, in)
	requireFieldError(t, err, "job_type", validation.MsgNotInList)
}

func TestJobPostUsecase_GetUsesCacheAndUpdateInvalidates(t *testing.T) {
	f := newJobPostFixture(t)
	ctx := context.Background()

	p, err := f.uc.Create(ctx, f.user.ID, validJobPostInput())
	require.NoError(t, err)

	got, err := f.uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Description, got.Description)
	assert.True(t, f.cache.has(JobPostCacheKey(p.ID)))

	_, err = f.uc.List(ctx, jobpost.Filter{})
	require.NoError(t, err)
	assert.True(t, f.cache.has(JobPostListCacheKey(jobpost.Filter{})))

	updated, err := f.uc.Update(ctx, p.ID, JobPostInput{Description: str("Build more APIs")})
	require.NoError(t, err)
	assert.Equal(t, "Build more APIs", updated.Description)
	assert.Equal(t, p.SalaryMin, updated.SalaryMin)
	assert.Equal(t, p.ApplicationDeadline, updated.ApplicationDeadline)
	assert.False(t, f.cache.has(JobPostCacheKey(p.ID)))
	assert.False(t, f.cache.has(JobPostListCacheKey(jobpost.Filter{})))

	got, err = f.uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build more APIs", got.Description)
}

func TestJobPostUsecase_ListFilters(t *testing.T) {
	f := newJobPostFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.user.ID, validJobPostInput())
	require.NoError(t, err)
	in := validJobPostInput()
	inactive := false
	in.IsActive = &inactive
	_, err = f.uc.Create(ctx, f.user.ID, in)
	require.NoError(t, err)

	all, err := f.uc.List(ctx, jobpost.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := f.uc.ListForEmployer(ctx, f.employer.ID, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	_, err = f.uc.ListForEmployer(ctx, 9999, false)
	assert.ErrorIs(t, err, employer.ErrNotFound)
}

func TestJobPostUsecase_DeleteBlockedByApplications(t *testing.T) {
	f := newJobPostFixture(t)
	ctx := context.Background()

	p, err := f.uc.Create(ctx, f.user.ID, validJobPostInput())
	require.NoError(t, err)
	_, err = f.store.Applications().Create(ctx, application.Application{JobPostID: p.ID, JobSeekerProfileID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.Delete(ctx, p.ID), jobpost.ErrHasDependents)
	assert.ErrorIs(t, f.uc.Delete(ctx, 9999), jobpost.ErrNotFound)
}

func TestJobPostUsecase_NilCache(t *testing.T) {
	f := newJobPostFixture(t)
	uc := NewJobPostUsecase(f.store.JobPosts(), f.store.Employers(), nil, 0, nil, nil)
	ctx := context.Background()

	p, err := uc.Create(ctx, f.user.ID, validJobPostInput())
	require.NoError(t, err)
	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}
