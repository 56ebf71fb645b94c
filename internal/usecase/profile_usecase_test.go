package usecase

import (
	"context"
	"testing"

	"job-board/internal/domain/employer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/repository/memory"
	"job-board/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, store *memory.Store, email string, role user.Role) user.User {
	t.Helper()
	u, err := store.Users().Create(context.Background(), user.User{Name: "U", Email: email, PasswordHash: "x", Role: role})
	require.NoError(t, err)
	return u
}

func validSeekerInput() JobSeekerProfileInput {
	return JobSeekerProfileInput{
		Title:              str("Backend Developer"),
		Bio:                str("Go and Postgres"),
		YearsOfExperience:  num(3),
		Skills:             str("Go"),
		AvailabilityStatus: str("available"),
		PortfolioURL:       str("https://example.com"),
	}
}

func validEmployerInput() EmployerProfileInput {
	return EmployerProfileInput{
		CompanyName:        str("Acme"),
		CompanyDescription: str("Builds things"),
		Location:           str("Remote"),
		Industry:           str("Software"),
	}
}

func TestJobSeekerProfileUsecase_Create(t *testing.T) {
	store := memory.NewStore()
	uc := NewJobSeekerProfileUsecase(store.Users(), store.Seekers())
	ctx := context.Background()
	u := seedUser(t, store, "s@example.com", user.RoleJobSeeker)

	p, err := uc.Create(ctx, u.ID, validSeekerInput())
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, 3, p.YearsOfExperience)

	_, err = uc.Create(ctx, u.ID, validSeekerInput())
	requireFieldError(t, err, "user_id", validation.MsgTaken)

	_, err = uc.Create(ctx, 999, validSeekerInput())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestJobSeekerProfileUsecase_Create_Validation(t *testing.T) {
	store := memory.NewStore()
	uc := NewJobSeekerProfileUsecase(store.Users(), store.Seekers())
	u := seedUser(t, store, "s@example.com", user.RoleJobSeeker)

	in := validSeekerInput()
	in.Bio = nil
	in.YearsOfExperience = num(-1)

	_, err := uc.Create(context.Background(), u.ID, in)
	requireFieldError(t, err, "bio", validation.MsgBlank)
	requireFieldError(t, err, "years_of_experience", validation.MsgNonNegative)
}

func TestJobSeekerProfileUsecase_UpdateAndDelete(t *testing.T) {
	store := memory.NewStore()
	uc := NewJobSeekerProfileUsecase(store.Users(), store.Seekers())
	ctx := context.Background()
	u := seedUser(t, store, "s@example.com", user.RoleJobSeeker)

	_, err := uc.GetByUser(ctx, u.ID)
	assert.ErrorIs(t, err, seeker.ErrNotFound)

	_, err = uc.Create(ctx, u.ID, validSeekerInput())
	require.NoError(t, err)

	p, err := uc.Update(ctx, u.ID, JobSeekerProfileInput{Title: str("Staff Engineer")})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", p.Title)
	assert.Equal(t, "Go and Postgres", p.Bio)

	_, err = uc.Update(ctx, u.ID, JobSeekerProfileInput{Skills: str("")})
	requireFieldError(t, err, "skills", validation.MsgBlank)

	require.NoError(t, uc.Delete(ctx, u.ID))
	assert.ErrorIs(t, uc.Delete(ctx, u.ID), seeker.ErrNotFound)
}

func TestEmployerProfileUsecase_Lifecycle(t *testing.T) {
	store := memory.NewStore()
	uc := NewEmployerProfileUsecase(store.Users(), store.Employers())
	ctx := context.Background()
	u := seedUser(t, store, "e@example.com", user.RoleEmployer)

	_, err := uc.Create(ctx, u.ID, EmployerProfileInput{})
	requireFieldError(t, err, "company_name", validation.MsgBlank)
	requireFieldError(t, err, "industry", validation.MsgBlank)

	p, err := uc.Create(ctx, u.ID, validEmployerInput())
	require.NoError(t, err)

	_, err = uc.Create(ctx, u.ID, validEmployerInput())
	requireFieldError(t, err, "user_id", validation.MsgTaken)

	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)

	updated, err := uc.Update(ctx, u.ID, EmployerProfileInput{Location: str("Addis Ababa")})
	require.NoError(t, err)
	assert.Equal(t, "Addis Ababa", updated.Location)
	assert.Equal(t, "Acme", updated.CompanyName)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, u.ID))
	_, err = uc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, employer.ErrNotFound)
}
