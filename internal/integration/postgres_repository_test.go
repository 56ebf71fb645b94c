package integration

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/domain/application"
	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/offer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_PostgresRepositories(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	users := repository.NewPostgresUserRepository(db)
	employers := repository.NewPostgresEmployerProfileRepository(db)
	seekers := repository.NewPostgresJobSeekerProfileRepository(db)
	posts := repository.NewPostgresJobPostRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	offers := repository.NewPostgresOfferRepository(db)

	suffix := uuid.NewString()[:8]
	eu, err := users.Create(ctx, user.User{Name: "Employer", Email: "employer-" + suffix + "@example.com", PasswordHash: "x", Role: user.RoleEmployer})
	require.NoError(t, err)
	su, err := users.Create(ctx, user.User{Name: "Seeker", Email: "seeker-" + suffix + "@example.com", PasswordHash: "x", Role: user.RoleJobSeeker})
	require.NoError(t, err)
	defer cleanup(t, db, su.ID, eu.ID)

	_, err = users.Create(ctx, user.User{Name: "Dup", Email: eu.Email, PasswordHash: "x"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	ep, err := employers.Create(ctx, employer.Profile{UserID: eu.ID, CompanyName: "Acme", CompanyDescription: "d", Location: "Remote", Industry: "Software"})
	require.NoError(t, err)
	_, err = employers.Create(ctx, employer.Profile{UserID: eu.ID, CompanyName: "Again"})
	assert.ErrorIs(t, err, employer.ErrAlreadyExists)

	sp, err := seekers.Create(ctx, seeker.Profile{UserID: su.ID, Title: "Dev", Bio: "b", YearsOfExperience: 2, Skills: "Go", AvailabilityStatus: "available", PortfolioURL: "https://example.com"})
	require.NoError(t, err)

	post, err := posts.Create(ctx, jobpost.Post{
		EmployerProfileID:   ep.ID,
		Description:         "Build APIs",
		RequiredSkills:      "Go",
		SalaryMin:           1,
		SalaryMax:           2,
		JobType:             jobpost.JobTypeContract,
		Location:            "Remote",
		ApplicationDeadline: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:            true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", post.ApplicationDeadline.Format(jobpost.DateLayout))

	active, err := posts.List(ctx, jobpost.Filter{EmployerProfileID: ep.ID, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, jobpost.JobTypeContract, active[0].JobType)

	app, err := applications.Create(ctx, application.Application{JobPostID: post.ID, JobSeekerProfileID: sp.ID, Status: application.StatusPending})
	require.NoError(t, err)
	o, err := offers.Create(ctx, offer.Offer{JobPostID: post.ID, JobSeekerProfileID: sp.ID, EmployerProfileID: ep.ID, BaseSalary: 10, Status: offer.StatusPending})
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID), jobpost.ErrHasDependents)
	assert.ErrorIs(t, users.DeleteWithProfiles(ctx, su.ID), user.ErrHasDependents)

	require.NoError(t, offers.Delete(ctx, o.ID))
	require.NoError(t, applications.Delete(ctx, app.ID))
	require.NoError(t, posts.Delete(ctx, post.ID))

	require.NoError(t, users.DeleteWithProfiles(ctx, su.ID))
	_, err = seekers.GetByID(ctx, sp.ID)
	assert.ErrorIs(t, err, seeker.ErrNotFound)
	_, err = users.GetByID(ctx, su.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	usr := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || usr == "" {
		t.Skip("missing test DB env vars: set JOBBOARD_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     usr,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}, "job-board-integration")
	require.NoError(t, err, "connect db")
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	r := migration.Runner{Dir: resolveMigrationsDir(t), Logger: logger}
	_, err := r.Run(ctx, db.SQLDB())
	require.NoError(t, err, "run migrations")
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")

	// this file: internal/integration/postgres_repository_test.go
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")
	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	require.NotEmpty(t, files, "no migration files found in %s", migDir)
	return migDir
}

func cleanup(t *testing.T, db database.DB, userIDs ...int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, id := range userIDs {
		_, _ = db.Exec(ctx, `DELETE FROM applications WHERE job_seeker_profile_id IN (SELECT id FROM job_seeker_profiles WHERE user_id = $1)`, id)
		_, _ = db.Exec(ctx, `DELETE FROM offers WHERE job_seeker_profile_id IN (SELECT id FROM job_seeker_profiles WHERE user_id = $1)`, id)
		_, _ = db.Exec(ctx, `DELETE FROM offers WHERE employer_profile_id IN (SELECT id FROM employer_profiles WHERE user_id = $1)`, id)
		_, _ = db.Exec(ctx, `DELETE FROM job_posts WHERE employer_profile_id IN (SELECT id FROM employer_profiles WHERE user_id = $1)`, id)
		_, _ = db.Exec(ctx, `DELETE FROM job_seeker_profiles WHERE user_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM employer_profiles WHERE user_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	}
}

func stringsOrDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
