package seeder

import (
	"context"
	"fmt"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/jobpost"
)

type JobPostsSeeder struct{}

func (JobPostsSeeder) Name() string { return "job_posts" }

func (JobPostsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_posts", "employer_profile_id", "title", "description", "required_skills", "salary_min", "salary_max", "job_type", "location", "application_deadline", "is_active"); err != nil {
		return err
	}

	deadline := time.Now().UTC().AddDate(0, 1, 0).Format(jobpost.DateLayout)
	_, err := db.Exec(
		ctx,
		`INSERT INTO job_posts (employer_profile_id, title, description, required_skills, salary_min, salary_max, job_type, location, application_deadline, is_active)
		 SELECT ep.id, $2, $3, $4, $5, $6, $7, $8, $9::date, TRUE
		 FROM employer_profiles ep JOIN users u ON u.id = ep.user_id
		 WHERE u.email = $1
		   AND NOT EXISTS (SELECT 1 FROM job_posts jp WHERE jp.employer_profile_id = ep.id AND jp.title = $2)`,
		DemoEmployerEmail,
		"Backend Engineer",
		"Build and run the job board API.",
		"Go, PostgreSQL",
		50000,
		80000,
		int(jobpost.JobTypeFullTime),
		"Remote",
		deadline,
	)
	if err != nil {
		return fmt.Errorf("insert job post: %w", err)
	}
	return nil
}
