package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
)

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employer_profiles", "user_id", "company_name", "company_description", "location", "industry"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_seeker_profiles", "user_id", "title", "bio", "years_of_experience", "skills", "availability_status", "portfolio_url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO employer_profiles (user_id, company_name, company_description, location, industry)
		 SELECT id, $2, $3, $4, $5 FROM users WHERE email = $1
		 ON CONFLICT (user_id) DO NOTHING`,
		DemoEmployerEmail,
		"Acme Corp",
		"Builds things for other companies.",
		"Addis Ababa",
		"Software",
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO job_seeker_profiles (user_id, title, bio, years_of_experience, skills, availability_status, portfolio_url)
		 SELECT id, $2, $3, $4, $5, $6, $7 FROM users WHERE email = $1
		 ON CONFLICT (user_id) DO NOTHING`,
		DemoJobSeekerEmail,
		"Backend Developer",
		"Go and Postgres, mostly APIs.",
		3,
		"Go, PostgreSQL, Redis",
		"available",
		"https://example.com/tolesa",
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
