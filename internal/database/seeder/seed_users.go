package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoPassword       = "password123"
	DemoEmployerEmail  = "employer@example.com"
	DemoJobSeekerEmail = "seeker@example.com"
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "role"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name  string
		Email string
		Role  user.Role
	}{
		{Name: "Acme Recruiter", Email: DemoEmployerEmail, Role: user.RoleEmployer},
		{Name: "Tolesa Seeker", Email: DemoJobSeekerEmail, Role: user.RoleJobSeeker},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
			it.Name,
			it.Email,
			string(hash),
			int(it.Role),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
