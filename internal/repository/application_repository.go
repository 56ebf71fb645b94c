package repository

import (
	"context"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/domain/application"
)

const applicationColumns = `id, job_post_id, job_seeker_profile_id, cover_letter, status, created_at, updated_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_post_id, job_seeker_profile_id, cover_letter, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+applicationColumns,
		a.JobPostID, a.JobSeekerProfileID, a.CoverLetter, int(a.Status),
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications
		 SET job_seeker_profile_id = $4, cover_letter = $2, status = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		a.ID, a.CoverLetter, int(a.Status), a.JobSeekerProfileID,
	)
	updated, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return updated, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, f application.Filter) ([]application.Application, error) {
	var (
		where []string
		args  []any
	)
	if f.JobPostID > 0 {
		args = append(args, f.JobPostID)
		where = append(where, fmt.Sprintf("job_post_id = $%d", len(args)))
	}
	if f.JobSeekerProfileID > 0 {
		args = append(args, f.JobSeekerProfileID)
		where = append(where, fmt.Sprintf("job_seeker_profile_id = $%d", len(args)))
	}

	q := `SELECT ` + applicationColumns + ` FROM applications`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanApplication)
}

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a      application.Application
		status int
	)
	if err := row.Scan(&a.ID, &a.JobPostID, &a.JobSeekerProfileID, &a.CoverLetter, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
