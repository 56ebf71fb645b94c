package repository

import (
	"context"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/domain/jobpost"
)

const jobPostColumns = `id, employer_profile_id, title, description, required_skills, salary_min, salary_max,
	job_type, location, application_deadline, is_active, created_at, updated_at`

type PostgresJobPostRepository struct {
	db database.DB
}

func NewPostgresJobPostRepository(db database.DB) *PostgresJobPostRepository {
	return &PostgresJobPostRepository{db: db}
}

func (r *PostgresJobPostRepository) Create(ctx context.Context, p jobpost.Post) (jobpost.Post, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_posts (employer_profile_id, title, description, required_skills, salary_min, salary_max,
		                        job_type, location, application_deadline, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobPostColumns,
		p.EmployerProfileID, p.Title, p.Description, p.RequiredSkills, p.SalaryMin, p.SalaryMax,
		int(p.JobType), p.Location, p.ApplicationDeadline, p.IsActive,
	)
	return scanJobPost(row)
}

func (r *PostgresJobPostRepository) Update(ctx context.Context, p jobpost.Post) (jobpost.Post, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_posts
		 SET employer_profile_id = $11, title = $2, description = $3, required_skills = $4, salary_min = $5, salary_max = $6,
		     job_type = $7, location = $8, application_deadline = $9, is_active = $10, updated_at = now()
		 WHERE id = $1
		 RETURNING `+jobPostColumns,
		p.ID, p.Title, p.Description, p.RequiredSkills, p.SalaryMin, p.SalaryMax,
		int(p.JobType), p.Location, p.ApplicationDeadline, p.IsActive, p.EmployerProfileID,
	)
	updated, err := scanJobPost(row)
	if err != nil {
		if isNoRows(err) {
			return jobpost.Post{}, jobpost.ErrNotFound
		}
		return jobpost.Post{}, err
	}
	return updated, nil
}

func (r *PostgresJobPostRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return jobpost.ErrHasDependents
		}
		return err
	}
	if n == 0 {
		return jobpost.ErrNotFound
	}
	return nil
}

func (r *PostgresJobPostRepository) GetByID(ctx context.Context, id int64) (jobpost.Post, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobPostColumns+` FROM job_posts WHERE id = $1`, id)
	p, err := scanJobPost(row)
	if err != nil {
		if isNoRows(err) {
			return jobpost.Post{}, jobpost.ErrNotFound
		}
		return jobpost.Post{}, err
	}
	return p, nil
}

func (r *PostgresJobPostRepository) List(ctx context.Context, f jobpost.Filter) ([]jobpost.Post, error) {
	var (
		where []string
		args  []any
	)
	if f.EmployerProfileID > 0 {
		args = append(args, f.EmployerProfileID)
		where = append(where, fmt.Sprintf("employer_profile_id = $%d", len(args)))
	}
	if f.ActiveOnly {
		where = append(where, "is_active")
	}

	q := `SELECT ` + jobPostColumns + ` FROM job_posts`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJobPost)
}

func scanJobPost(row database.Row) (jobpost.Post, error) {
	var (
		p       jobpost.Post
		jobType int
	)
	err := row.Scan(
		&p.ID, &p.EmployerProfileID, &p.Title, &p.Description, &p.RequiredSkills, &p.SalaryMin, &p.SalaryMax,
		&jobType, &p.Location, &p.ApplicationDeadline, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return jobpost.Post{}, err
	}
	p.JobType = jobpost.JobType(jobType)
	return p, nil
}
