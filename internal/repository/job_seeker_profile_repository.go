package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/domain/seeker"
)

const jobSeekerProfileColumns = `id, user_id, title, bio, years_of_experience, skills, availability_status, portfolio_url, created_at, updated_at`

type PostgresJobSeekerProfileRepository struct {
	db database.DB
}

func NewPostgresJobSeekerProfileRepository(db database.DB) *PostgresJobSeekerProfileRepository {
	return &PostgresJobSeekerProfileRepository{db: db}
}

func (r *PostgresJobSeekerProfileRepository) Create(ctx context.Context, p seeker.Profile) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_seeker_profiles (user_id, title, bio, years_of_experience, skills, availability_status, portfolio_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+jobSeekerProfileColumns,
		p.UserID, p.Title, p.Bio, p.YearsOfExperience, p.Skills, p.AvailabilityStatus, p.PortfolioURL,
	)
	created, err := scanJobSeekerProfile(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return seeker.Profile{}, seeker.ErrAlreadyExists
		}
		return seeker.Profile{}, err
	}
	return created, nil
}

func (r *PostgresJobSeekerProfileRepository) Update(ctx context.Context, p seeker.Profile) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_seeker_profiles
		 SET title = $2, bio = $3, years_of_experience = $4, skills = $5, availability_status = $6, portfolio_url = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+jobSeekerProfileColumns,
		p.ID, p.Title, p.Bio, p.YearsOfExperience, p.Skills, p.AvailabilityStatus, p.PortfolioURL,
	)
	updated, err := scanJobSeekerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return seeker.Profile{}, seeker.ErrNotFound
		}
		return seeker.Profile{}, err
	}
	return updated, nil
}

func (r *PostgresJobSeekerProfileRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_seeker_profiles WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return seeker.ErrHasDependents
		}
		return err
	}
	if n == 0 {
		return seeker.ErrNotFound
	}
	return nil
}

func (r *PostgresJobSeekerProfileRepository) GetByID(ctx context.Context, id int64) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobSeekerProfileColumns+` FROM job_seeker_profiles WHERE id = $1`, id)
	return r.one(row)
}

func (r *PostgresJobSeekerProfileRepository) GetByUserID(ctx context.Context, userID int64) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobSeekerProfileColumns+` FROM job_seeker_profiles WHERE user_id = $1`, userID)
	return r.one(row)
}

func (r *PostgresJobSeekerProfileRepository) List(ctx context.Context) ([]seeker.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobSeekerProfileColumns+` FROM job_seeker_profiles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJobSeekerProfile)
}

func (r *PostgresJobSeekerProfileRepository) one(row database.Row) (seeker.Profile, error) {
	p, err := scanJobSeekerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return seeker.Profile{}, seeker.ErrNotFound
		}
		return seeker.Profile{}, err
	}
	return p, nil
}

func scanJobSeekerProfile(row database.Row) (seeker.Profile, error) {
	var p seeker.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Bio, &p.YearsOfExperience, &p.Skills, &p.AvailabilityStatus, &p.PortfolioURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
