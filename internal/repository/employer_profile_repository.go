package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/domain/employer"
)

const employerProfileColumns = `id, user_id, company_name, company_description, location, industry, created_at, updated_at`

type PostgresEmployerProfileRepository struct {
	db database.DB
}

func NewPostgresEmployerProfileRepository(db database.DB) *PostgresEmployerProfileRepository {
	return &PostgresEmployerProfileRepository{db: db}
}

func (r *PostgresEmployerProfileRepository) Create(ctx context.Context, p employer.Profile) (employer.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO employer_profiles (user_id, company_name, company_description, location, industry)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+employerProfileColumns,
		p.UserID, p.CompanyName, p.CompanyDescription, p.Location, p.Industry,
	)
	created, err := scanEmployerProfile(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employer.Profile{}, employer.ErrAlreadyExists
		}
		return employer.Profile{}, err
	}
	return created, nil
}

func (r *PostgresEmployerProfileRepository) Update(ctx context.Context, p employer.Profile) (employer.Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE employer_profiles
		 SET company_name = $2, company_description = $3, location = $4, industry = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+employerProfileColumns,
		p.ID, p.CompanyName, p.CompanyDescription, p.Location, p.Industry,
	)
	updated, err := scanEmployerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return employer.Profile{}, employer.ErrNotFound
		}
		return employer.Profile{}, err
	}
	return updated, nil
}

func (r *PostgresEmployerProfileRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM employer_profiles WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return employer.ErrHasDependents
		}
		return err
	}
	if n == 0 {
		return employer.ErrNotFound
	}
	return nil
}

func (r *PostgresEmployerProfileRepository) GetByID(ctx context.Context, id int64) (employer.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employerProfileColumns+` FROM employer_profiles WHERE id = $1`, id)
	return r.one(row)
}

func (r *PostgresEmployerProfileRepository) GetByUserID(ctx context.Context, userID int64) (employer.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employerProfileColumns+` FROM employer_profiles WHERE user_id = $1`, userID)
	return r.one(row)
}

func (r *PostgresEmployerProfileRepository) List(ctx context.Context) ([]employer.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employerProfileColumns+` FROM employer_profiles ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEmployerProfile)
}

func (r *PostgresEmployerProfileRepository) one(row database.Row) (employer.Profile, error) {
	p, err := scanEmployerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return employer.Profile{}, employer.ErrNotFound
		}
		return employer.Profile{}, err
	}
	return p, nil
}

func scanEmployerProfile(row database.Row) (employer.Profile, error) {
	var p employer.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDescription, &p.Location, &p.Industry, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
