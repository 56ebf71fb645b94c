package repository

import (
	"context"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/domain/offer"
)

const offerColumns = `id, job_post_id, job_seeker_profile_id, employer_profile_id, base_salary, benefits_description, status, created_at, updated_at`

type PostgresOfferRepository struct {
	db database.DB
}

func NewPostgresOfferRepository(db database.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

func (r *PostgresOfferRepository) Create(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO offers (job_post_id, job_seeker_profile_id, employer_profile_id, base_salary, benefits_description, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+offerColumns,
		o.JobPostID, o.JobSeekerProfileID, o.EmployerProfileID, o.BaseSalary, o.BenefitsDescription, string(o.Status),
	)
	return scanOffer(row)
}

func (r *PostgresOfferRepository) Update(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE offers
		 SET job_seeker_profile_id = $5, base_salary = $2, benefits_description = $3, status = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+offerColumns,
		o.ID, o.BaseSalary, o.BenefitsDescription, string(o.Status), o.JobSeekerProfileID,
	)
	updated, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return offer.Offer{}, offer.ErrNotFound
		}
		return offer.Offer{}, err
	}
	return updated, nil
}

func (r *PostgresOfferRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return offer.ErrNotFound
	}
	return nil
}

func (r *PostgresOfferRepository) GetByID(ctx context.Context, id int64) (offer.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return offer.Offer{}, offer.ErrNotFound
		}
		return offer.Offer{}, err
	}
	return o, nil
}

func (r *PostgresOfferRepository) List(ctx context.Context, f offer.Filter) ([]offer.Offer, error) {
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

	q := `SELECT ` + offerColumns + ` FROM offers`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOffer)
}

func scanOffer(row database.Row) (offer.Offer, error) {
	var (
		o      offer.Offer
		status string
	)
	err := row.Scan(&o.ID, &o.JobPostID, &o.JobSeekerProfileID, &o.EmployerProfileID, &o.BaseSalary, &o.BenefitsDescription, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return offer.Offer{}, err
	}
	o.Status = offer.Status(status)
	return o, nil
}
