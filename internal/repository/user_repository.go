package repository

import (
	"context"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/domain/user"
)

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.Name, u.Email, u.PasswordHash, int(u.Role),
	)
	created, err := scanUser(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return created, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, int(u.Role),
	)
	updated, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return updated, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

// DeleteWithProfiles removes the job seeker profile, the employer profile and
// the user, in that order, in one transaction.
func (r *PostgresUserRepository) DeleteWithProfiles(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM job_seeker_profiles WHERE user_id = $1`, id); err != nil {
			return wrapUserDeleteErr("delete job seeker profile", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM employer_profiles WHERE user_id = $1`, id); err != nil {
			return wrapUserDeleteErr("delete employer profile", err)
		}

		n, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return wrapUserDeleteErr("delete user", err)
		}
		if n == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

func wrapUserDeleteErr(step string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", step, user.ErrHasDependents)
	}
	return fmt.Errorf("%s: %w", step, err)
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u    user.User
		role int
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
