package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"job-board/internal/database"
	"job-board/internal/domain/user"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	tx *fakeTx
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error { return nil }
func (d *fakeDB) SQLDB() *sql.DB { return nil }

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("unexpected Exec outside tx")
}

func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return errRow{err: errors.New("unexpected QueryRow")}
}

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, nil
}

// fakeTx records every statement and answers Exec from results, keyed by the
// table the statement deletes from.
type fakeTx struct {
	stmts      []string
	results    map[string]int64
	failures   map[string]error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.stmts = append(t.stmts, query)
	for table, err := range t.failures {
		if strings.Contains(query, "FROM "+table+" ") {
			return 0, err
		}
	}
	for table, n := range t.results {
		if strings.Contains(query, "FROM "+table+" ") {
			return n, nil
		}
	}
	return 0, nil
}

func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row {
	return errRow{err: errors.New("unexpected QueryRow")}
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestDeleteWithProfiles_RemovesProfilesBeforeUser(t *testing.T) {
	tx := &fakeTx{results: map[string]int64{"users": 1}}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	require.NoError(t, repo.DeleteWithProfiles(context.Background(), 7))

	require.Len(t, tx.stmts, 3)
	assert.Contains(t, tx.stmts[0], "job_seeker_profiles")
	assert.Contains(t, tx.stmts[1], "employer_profiles")
	assert.Contains(t, tx.stmts[2], "FROM users ")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestDeleteWithProfiles_MissingUserRollsBack(t *testing.T) {
	tx := &fakeTx{}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	err := repo.DeleteWithProfiles(context.Background(), 7)
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestDeleteWithProfiles_DependentsBlockDelete(t *testing.T) {
	tx := &fakeTx{failures: map[string]error{
		"employer_profiles": &pgconn.PgError{Code: "23503", ConstraintName: "job_posts_employer_profile_id_fkey"},
	}}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	err := repo.DeleteWithProfiles(context.Background(), 7)
	assert.ErrorIs(t, err, user.ErrHasDependents)
	assert.True(t, tx.rolledBack)
	assert.Len(t, tx.stmts, 2)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(sql.ErrNoRows))
	assert.False(t, isNoRows(errors.New("boom")))
}
