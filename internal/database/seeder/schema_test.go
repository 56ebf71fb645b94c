package seeder

import (
	"context"
	"errors"
	"testing"

	"job-board/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type columnRows struct {
	cols []string
	i    int
}

func (r *columnRows) Close() {}
func (r *columnRows) Err() error { return nil }

func (r *columnRows) Next() bool {
	r.i++
	return r.i <= len(r.cols)
}

func (r *columnRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.cols[r.i-1]
	return nil
}

type columnsDB struct {
	database.DB
	cols  []string
	err   error
	table string
}

func (d *columnsDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.table, _ = args[0].(string)
	return &columnRows{cols: d.cols}, nil
}

func TestEnsureTableColumns(t *testing.T) {
	ctx := context.Background()
	db := &columnsDB{cols: []string{"id", "name", "email"}}

	require.NoError(t, EnsureTableColumns(ctx, db, "users", "id", "email"))
	assert.Equal(t, "users", db.table)

	err := EnsureTableColumns(ctx, db, "users", "role", "id", "password_hash")
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.ErrorContains(t, err, "users.password_hash, users.role")
}

func TestEnsureTableColumns_Errors(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, EnsureTableColumns(ctx, nil, "users"), ErrNilDB)
	assert.Error(t, EnsureTableColumns(ctx, &columnsDB{}, " "))

	boom := errors.New("connection reset")
	err := EnsureTableColumns(ctx, &columnsDB{err: boom}, "users", "id")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "list columns of users")
}
