package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadMigrations_SortsAndSkipsUnrelated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__create_profiles.sql", "CREATE TABLE b (id int);")
	writeFile(t, dir, "V1__create_users.sql", "  CREATE TABLE a (id int);\n")
	writeFile(t, dir, "README.md", "not a migration")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "V3__dir.sql"), 0o755))

	migs, err := LoadMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create_users", migs[0].Name)
	assert.Equal(t, "CREATE TABLE a (id int);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := LoadMigrations(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, migs)
}

func TestLoadMigrations_RejectsEmptyAndDuplicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__empty.sql", "   ")
	_, err := LoadMigrations(dir)
	require.Error(t, err)

	dir = t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V01__b.sql", "SELECT 2;")
	_, err = LoadMigrations(dir)
	require.ErrorContains(t, err, "duplicate migration version")
}

func TestPending(t *testing.T) {
	migs := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}
	got := Pending(migs, map[int64]string{2: "x"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Version)
	assert.Equal(t, int64(3), got[1].Version)
}

func TestRun_NilDB(t *testing.T) {
	_, err := Runner{Dir: t.TempDir()}.Run(t.Context(), nil)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestShippedMigrationsLoad(t *testing.T) {
	migs, err := LoadMigrations(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	require.Len(t, migs, 4)
	for i, m := range migs {
		assert.Equal(t, int64(i+1), m.Version)
	}
}
