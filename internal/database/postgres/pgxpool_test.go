package postgres

import (
	"context"
	"testing"

	"job-board/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		DBHost:     " localhost ",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "p@ss word",
		DBName:     "job_board",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password='p@ss word' dbname=job_board sslmode=disable",
		DSN(cfg))
}

func TestDSN_EscapesQuotesAndEmpty(t *testing.T) {
	cfg := config.DatabaseConfig{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: `it's`, DBName: "n"}
	assert.Equal(t, `host=db port=5432 user=u password='it\'s' dbname=n`, DSN(cfg))

	cfg.DBPassword = ""
	assert.Equal(t, `host=db port=5432 user=u password='' dbname=n`, DSN(cfg))
}

func TestPool_NilIsSafe(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), ErrNilDB)
	assert.NoError(t, p.Close())
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrNilDB)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), ErrNilDB)
	assert.Nil(t, p.SQLDB())
}
