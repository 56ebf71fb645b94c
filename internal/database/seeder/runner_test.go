package seeder

import (
	"context"
	"errors"
	"testing"

	"job-board/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSeeder struct {
	name string
	err  error
	runs *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(_ context.Context, _ database.DB) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

type stubDB struct{ database.DB }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestRunner_RunsInOrderAndStopsOnError(t *testing.T) {
	var runs []string
	boom := errors.New("boom")
	r := Runner{
		Seeders: []Seeder{
			recordingSeeder{name: "users", runs: &runs},
			nil,
			recordingSeeder{name: "profiles", err: boom, runs: &runs},
			recordingSeeder{name: "job_posts", runs: &runs},
		},
		Logger: quietLogger(),
	}

	err := r.Run(context.Background(), stubDB{})
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "seed profiles")
	assert.Equal(t, []string{"users", "profiles"}, runs)
}

func TestRunner_NilDB(t *testing.T) {
	require.ErrorIs(t, Runner{}.Run(context.Background(), nil), ErrNilDB)
}

func TestDefaults(t *testing.T) {
	names := make([]string, 0)
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"users", "profiles", "job_posts"}, names)
}
