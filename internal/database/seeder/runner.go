package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"

	"github.com/sirupsen/logrus"
)

type Runner struct {
	Seeders []Seeder
	Logger  logrus.FieldLogger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return ErrNilDB
	}
	logger := r.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.WithField("seeder", s.Name()).Info("seeded")
	}
	return nil
}
