package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"
	"job-board/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type env struct {
	cfg config.Config
	log *logrus.Logger
	db  database.DB
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Database maintenance for the job board API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(cfg.Log.Level, cfg.App.IsProduction())

			connCtx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			db, err := dbpostgres.Connect(connCtx, cfg.Database, cfg.App.AppName+"-migrate")
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			e.db = db
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if e.db == nil {
				return nil
			}
			return e.db.Close()
		},
	}

	root.AddCommand(newUpCmd(e), newSeedCmd(e))
	return root
}

func newUpCmd(e *env) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = e.cfg.App.MigrationsDir
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			applied, err := migration.Runner{Dir: dir, Logger: e.log}.Run(ctx, e.db.SQLDB())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			e.log.WithField("applied", len(applied)).Info("migrations up to date")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	return cmd
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, profiles and a job post",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			r := seeder.Runner{Seeders: seeder.Defaults(), Logger: e.log}
			if err := r.Run(ctx, e.db); err != nil {
				return err
			}
			e.log.WithField("password", seeder.DemoPassword).Info("demo accounts ready")
			return nil
		},
	}
}
