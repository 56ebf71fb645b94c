package app

import (
	"context"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/domain/application"
	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/offer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/repository"
	"job-board/internal/ws"

	"github.com/sirupsen/logrus"
)

type Repositories struct {
	Users        user.Repository
	Employers    employer.Repository
	Seekers      seeker.Repository
	JobPosts     jobpost.Repository
	Applications application.Repository
	Offers       offer.Repository
}

func NewPostgresRepositories(db database.DB) Repositories {
	return Repositories{
		Users:        repository.NewPostgresUserRepository(db),
		Employers:    repository.NewPostgresEmployerProfileRepository(db),
		Seekers:      repository.NewPostgresJobSeekerProfileRepository(db),
		JobPosts:     repository.NewPostgresJobPostRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Offers:       repository.NewPostgresOfferRepository(db),
	}
}

// Container holds the process-wide dependencies. Cache and Hub are optional.
type Container struct {
	Config config.Config
	Logger *logrus.Logger
	DB     database.DB
	Repos  Repositories
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*Container, error) {
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database, cfg.App.AppName)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Repos:  NewPostgresRepositories(db),
		Cache:  cache.NewRedis(ctx, cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
	}, nil
}

func (c *Container) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.logger().WithError(err).Warn("redis close failed")
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
