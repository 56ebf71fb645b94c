package app

import (
	"fmt"
	"strings"

	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/pkg/session"
	"job-board/internal/usecase"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP application on top of c. Middleware order: access log,
// error rendering, CORS, session, CSRF, routes.
func New(c *Container) (*App, error) {
	if c == nil {
		return nil, fmt.Errorf("nil container")
	}
	if strings.TrimSpace(c.Config.Session.Secret) == "" {
		return nil, fmt.Errorf("empty session secret")
	}
	logger := c.logger()

	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	cookieOpts := middleware.CookieOptionsFromConfig(c.Config.Session)
	codec := session.NewCodec(c.Config.Session.Secret, c.Config.Session.MaxAge)
	csrfMw := middleware.NewCSRFMiddleware(cookieOpts, middleware.DefaultCSRFExemptions)

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	if origin := strings.TrimSpace(c.Config.App.AllowedOrigin); origin != "" {
		f.Use(cors.New(cors.Config{
			AllowOrigins:     []string{origin},
			AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions, fiber.MethodHead},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderCSRFToken, middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderCSRFToken, middleware.HeaderRequestID},
			AllowCredentials: true,
		}))
	}
	f.Use(middleware.NewSessionMiddleware(codec, c.Config.Session.CookieName, cookieOpts, logger).Middleware())
	f.Use(csrfMw.Middleware())

	var cache usecase.Cache
	if c.Cache != nil {
		cache = c.Cache
	}
	var events usecase.EventPublisher
	if c.Hub != nil {
		events = c.Hub
	}

	r := c.Repos
	authUC := usecase.NewAuthUsecase(r.Users)
	userUC := usecase.NewUserUsecase(r.Users)
	employerUC := usecase.NewEmployerProfileUsecase(r.Users, r.Employers)
	seekerUC := usecase.NewJobSeekerProfileUsecase(r.Users, r.Seekers)
	jobPostUC := usecase.NewJobPostUsecase(r.JobPosts, r.Employers, cache, c.Config.Redis.TTL, events, logger)
	applicationUC := usecase.NewApplicationUsecase(r.Applications, r.JobPosts, r.Seekers, events)
	offerUC := usecase.NewOfferUsecase(r.Offers, r.JobPosts, r.Seekers, events)

	authHandler := handler.NewAuthHandler(authUC, userUC, csrfMw)
	registry := &routes.Registry{
		Health:            handler.NewHealthHandler(c.DB),
		Auth:              authHandler,
		Users:             handler.NewUserHandler(userUC, authHandler),
		EmployerProfiles:  handler.NewEmployerProfileHandler(employerUC),
		JobSeekerProfiles: handler.NewJobSeekerProfileHandler(seekerUC),
		JobPosts:          handler.NewJobPostHandler(jobPostUC),
		Applications:      handler.NewApplicationHandler(applicationUC),
		Offers:            handler.NewOfferHandler(offerUC),
	}
	if c.Hub != nil {
		registry.WS = ws.NewHandler(c.Hub, c.Config.App.AllowedOrigin, logger)
	}
	registry.Register(f)

	return &App{Fiber: f}, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

