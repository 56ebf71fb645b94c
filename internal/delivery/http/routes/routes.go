package routes

import (
	"job-board/internal/delivery/http/handler"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every handler the API serves. Nil handlers are skipped.
type Registry struct {
	Health            *handler.HealthHandler
	Auth              *handler.AuthHandler
	Users             *handler.UserHandler
	EmployerProfiles  *handler.EmployerProfileHandler
	JobSeekerProfiles *handler.JobSeekerProfileHandler
	JobPosts          *handler.JobPostHandler
	Applications      *handler.ApplicationHandler
	Offers            *handler.OfferHandler
	WS                *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		r.WS.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app fiber.Router) {
	if r.Auth != nil {
		r.Auth.RegisterRoutes(app)
	}
	if r.Users != nil {
		r.Users.RegisterRoutes(app)
	}
	if r.EmployerProfiles != nil {
		r.EmployerProfiles.RegisterRoutes(app)
	}
	if r.JobSeekerProfiles != nil {
		r.JobSeekerProfiles.RegisterRoutes(app)
	}
	if r.JobPosts != nil {
		r.JobPosts.RegisterRoutes(app)
	}
	if r.Applications != nil {
		r.Applications.RegisterRoutes(app)
	}
	if r.Offers != nil {
		r.Offers.RegisterRoutes(app)
	}
}
