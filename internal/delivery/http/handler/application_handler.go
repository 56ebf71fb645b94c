package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/job_posts/:job_post_id/applications", h.ListForJobPost)
	r.Post("/job_posts/:job_post_id/applications", h.Create)
	r.Get("/job_seeker_profiles/:id/applications", h.ListForSeeker)

	r.Get("/applications/:id", h.Get)
	r.Put("/applications/:id", h.Update)
	r.Patch("/applications/:id", h.Update)
	r.Delete("/applications/:id", h.Delete)
}

func (h *ApplicationHandler) ListForJobPost(c fiber.Ctx) error {
	jobPostID, err := paramID(c, "job_post_id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	as, err := h.uc.ListForJobPost(c.Context(), jobPostID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewApplicationResponses(as))
}

func (h *ApplicationHandler) ListForSeeker(c fiber.Ctx) error {
	seekerID, err := paramID(c, "id", MessageJobSeekerProfileNotFound)
	if err != nil {
		return err
	}
	as, err := h.uc.ListForSeeker(c.Context(), seekerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewApplicationResponses(as))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageApplicationNotFound)
	if err != nil {
		return err
	}
	a, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	jobPostID, err := paramID(c, "job_post_id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	var in usecase.ApplicationInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	a, err := h.uc.Create(c.Context(), jobPostID, currentUserID(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageApplicationNotFound)
	if err != nil {
		return err
	}
	var in usecase.ApplicationInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	a, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageApplicationNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
