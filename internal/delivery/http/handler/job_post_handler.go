package handler

import (
	"strconv"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/domain/jobpost"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobPostHandler struct {
	uc usecase.JobPostUsecase
}

func NewJobPostHandler(uc usecase.JobPostUsecase) *JobPostHandler {
	return &JobPostHandler{uc: uc}
}

func (h *JobPostHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/job_posts", h.List)
	r.Post("/job_posts", h.Create)
	r.Get("/job_posts/:id", h.Get)
	r.Put("/job_posts/:id", h.Update)
	r.Patch("/job_posts/:id", h.Update)
	r.Delete("/job_posts/:id", h.Delete)

	r.Get("/employer_profiles/:employer_profile_id/job_posts", h.ListForEmployer)
}

func (h *JobPostHandler) List(c fiber.Ctx) error {
	posts, err := h.uc.List(c.Context(), jobpost.Filter{ActiveOnly: activeOnly(c)})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobPostResponses(posts))
}

func (h *JobPostHandler) ListForEmployer(c fiber.Ctx) error {
	employerID, err := paramID(c, "employer_profile_id", MessageEmployerProfileNotFound)
	if err != nil {
		return err
	}
	posts, err := h.uc.ListForEmployer(c.Context(), employerID, activeOnly(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobPostResponses(posts))
}

func (h *JobPostHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobPostResponse(p))
}

func (h *JobPostHandler) Create(c fiber.Ctx) error {
	var in usecase.JobPostInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), currentUserID(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewJobPostResponse(p))
}

func (h *JobPostHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	var in usecase.JobPostInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobPostResponse(p))
}

func (h *JobPostHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}

func activeOnly(c fiber.Ctx) bool {
	v, err := strconv.ParseBool(c.Query("active"))
	return err == nil && v
}
