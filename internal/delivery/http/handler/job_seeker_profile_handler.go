package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobSeekerProfileHandler struct {
	uc usecase.JobSeekerProfileUsecase
}

func NewJobSeekerProfileHandler(uc usecase.JobSeekerProfileUsecase) *JobSeekerProfileHandler {
	return &JobSeekerProfileHandler{uc: uc}
}

func (h *JobSeekerProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:user_id/job_seeker_profile", h.Show)
	r.Post("/users/:user_id/job_seeker_profile", h.Create)
	r.Put("/users/:user_id/job_seeker_profile", h.Update)
	r.Patch("/users/:user_id/job_seeker_profile", h.Update)
	r.Delete("/users/:user_id/job_seeker_profile", h.Delete)

	r.Get("/job_seeker_profiles", h.List)
	r.Get("/job_seeker_profiles/by_user/:user_id", h.Show)
	r.Get("/job_seeker_profiles/:id", h.Get)
}

func (h *JobSeekerProfileHandler) List(c fiber.Ctx) error {
	ps, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobSeekerProfileResponses(ps))
}

func (h *JobSeekerProfileHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageJobSeekerProfileNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobSeekerProfileResponse(p))
}

func (h *JobSeekerProfileHandler) Show(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.GetByUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobSeekerProfileResponse(p))
}

func (h *JobSeekerProfileHandler) Create(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	var in usecase.JobSeekerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewJobSeekerProfileResponse(p))
}

func (h *JobSeekerProfileHandler) Update(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	var in usecase.JobSeekerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), userID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewJobSeekerProfileResponse(p))
}

func (h *JobSeekerProfileHandler) Delete(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
