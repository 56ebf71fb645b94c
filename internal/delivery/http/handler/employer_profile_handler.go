package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployerProfileHandler struct {
	uc usecase.EmployerProfileUsecase
}

func NewEmployerProfileHandler(uc usecase.EmployerProfileUsecase) *EmployerProfileHandler {
	return &EmployerProfileHandler{uc: uc}
}

func (h *EmployerProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:user_id/employer_profile", h.Show)
	r.Post("/users/:user_id/employer_profile", h.Create)
	r.Put("/users/:user_id/employer_profile", h.Update)
	r.Patch("/users/:user_id/employer_profile", h.Update)
	r.Delete("/users/:user_id/employer_profile", h.Delete)

	r.Get("/employer_profiles", h.List)
	r.Get("/employer_profiles/:id", h.Get)
}

func (h *EmployerProfileHandler) List(c fiber.Ctx) error {
	ps, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerProfileResponses(ps))
}

func (h *EmployerProfileHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageEmployerProfileNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerProfileResponse(p))
}

func (h *EmployerProfileHandler) Show(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.GetByUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerProfileResponse(p))
}

func (h *EmployerProfileHandler) Create(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	var in usecase.EmployerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewEmployerProfileResponse(p))
}

func (h *EmployerProfileHandler) Update(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	var in usecase.EmployerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), userID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewEmployerProfileResponse(p))
}

func (h *EmployerProfileHandler) Delete(c fiber.Ctx) error {
	userID, err := paramID(c, "user_id", MessageUserNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
