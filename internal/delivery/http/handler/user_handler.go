package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc   usecase.UserUsecase
	auth *AuthHandler
}

// NewUserHandler serves /users. POST /users is the registration action and is
// delegated to auth.
func NewUserHandler(uc usecase.UserUsecase, auth *AuthHandler) *UserHandler {
	return &UserHandler{uc: uc, auth: auth}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.List)
	r.Post("/users", h.auth.Register)
	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
	r.Patch("/users/:id", h.Update)
	r.Delete("/users/:id", h.Delete)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponses(users))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageUserNotFound)
	if err != nil {
		return err
	}

	usr, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageUserNotFound)
	if err != nil {
		return err
	}

	var in usecase.UserPatch
	if err := bindBody(c, &in); err != nil {
		return err
	}

	usr, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageUserNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
