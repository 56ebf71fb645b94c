package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OfferHandler struct {
	uc usecase.OfferUsecase
}

func NewOfferHandler(uc usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

func (h *OfferHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/job_posts/:job_post_id/offers", h.ListForJobPost)
	r.Post("/job_posts/:job_post_id/offers", h.Create)
	r.Get("/job_seeker_profiles/:id/offers", h.ListForSeeker)

	r.Get("/offers/:id", h.Get)
	r.Put("/offers/:id", h.Update)
	r.Patch("/offers/:id", h.Update)
	r.Delete("/offers/:id", h.Delete)
}

func (h *OfferHandler) ListForJobPost(c fiber.Ctx) error {
	jobPostID, err := paramID(c, "job_post_id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	offers, err := h.uc.ListForJobPost(c.Context(), jobPostID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewOfferResponses(offers))
}

func (h *OfferHandler) ListForSeeker(c fiber.Ctx) error {
	seekerID, err := paramID(c, "id", MessageJobSeekerProfileNotFound)
	if err != nil {
		return err
	}
	offers, err := h.uc.ListForSeeker(c.Context(), seekerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewOfferResponses(offers))
}

func (h *OfferHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageOfferNotFound)
	if err != nil {
		return err
	}
	o, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewOfferResponse(o))
}

func (h *OfferHandler) Create(c fiber.Ctx) error {
	jobPostID, err := paramID(c, "job_post_id", MessageJobPostNotFound)
	if err != nil {
		return err
	}
	var in usecase.OfferInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	o, err := h.uc.Create(c.Context(), jobPostID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.NewOfferResponse(o))
}

func (h *OfferHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageOfferNotFound)
	if err != nil {
		return err
	}
	var in usecase.OfferInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	o, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewOfferResponse(o))
}

func (h *OfferHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id", MessageOfferNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
