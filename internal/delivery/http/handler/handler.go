package handler

import (
	"errors"
	"strconv"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/application"
	"job-board/internal/domain/employer"
	"job-board/internal/domain/jobpost"
	"job-board/internal/domain/offer"
	"job-board/internal/domain/seeker"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/response"
	"job-board/internal/validation"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageUserNotFound             = "User not found"
	MessageEmployerProfileNotFound  = "Employer profile not found"
	MessageJobSeekerProfileNotFound = "Job seeker profile not found"
	MessageJobPostNotFound          = "Job post not found"
	MessageApplicationNotFound      = "Application not found"
	MessageOfferNotFound            = "Offer not found"
	MessageHasDependents            = "Cannot delete record because dependent records exist"
	MessageInvalidPayload           = "Invalid request payload"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{user.ErrNotFound, MessageUserNotFound},
	{employer.ErrNotFound, MessageEmployerProfileNotFound},
	{seeker.ErrNotFound, MessageJobSeekerProfileNotFound},
	{jobpost.ErrNotFound, MessageJobPostNotFound},
	{application.ErrNotFound, MessageApplicationNotFound},
	{offer.ErrNotFound, MessageOfferNotFound},
}

var dependentErrors = []error{
	user.ErrHasDependents,
	employer.ErrHasDependents,
	seeker.ErrHasDependents,
	jobpost.ErrHasDependents,
}

// mapUsecaseError turns a use case error into the AppError rendered by the
// error middleware.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	if verrs, ok := validation.As(err); ok {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, verrs, err)
	}
	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			return middleware.NewAppError(fiber.StatusNotFound, nf.msg, nil, err)
		}
	}
	for _, dep := range dependentErrors {
		if errors.Is(err, dep) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, MessageHasDependents, nil, err)
		}
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

// paramID parses a positive integer route parameter. Anything else cannot
// name an existing row, so it is reported with notFound.
func paramID(c fiber.Ctx, name, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	}
	return id, nil
}

// bindBody decodes the request body into out. An empty body leaves out
// untouched.
func bindBody(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, MessageInvalidPayload, nil, err)
	}
	return nil
}

// currentUserID is the signed-in user's id, or 0.
func currentUserID(c fiber.Ctx) int64 {
	if id, ok := middleware.SessionFrom(c).UserID(); ok {
		return id
	}
	return 0
}
