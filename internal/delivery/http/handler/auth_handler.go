package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageLoggedIn           = "Logged in successfully"
	MessageLoggedOut          = "Logged out successfully"
	MessageInvalidCredentials = "Invalid email or password"
	MessageNoUserLoggedIn     = "No user logged in"
	MessageCSRFTokenGenerated = "CSRF token generated"
)

// TokenIssuer attaches a fresh CSRF token to the response and returns it.
type TokenIssuer interface {
	IssueToken(c fiber.Ctx) (string, error)
}

type AuthHandler struct {
	auth  usecase.AuthUsecase
	users usecase.UserUsecase
	csrf  TokenIssuer
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(auth usecase.AuthUsecase, users usecase.UserUsecase, csrf TokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, csrf: csrf}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Delete("/logout", h.Logout)
	r.Get("/current_user", h.CurrentUser)
	r.Post("/register", h.Register)
	r.Get("/csrf_token", h.CSRFToken)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, MessageInvalidCredentials, nil, err)
		}
		return mapUsecaseError(err)
	}

	middleware.SessionFrom(c).SignIn(usr.ID, int(usr.Role))
	return response.JSON(c, fiber.StatusOK, dto.LoginResponse{Message: MessageLoggedIn, Role: usr.Role})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	middleware.SessionFrom(c).SignOut()
	return response.Message(c, fiber.StatusOK, MessageLoggedOut)
}

func (h *AuthHandler) CurrentUser(c fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	id, ok := sess.UserID()
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, MessageNoUserLoggedIn, nil, nil)
	}

	usr, err := h.auth.CurrentUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			sess.SignOut()
			return middleware.NewAppError(fiber.StatusUnauthorized, MessageNoUserLoggedIn, nil, err)
		}
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.CurrentUserResponse{
		ID:    usr.ID,
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
	})
}

// Register creates the user, signs them in and hands back a CSRF token so
// the client can follow up without a separate GET /csrf_token.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var in usecase.UserInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	usr, err := h.users.Create(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}

	middleware.SessionFrom(c).SignIn(usr.ID, int(usr.Role))
	tok, err := h.csrf.IssueToken(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.RegisterResponse{
		ID:        usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		Role:      usr.Role,
		CSRFToken: tok,
	})
}

func (h *AuthHandler) CSRFToken(c fiber.Ctx) error {
	tok, err := h.csrf.IssueToken(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.CSRFTokenResponse{CSRFToken: tok, Message: MessageCSRFTokenGenerated})
}
