// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"

	"sip/internal/delivery/api/response"
	"sip/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest represents the request body for account registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// SignInRequest represents the request body for login
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpResponse is the legacy success body for registration
type SignUpResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

// SignInResponse is the legacy success body for login
type SignInResponse struct {
	Success      bool           `json:"success"`
	Token        string         `json:"token"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	ProfileImage string         `json:"profile_image"`
	Scores       map[string]any `json:"scores"`
}

// SignUp handles account registration
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid sign up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SignUpResponse{
		Status: "success",
		Token:  output.AccessToken,
	})
}

// SignIn handles login
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid sign in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	scores := output.User.Scores
	if scores == nil {
		scores = map[string]any{}
	}

	return response.Success(c, http.StatusOK, SignInResponse{
		Success:      true,
		Token:        output.AccessToken,
		Name:         output.User.Name,
		Email:        output.User.Email,
		ProfileImage: output.User.ProfileImage,
		Scores:       scores,
	})
}
