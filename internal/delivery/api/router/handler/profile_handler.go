package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sip/internal/delivery/api/middleware"
	"sip/internal/delivery/api/response"
	"sip/internal/domain/entity"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for account profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileResponse is the wire shape of the account record.
// The password hash is never serialized.
type ProfileResponse struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	ProfileImage string         `json:"profile_image"`
	Favorites    []uuid.UUID    `json:"favorites"`
	Liked        []uuid.UUID    `json:"liked"`
	Disliked     []uuid.UUID    `json:"disliked"`
	Scores       map[string]any `json:"scores"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toProfileResponse(user *entity.User) ProfileResponse {
	scores := user.Scores
	if scores == nil {
		scores = map[string]any{}
	}

	return ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
		Favorites:    emptyIfNilUUIDs(user.Favorites),
		Liked:        emptyIfNilUUIDs(user.Liked),
		Disliked:     emptyIfNilUUIDs(user.Disliked),
		Scores:       scores,
		CreatedAt:    user.CreatedAt,
	}
}

func emptyIfNilUUIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}

// GetProfile returns the authenticated user's account record
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}

// UpdateProfile stores an uploaded profile picture and returns the updated record
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	fileHeader, err := c.FormFile("profile_picture")
	if err != nil {
		// The upload is optional; without a file the record is returned unchanged.
		user, getErr := h.profileUC.GetProfile(c.Request().Context(), userID)
		if getErr != nil {
			return response.HandleAppError(c, getErr)
		}

		return response.Success(c, http.StatusOK, toProfileResponse(user))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Invalid uploaded file")
	}
	defer src.Close()

	user, err := h.profileUC.UpdateProfileImage(c.Request().Context(), usecase.UpdateProfileImageInput{
		UserID:   userID,
		Filename: fileHeader.Filename,
		Content:  src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}
