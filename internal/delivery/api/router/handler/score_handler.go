package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sip/internal/delivery/api/middleware"
	"sip/internal/delivery/api/response"
	"sip/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScoreHandlerParams holds dependencies for ScoreHandler, injected by Fx.
type ScoreHandlerParams struct {
	fx.In

	ScoreUC   usecase.ScoreUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ScoreHandler holds dependencies for quiz score handlers
type ScoreHandler struct {
	scoreUC   usecase.ScoreUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewScoreHandler is the constructor for ScoreHandler
func NewScoreHandler(params ScoreHandlerParams) *ScoreHandler {
	return &ScoreHandler{
		scoreUC:   params.ScoreUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// SaveScoreRequest represents the legacy email-keyed score submission
type SaveScoreRequest struct {
	Email  string         `json:"email" validate:"required,email"`
	Scores map[string]any `json:"scores" validate:"required"`
}

// ScoreRecordResponse is the wire shape of a logged submission
type ScoreRecordResponse struct {
	Email     string         `json:"email"`
	Scores    map[string]any `json:"scores"`
	CreatedAt time.Time      `json:"created_at"`
}

// GetScores returns the user's current quiz score snapshot
func (h *ScoreHandler) GetScores(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	scores, err := h.scoreUC.GetScores(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scores)
}

// SaveScoreLegacy appends an email-keyed submission to the log
func (h *ScoreHandler) SaveScoreLegacy(c echo.Context) error {
	var req SaveScoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid score input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.scoreUC.SaveSubmission(c.Request().Context(), usecase.SaveScoreInput{
		Email:  req.Email,
		Scores: req.Scores,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}

// GetScoreLegacy returns the submissions logged under the user's email
func (h *ScoreHandler) GetScoreLegacy(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.scoreUC.ListSubmissions(c.Request().Context(), user.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]ScoreRecordResponse, 0, len(records))
	for _, record := range records {
		scores := record.Scores
		if scores == nil {
			scores = map[string]any{}
		}
		body = append(body, ScoreRecordResponse{
			Email:     record.Email,
			Scores:    scores,
			CreatedAt: record.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, body)
}
