package handler

import (
	"log/slog"
	"net/http"

	"sip/internal/delivery/api/middleware"
	"sip/internal/delivery/api/response"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// mustParseUUID converts an already-validated uuid string.
func mustParseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler holds dependencies for collection mutation handlers
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// DrinkRequest represents a request referencing a single drink
type DrinkRequest struct {
	DrinkID string `json:"drinkId" validate:"required,uuid"`
}

// ScoresRequest represents a quiz score snapshot submission
type ScoresRequest struct {
	Scores map[string]any `json:"scores" validate:"required"`
}

// StatusSuccess is the legacy success body for mutations
type StatusSuccess struct {
	Status string `json:"status"`
}

func statusSuccess(c echo.Context) error {
	return response.Success(c, http.StatusOK, StatusSuccess{Status: "success"})
}

func (h *CollectionHandler) bindDrinkRequest(c echo.Context) (*DrinkRequest, error) {
	var req DrinkRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "Invalid drink input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.HandleAppError(c, err)
	}

	return &req, nil
}

// AddFavorite appends a drink to the user's favorites
func (h *CollectionHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	req, err := h.bindDrinkRequest(c)
	if req == nil {
		return err
	}

	if err := h.collectionUC.AddFavorite(c.Request().Context(), userID, mustParseUUID(req.DrinkID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}

// Like appends a drink to the user's liked list
func (h *CollectionHandler) Like(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	req, err := h.bindDrinkRequest(c)
	if req == nil {
		return err
	}

	if err := h.collectionUC.AddLike(c.Request().Context(), userID, mustParseUUID(req.DrinkID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}

// Dislike appends a drink to the user's disliked list
func (h *CollectionHandler) Dislike(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	req, err := h.bindDrinkRequest(c)
	if req == nil {
		return err
	}

	if err := h.collectionUC.AddDislike(c.Request().Context(), userID, mustParseUUID(req.DrinkID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}

// AddHistory records that the user tasted a drink
func (h *CollectionHandler) AddHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	req, err := h.bindDrinkRequest(c)
	if req == nil {
		return err
	}

	if err := h.collectionUC.RecordHistory(c.Request().Context(), userID, mustParseUUID(req.DrinkID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}

// SaveScores replaces the user's quiz score snapshot
func (h *CollectionHandler) SaveScores(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var req ScoresRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid score input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.collectionUC.ReplaceScores(c.Request().Context(), userID, req.Scores); err != nil {
		return response.HandleAppError(c, err)
	}

	return statusSuccess(c)
}
