package handler

import (
	"log/slog"
	"net/http"

	"sip/internal/delivery/api/response"
	"sip/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler holds dependencies for the conversational recommendation handlers
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ChatRequest represents a conversational query
type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}

// ChatResponse carries the generated reply
type ChatResponse struct {
	Response string `json:"response"`
}

// SuggestionsResponse carries recommendation suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// GetResponse forwards the query to the chat backend
func (h *ChatHandler) GetResponse(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	reply, err := h.chatUC.GetResponse(c.Request().Context(), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{Response: reply})
}

// GetSuggestions returns recommendation suggestions.
// The recommendation engine is not wired up yet; clients get an empty list.
func (h *ChatHandler) GetSuggestions(c echo.Context) error {
	return response.Success(c, http.StatusOK, SuggestionsResponse{Suggestions: []string{}})
}

// TrainModel acknowledges a model training request.
// Training runs out-of-band; the endpoint exists for client compatibility.
func (h *ChatHandler) TrainModel(c echo.Context) error {
	return statusSuccess(c)
}
