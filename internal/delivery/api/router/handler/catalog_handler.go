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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CategoryResponse is the wire shape of a menu category
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// DrinkResponse is the wire shape of a catalog drink row
type DrinkResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Category    uuid.UUID      `json:"category"`
	Details     map[string]any `json:"details"`
	IsFavorite  bool           `json:"isFavorite"`
	Ingredients []string       `json:"ingredients"`
}

// FavoriteResponse is the wire shape of a favorited drink
type FavoriteResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Liked    bool      `json:"liked"`
	Favorite bool      `json:"favorite"`
}

// HistoryResponse is the wire shape of a tasting history entry
type HistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Category    uuid.UUID `json:"category"`
	Ingredients []string  `json:"ingredients"`
	Date        time.Time `json:"date"`
}

// ProductResponse is the wire shape of the drink detail view
type ProductResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Category    uuid.UUID      `json:"category"`
	Details     map[string]any `json:"details"`
	Ingredients []string       `json:"ingredients"`
}

// GetCategories returns the menu sections
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		body = append(body, CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
			URL:  category.Image,
		})
	}

	return response.Success(c, http.StatusOK, body)
}

// GetDrinks returns the whole catalog with per-user favorite flags
func (h *CatalogHandler) GetDrinks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	drinks, err := h.catalogUC.ListDrinks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]DrinkResponse, 0, len(drinks))
	for _, drink := range drinks {
		body = append(body, DrinkResponse{
			ID:          drink.ID,
			Name:        drink.Name,
			URL:         drink.Image,
			Category:    drink.CategoryID,
			Details:     detailsMap(drink.Description, drink.Instructions, drink.Alcoholic, drink.Glass),
			IsFavorite:  user.HasFavorite(drink.ID),
			Ingredients: emptyIfNil(drink.Ingredients),
		})
	}

	return response.Success(c, http.StatusOK, body)
}

// GetProduct returns the drink detail view
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	drinkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), drinkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetFavorites returns the user's favorited drinks
func (h *CatalogHandler) GetFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	drinks, err := h.catalogUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]FavoriteResponse, 0, len(drinks))
	for _, drink := range drinks {
		body = append(body, FavoriteResponse{
			ID:       drink.ID,
			Name:     drink.Name,
			URL:      drink.Image,
			Liked:    user.HasLiked(drink.ID),
			Favorite: true,
		})
	}

	return response.Success(c, http.StatusOK, body)
}

// GetHistories returns the user's tasting history with drink details
func (h *CatalogHandler) GetHistories(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	items, err := h.catalogUC.ListHistory(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]HistoryResponse, 0, len(items))
	for _, item := range items {
		body = append(body, HistoryResponse{
			ID:          item.Drink.ID,
			Name:        item.Drink.Name,
			URL:         item.Drink.Image,
			Category:    item.Drink.CategoryID,
			Ingredients: emptyIfNil(item.Drink.Ingredients),
			Date:        item.Date,
		})
	}

	return response.Success(c, http.StatusOK, body)
}

// GetIngredients returns the deduplicated ingredients of the user's favorites
func (h *CatalogHandler) GetIngredients(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	ingredients, err := h.catalogUC.ListFavoriteIngredients(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{
		"ingredients": emptyIfNil(ingredients),
	})
}

func toProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		URL:         product.Image,
		Category:    product.CategoryID,
		Details:     detailsMap(product.Description, product.Instructions, product.Alcoholic, product.Glass),
		Ingredients: emptyIfNil(product.Ingredients),
	}
}

func detailsMap(description, instructions string, alcoholic bool, glass string) map[string]any {
	return map[string]any{
		"description":  description,
		"instructions": instructions,
		"alcoholic":    alcoholic,
		"glass":        glass,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
