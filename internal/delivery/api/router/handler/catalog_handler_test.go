package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"sip/internal/domain/entity"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogUsecase lets each test plug in the behavior it needs.
type stubCatalogUsecase struct {
	listCategories          func(ctx context.Context) ([]entity.Category, error)
	listDrinks              func(ctx context.Context) ([]entity.Drink, error)
	getProduct              func(ctx context.Context, drinkID uuid.UUID) (*entity.Product, error)
	listFavorites           func(ctx context.Context, userID uuid.UUID) ([]entity.Drink, error)
	listHistory             func(ctx context.Context, userID uuid.UUID) ([]usecase.HistoryItem, error)
	listFavoriteIngredients func(ctx context.Context, userID uuid.UUID) ([]string, error)
}

func (s *stubCatalogUsecase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.listCategories(ctx)
}

func (s *stubCatalogUsecase) ListDrinks(ctx context.Context) ([]entity.Drink, error) {
	return s.listDrinks(ctx)
}

func (s *stubCatalogUsecase) GetProduct(ctx context.Context, drinkID uuid.UUID) (*entity.Product, error) {
	return s.getProduct(ctx, drinkID)
}

func (s *stubCatalogUsecase) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.Drink, error) {
	return s.listFavorites(ctx, userID)
}

func (s *stubCatalogUsecase) ListHistory(ctx context.Context, userID uuid.UUID) ([]usecase.HistoryItem, error) {
	return s.listHistory(ctx, userID)
}

func (s *stubCatalogUsecase) ListFavoriteIngredients(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.listFavoriteIngredients(ctx, userID)
}

// stubProfileUsecase lets each test plug in the behavior it needs.
type stubProfileUsecase struct {
	getProfile         func(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	updateProfileImage func(ctx context.Context, input usecase.UpdateProfileImageInput) (*entity.User, error)
}

func (s *stubProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.getProfile(ctx, userID)
}

func (s *stubProfileUsecase) UpdateProfileImage(ctx context.Context, input usecase.UpdateProfileImageInput) (*entity.User, error) {
	return s.updateProfileImage(ctx, input)
}

func TestCatalogHandler_GetDrinks_RowCarriesDetails(t *testing.T) {
	userID := uuid.New()
	drink := entity.Drink{
		ID:           uuid.New(),
		Name:         "Mojito",
		Image:        "https://cdn.example.com/mojito.png",
		CategoryID:   uuid.New(),
		Description:  "A refreshing rum classic",
		Ingredients:  []string{"rum", "mint", "lime"},
		Instructions: "Muddle mint, add rum and lime, top with soda",
		Alcoholic:    true,
		Glass:        "Highball glass",
	}
	h := &CatalogHandler{
		catalogUC: &stubCatalogUsecase{
			listDrinks: func(ctx context.Context) ([]entity.Drink, error) {
				return []entity.Drink{drink}, nil
			},
		},
		profileUC: &stubProfileUsecase{
			getProfile: func(ctx context.Context, gotUserID uuid.UUID) (*entity.User, error) {
				assert.Equal(t, userID, gotUserID)
				return &entity.User{ID: userID, Favorites: []uuid.UUID{drink.ID}}, nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodGet, "/getdrinks", "")
	c.Set("userID", userID)

	require.NoError(t, h.GetDrinks(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)

	row := body[0]
	assert.Equal(t, "Mojito", row["name"])
	assert.Equal(t, true, row["isFavorite"])
	assert.Equal(t, []any{"rum", "mint", "lime"}, row["ingredients"])

	details, ok := row["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A refreshing rum classic", details["description"])
	assert.Equal(t, "Muddle mint, add rum and lime, top with soda", details["instructions"])
	assert.Equal(t, true, details["alcoholic"])
	assert.Equal(t, "Highball glass", details["glass"])
}

func TestCatalogHandler_GetProduct_SharesDetailShape(t *testing.T) {
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        "Mojito",
		CategoryID:  uuid.New(),
		Description: "A refreshing rum classic",
		Alcoholic:   true,
		Glass:       "Highball glass",
	}
	h := &CatalogHandler{
		catalogUC: &stubCatalogUsecase{
			getProduct: func(ctx context.Context, drinkID uuid.UUID) (*entity.Product, error) {
				assert.Equal(t, product.ID, drinkID)
				return product, nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodGet, "/getproduct/"+product.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(product.ID.String())

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A refreshing rum classic", details["description"])
	assert.Equal(t, "Highball glass", details["glass"])
}
