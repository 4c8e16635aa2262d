package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sip/internal/domain/entity"
)

// HistoryItem pairs a catalog drink with the time it was tasted.
type HistoryItem struct {
	Drink entity.Drink
	Date  time.Time
}

// CatalogUsecase defines the interface for browsing the drink catalog and
// resolving a user's collections against it.
type CatalogUsecase interface {
	// ListCategories returns the browsable menu sections.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// ListDrinks returns the whole drink catalog.
	ListDrinks(ctx context.Context) ([]entity.Drink, error)

	// GetProduct returns the full detail record of a drink.
	GetProduct(ctx context.Context, drinkID uuid.UUID) (*entity.Product, error)

	// ListFavorites resolves the user's favorite drink IDs into catalog rows,
	// preserving insertion order.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.Drink, error)

	// ListHistory resolves the user's tasting history into catalog rows with
	// their tasting dates, oldest first.
	ListHistory(ctx context.Context, userID uuid.UUID) ([]HistoryItem, error)

	// ListFavoriteIngredients returns the deduplicated ingredients across
	// the user's favorite drinks.
	ListFavoriteIngredients(ctx context.Context, userID uuid.UUID) ([]string, error)
}
