package repository

import (
	"context"

	"github.com/google/uuid"

	"sip/internal/domain/entity"
)

// CatalogRepository is the read-side contract for the drink catalog.
type CatalogRepository interface {
	// ListCategories returns every category in the menu.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// ListDrinks returns every drink in the catalog.
	ListDrinks(ctx context.Context) ([]entity.Drink, error)

	// FindDrinkByID retrieves a single drink row.
	FindDrinkByID(ctx context.Context, id uuid.UUID) (*entity.Drink, error)

	// FindDrinksByIDs retrieves the drinks matching the given IDs.
	// Missing IDs are silently skipped.
	FindDrinksByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Drink, error)

	// FindProductByID retrieves the full detail record of a drink.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
