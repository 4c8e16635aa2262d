package impl

import (
	"context"
	"log/slog"

	deliverycontext "sip/internal/delivery/context"
	"sip/internal/domain/entity"
	"sip/internal/domain/repository"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the browsable menu sections.
func (srv *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListDrinks returns the whole drink catalog.
func (srv *catalogService) ListDrinks(ctx context.Context) ([]entity.Drink, error) {
	drinks, err := srv.catalogRepo.ListDrinks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drinks")
	}

	return drinks, nil
}

// GetProduct returns the full detail record of a drink.
func (srv *catalogService) GetProduct(ctx context.Context, drinkID uuid.UUID) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, drinkID)
	if err != nil {
		srv.log(ctx).Warn("Get product failed", slog.Any("drinkID", drinkID), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// ListFavorites resolves the user's favorite drink IDs into catalog rows.
func (srv *catalogService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.Drink, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for favorites")
	}

	drinks, err := srv.catalogRepo.FindDrinksByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve favorite drinks")
	}

	return drinks, nil
}

// ListHistory resolves the user's tasting history into catalog rows with dates.
func (srv *catalogService) ListHistory(ctx context.Context, userID uuid.UUID) ([]usecase.HistoryItem, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for history")
	}

	ids := make([]uuid.UUID, 0, len(user.History))
	for _, entry := range user.History {
		ids = append(ids, entry.DrinkID)
	}

	drinks, err := srv.catalogRepo.FindDrinksByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve history drinks")
	}

	byID := make(map[uuid.UUID]entity.Drink, len(drinks))
	for _, drink := range drinks {
		byID[drink.ID] = drink
	}

	// Entries referencing drinks removed from the catalog are dropped.
	items := make([]usecase.HistoryItem, 0, len(user.History))
	for _, entry := range user.History {
		drink, ok := byID[entry.DrinkID]
		if !ok {
			continue
		}
		items = append(items, usecase.HistoryItem{Drink: drink, Date: entry.Date})
	}

	return items, nil
}

// ListFavoriteIngredients returns the deduplicated ingredients across the
// user's favorite drinks, in first-seen order.
func (srv *catalogService) ListFavoriteIngredients(ctx context.Context, userID uuid.UUID) ([]string, error) {
	drinks, err := srv.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	ingredients := make([]string, 0)
	for _, drink := range drinks {
		for _, ingredient := range drink.Ingredients {
			if _, ok := seen[ingredient]; ok {
				continue
			}
			seen[ingredient] = struct{}{}
			ingredients = append(ingredients, ingredient)
		}
	}

	return ingredients, nil
}
