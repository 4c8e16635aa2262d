package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sip/internal/domain/entity"
	domainErrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/errors"
	"sip/internal/infra/persistence/model"
)

// catalogRepository implements the CatalogRepository interface with GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a catalog repository bound to the given connection.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCategories returns every category in the menu.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var rows []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "list categories")
	}

	categories := make([]entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].ToEntity())
	}

	return categories, nil
}

// ListDrinks returns every drink in the catalog.
func (r *catalogRepository) ListDrinks(ctx context.Context) ([]entity.Drink, error) {
	var rows []model.DrinkModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "list drinks")
	}

	drinks := make([]entity.Drink, 0, len(rows))
	for i := range rows {
		drinks = append(drinks, rows[i].ToEntity())
	}

	return drinks, nil
}

// FindDrinkByID retrieves a single drink row.
func (r *catalogRepository) FindDrinkByID(ctx context.Context, id uuid.UUID) (*entity.Drink, error) {
	var row model.DrinkModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrDrinkNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "find drink by id")
	}

	drink := row.ToEntity()

	return &drink, nil
}

// FindDrinksByIDs retrieves the drinks matching the given IDs. Missing IDs
// are silently skipped.
func (r *catalogRepository) FindDrinksByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Drink, error) {
	if len(ids) == 0 {
		return []entity.Drink{}, nil
	}

	var rows []model.DrinkModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "find drinks by ids")
	}

	// Preserve the caller's ordering, which mirrors collection order.
	byID := make(map[uuid.UUID]entity.Drink, len(rows))
	for i := range rows {
		byID[rows[i].ID] = rows[i].ToEntity()
	}

	drinks := make([]entity.Drink, 0, len(rows))
	for _, id := range ids {
		if drink, ok := byID[id]; ok {
			drinks = append(drinks, drink)
		}
	}

	return drinks, nil
}

// FindProductByID retrieves the full detail record of a drink.
func (r *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.DrinkModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrProductNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "find product by id")
	}

	product := row.ToProductEntity()

	return &product, nil
}
