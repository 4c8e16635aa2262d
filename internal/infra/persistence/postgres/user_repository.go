package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sip/internal/domain/entity"
	domainErrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/errors"
	"sip/internal/infra/persistence/model"
)

// userRepository implements the UserRepository interface with GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given connection,
// which may be a transaction handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by unique identifier.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrUserNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "find user by id")
	}

	return row.ToEntity(), nil
}

// FindByEmail retrieves a user by email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrUserNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "find user by email")
	}

	return row.ToEntity(), nil
}

// Create persists a new user account.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.FromUserEntity(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainErrors.ErrUserAlreadyExists
		}

		return domainErrors.NewDatabaseExecuteError(err, "create user")
	}

	// Propagate the generated ID and timestamps back to the caller.
	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

// Update persists the full user record, including collection columns.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	row := model.FromUserEntity(user)
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("email", "password_hash", "name", "phone", "profile_image",
			"favorites", "liked", "disliked", "history", "scores").
		Updates(row)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "update user")
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrUserNotFound
	}

	return nil
}

// AcquireRowLock locks the user row for the duration of the enclosing
// transaction so concurrent collection mutations serialize.
func (r *userRepository) AcquireRowLock(ctx context.Context, id uuid.UUID) error {
	var row model.UserModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainErrors.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "acquire user row lock")
	}

	return nil
}
