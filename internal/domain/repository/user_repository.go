// Package repository defines the persistence contracts of the domain layer.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"sip/internal/domain/entity"
)

// UserRepository is the persistence contract for user accounts and their
// embedded collections.
type UserRepository interface {
	// FindByID retrieves a user by unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the full user record, including collection columns.
	Update(ctx context.Context, user *entity.User) error

	// AcquireRowLock locks the user row for the duration of the enclosing
	// transaction so concurrent collection mutations serialize.
	AcquireRowLock(ctx context.Context, id uuid.UUID) error
}
