package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"sip/internal/domain/entity"
)

// UpdateProfileImageInput carries the uploaded image stream.
type UpdateProfileImageInput struct {
	UserID   uuid.UUID
	Filename string
	Content  io.Reader
}

// ProfileUsecase defines the interface for reading and updating account data.
type ProfileUsecase interface {
	// GetProfile returns the full account record of the user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfileImage stores the uploaded image and points the account
	// at it, returning the updated user.
	UpdateProfileImage(ctx context.Context, input UpdateProfileImageInput) (*entity.User, error)
}
