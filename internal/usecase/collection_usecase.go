package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CollectionUsecase defines the interface for mutating a user's drink
// collections. Every mutation runs atomically against the user record.
type CollectionUsecase interface {
	// AddFavorite appends the drink to the user's favorites.
	// Fails when the drink is already favorited.
	AddFavorite(ctx context.Context, userID, drinkID uuid.UUID) error

	// AddLike appends the drink to the user's liked list.
	// Fails when the drink is already liked.
	AddLike(ctx context.Context, userID, drinkID uuid.UUID) error

	// AddDislike appends the drink to the user's disliked list.
	// Fails when the drink is already disliked.
	AddDislike(ctx context.Context, userID, drinkID uuid.UUID) error

	// RecordHistory appends a tasting entry stamped with the current time.
	// Repeated entries for the same drink are allowed.
	RecordHistory(ctx context.Context, userID, drinkID uuid.UUID) error

	// ReplaceScores overwrites the user's quiz score snapshot and appends
	// the submission to the audit log.
	ReplaceScores(ctx context.Context, userID uuid.UUID, scores map[string]any) error
}
