package repository

import (
	"context"

	"sip/internal/domain/entity"
)

// ScoreRepository is the persistence contract for the append-only quiz
// submission log.
type ScoreRepository interface {
	// Append stores a new score submission.
	Append(ctx context.Context, record *entity.ScoreRecord) error

	// ListByEmail returns every submission recorded under the email,
	// oldest first.
	ListByEmail(ctx context.Context, email string) ([]entity.ScoreRecord, error)
}
