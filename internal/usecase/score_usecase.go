package usecase

import (
	"context"

	"github.com/google/uuid"

	"sip/internal/domain/entity"
)

// SaveScoreInput defines a legacy email-keyed quiz submission.
type SaveScoreInput struct {
	Email  string
	Scores map[string]any
}

// ScoreUsecase defines the interface for quiz score operations.
// The authoritative snapshot lives on the user record; the email-keyed
// submission log is kept for older clients.
type ScoreUsecase interface {
	// GetScores returns the user's current quiz score snapshot.
	GetScores(ctx context.Context, userID uuid.UUID) (map[string]any, error)

	// SaveSubmission appends an email-keyed submission to the log.
	SaveSubmission(ctx context.Context, input SaveScoreInput) (*entity.ScoreRecord, error)

	// ListSubmissions returns every submission logged under the email.
	ListSubmissions(ctx context.Context, email string) ([]entity.ScoreRecord, error)
}
