package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is an append-only quiz submission kept for auditing.
// The authoritative per-user snapshot lives on User.Scores; this log
// preserves every submission ever made under an email address.
type ScoreRecord struct {
	ID        uuid.UUID
	Email     string
	Scores    map[string]any
	CreatedAt time.Time
}
