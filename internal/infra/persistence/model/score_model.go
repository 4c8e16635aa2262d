package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sip/internal/domain/entity"
)

// ScoreModel mirrors the 'scores' table, the append-only quiz submission log.
type ScoreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255);index;not null"`
	Scores    JSONMap   `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScoreModel) TableName() string {
	return "scores"
}

// BeforeCreate assigns an ID when the caller has not.
func (m *ScoreModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// FromScoreEntity converts a domain score record into its persistence model.
func FromScoreEntity(record *entity.ScoreRecord) *ScoreModel {
	return &ScoreModel{
		ID:        record.ID,
		Email:     record.Email,
		Scores:    JSONMap(record.Scores),
		CreatedAt: record.CreatedAt,
	}
}

// ToEntity converts the persistence model back into a domain score record.
func (m *ScoreModel) ToEntity() entity.ScoreRecord {
	return entity.ScoreRecord{
		ID:        m.ID,
		Email:     m.Email,
		Scores:    map[string]any(m.Scores),
		CreatedAt: m.CreatedAt,
	}
}
