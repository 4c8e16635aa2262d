package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sip/internal/domain/entity"
)

// HistoryEntryRecord is the jsonb shape of a single tasting history entry.
type HistoryEntryRecord struct {
	DrinkID uuid.UUID `json:"drink"`
	Date    time.Time `json:"date"`
}

// HistoryEntries stores the append-only tasting history in a jsonb column.
type HistoryEntries []HistoryEntryRecord

// Scan implements sql.Scanner.
func (h *HistoryEntries) Scan(value any) error {
	return scanJSON(value, h)
}

// Value implements driver.Valuer.
func (h HistoryEntries) Value() (driver.Value, error) {
	if h == nil {
		h = HistoryEntries{}
	}
	raw, err := json.Marshal(h)

	return raw, errors.WithStack(err)
}

// UserModel mirrors the 'users' table. Collections are embedded jsonb
// columns so every per-user list travels with the account row.
type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Name         string         `gorm:"type:varchar(100)"`
	Phone        string         `gorm:"type:varchar(50)"`
	ProfileImage string         `gorm:"type:text"`
	Favorites    UUIDSlice      `gorm:"type:jsonb"`
	Liked        UUIDSlice      `gorm:"type:jsonb"`
	Disliked     UUIDSlice      `gorm:"type:jsonb"`
	History      HistoryEntries `gorm:"type:jsonb"`
	Scores       JSONMap        `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when the caller has not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// FromUserEntity converts a domain user into its persistence model.
func FromUserEntity(user *entity.User) *UserModel {
	history := make(HistoryEntries, 0, len(user.History))
	for _, entry := range user.History {
		history = append(history, HistoryEntryRecord{DrinkID: entry.DrinkID, Date: entry.Date})
	}

	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
		Favorites:    UUIDSlice(user.Favorites),
		Liked:        UUIDSlice(user.Liked),
		Disliked:     UUIDSlice(user.Disliked),
		History:      history,
		Scores:       JSONMap(user.Scores),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ToEntity converts the persistence model back into a domain user.
func (m *UserModel) ToEntity() *entity.User {
	history := make([]entity.HistoryEntry, 0, len(m.History))
	for _, entry := range m.History {
		history = append(history, entity.HistoryEntry{DrinkID: entry.DrinkID, Date: entry.Date})
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Phone:        m.Phone,
		ProfileImage: m.ProfileImage,
		Favorites:    []uuid.UUID(m.Favorites),
		Liked:        []uuid.UUID(m.Liked),
		Disliked:     []uuid.UUID(m.Disliked),
		History:      history,
		Scores:       map[string]any(m.Scores),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
