package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sip/internal/domain/entity"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Image     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns an ID when the caller has not.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ToEntity converts the persistence model into a domain category.
func (m *CategoryModel) ToEntity() entity.Category {
	return entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DrinkModel mirrors the 'drinks' table. The full detail columns live on
// the same row; listings read a projection, the product view reads it all.
type DrinkModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key"`
	Name         string      `gorm:"type:varchar(150);not null"`
	Image        string      `gorm:"type:text"`
	CategoryID   uuid.UUID   `gorm:"type:uuid;index;not null"`
	Description  string      `gorm:"type:text"`
	Ingredients  StringSlice `gorm:"type:jsonb"`
	Instructions string      `gorm:"type:text"`
	Alcoholic    bool
	Glass        string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DrinkModel) TableName() string {
	return "drinks"
}

// BeforeCreate assigns an ID when the caller has not.
func (m *DrinkModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ToEntity converts the persistence model into a domain drink.
func (m *DrinkModel) ToEntity() entity.Drink {
	return entity.Drink{
		ID:           m.ID,
		Name:         m.Name,
		Image:        m.Image,
		CategoryID:   m.CategoryID,
		Description:  m.Description,
		Ingredients:  []string(m.Ingredients),
		Instructions: m.Instructions,
		Alcoholic:    m.Alcoholic,
		Glass:        m.Glass,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToProductEntity converts the persistence model into the full detail view.
func (m *DrinkModel) ToProductEntity() entity.Product {
	return entity.Product{
		ID:           m.ID,
		Name:         m.Name,
		Image:        m.Image,
		CategoryID:   m.CategoryID,
		Description:  m.Description,
		Ingredients:  []string(m.Ingredients),
		Instructions: m.Instructions,
		Alcoholic:    m.Alcoholic,
		Glass:        m.Glass,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
