package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups drinks into a browsable menu section, such as
// "Cocktails" or "Coffee".
type Category struct {
	ID        uuid.UUID
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Drink is a catalog row used for listings and user collections. The
// detail columns ride along so listings can render them without a second
// lookup; Product is the standalone detail view.
type Drink struct {
	ID           uuid.UUID
	Name         string
	Image        string
	CategoryID   uuid.UUID
	Description  string
	Ingredients  []string
	Instructions string
	Alcoholic    bool
	Glass        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is the full detail view of a drink, including preparation
// instructions and the recommendation payload shown on the detail page.
type Product struct {
	ID           uuid.UUID
	Name         string
	Image        string
	CategoryID   uuid.UUID
	Description  string
	Ingredients  []string
	Instructions string
	Alcoholic    bool
	Glass        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
