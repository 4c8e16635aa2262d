// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImage is the placeholder avatar assigned to new accounts
// until the user uploads a picture of their own.
const DefaultProfileImage = "https://www.gravatar.com/avatar/"

// User is the core identity record. A single user document carries the
// credential material plus every per-user drink collection: favorites,
// liked/disliked sets, tasting history and the latest quiz score snapshot.
type User struct {
	ID           uuid.UUID      // Unique identifier for the account.
	Email        string         // Login identifier, unique across all users.
	PasswordHash string         // bcrypt hash of the password. Never serialized to clients.
	Name         string         // Display name.
	Phone        string         // Contact phone number.
	ProfileImage string         // Reference path or URL of the profile picture.
	Favorites    []uuid.UUID    // Favorited drink IDs, insertion-ordered, no duplicates.
	Liked        []uuid.UUID    // Liked drink IDs, no duplicates.
	Disliked     []uuid.UUID    // Disliked drink IDs, no duplicates.
	History      []HistoryEntry // Append-only record of tasted drinks.
	Scores       map[string]any // Latest quiz score snapshot, replaced wholesale.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryEntry records a single drink the user tasted and when.
type HistoryEntry struct {
	DrinkID uuid.UUID `json:"drink"`
	Date    time.Time `json:"date"`
}

// HasFavorite reports whether the drink is already in the favorites list.
func (u *User) HasFavorite(drinkID uuid.UUID) bool {
	return slices.Contains(u.Favorites, drinkID)
}

// HasLiked reports whether the drink is already in the liked list.
func (u *User) HasLiked(drinkID uuid.UUID) bool {
	return slices.Contains(u.Liked, drinkID)
}

// HasDisliked reports whether the drink is already in the disliked list.
func (u *User) HasDisliked(drinkID uuid.UUID) bool {
	return slices.Contains(u.Disliked, drinkID)
}

// AddFavorite appends the drink to the favorites list. It returns false
// without modifying the list when the drink is already present.
func (u *User) AddFavorite(drinkID uuid.UUID) bool {
	if u.HasFavorite(drinkID) {
		return false
	}
	u.Favorites = append(u.Favorites, drinkID)

	return true
}

// AddLiked appends the drink to the liked list, rejecting duplicates.
func (u *User) AddLiked(drinkID uuid.UUID) bool {
	if u.HasLiked(drinkID) {
		return false
	}
	u.Liked = append(u.Liked, drinkID)

	return true
}

// AddDisliked appends the drink to the disliked list, rejecting duplicates.
func (u *User) AddDisliked(drinkID uuid.UUID) bool {
	if u.HasDisliked(drinkID) {
		return false
	}
	u.Disliked = append(u.Disliked, drinkID)

	return true
}

// AppendHistory records that the user tasted the drink at the given time.
// History is append-only; repeated tastings produce repeated entries.
func (u *User) AppendHistory(drinkID uuid.UUID, at time.Time) {
	u.History = append(u.History, HistoryEntry{DrinkID: drinkID, Date: at})
}
