package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDSlice_ScanAndValue(t *testing.T) {
	ids := UUIDSlice{uuid.New(), uuid.New()}

	raw, err := ids.Value()
	require.NoError(t, err)

	var decoded UUIDSlice
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, ids, decoded)
}

func TestUUIDSlice_NilValuesAsEmptyArray(t *testing.T) {
	var ids UUIDSlice

	raw, err := ids.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw.([]byte)))
}

func TestUUIDSlice_ScanNull(t *testing.T) {
	var ids UUIDSlice
	require.NoError(t, ids.Scan(nil))
	assert.Nil(t, ids)
}

func TestJSONMap_ScanString(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(`{"flavor":7,"style":"sour"}`))
	assert.Equal(t, JSONMap{"flavor": float64(7), "style": "sour"}, m)
}

func TestJSONMap_ScanUnsupportedType(t *testing.T) {
	var m JSONMap
	assert.Error(t, m.Scan(42))
}

func TestHistoryEntries_RoundTrip(t *testing.T) {
	entries := HistoryEntries{
		{DrinkID: uuid.New(), Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	raw, err := entries.Value()
	require.NoError(t, err)

	var decoded HistoryEntries
	require.NoError(t, decoded.Scan(raw))
	require.Len(t, decoded, 1)
	assert.Equal(t, entries[0].DrinkID, decoded[0].DrinkID)
	assert.True(t, entries[0].Date.Equal(decoded[0].Date))
}

func TestUserModel_EntityRoundTrip(t *testing.T) {
	drink := uuid.New()
	user := &UserModel{
		ID:           uuid.New(),
		Email:        "drinker@example.com",
		PasswordHash: "hash",
		Name:         "Sam",
		Favorites:    UUIDSlice{drink},
		Liked:        UUIDSlice{drink},
		History:      HistoryEntries{{DrinkID: drink, Date: time.Now().UTC()}},
		Scores:       JSONMap{"bitter": float64(3)},
	}

	restored := FromUserEntity(user.ToEntity())
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email, restored.Email)
	assert.Equal(t, user.Favorites, restored.Favorites)
	assert.Equal(t, user.Liked, restored.Liked)
	assert.Equal(t, user.History, restored.History)
	assert.Equal(t, user.Scores, restored.Scores)
}
