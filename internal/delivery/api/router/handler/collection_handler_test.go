package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	domainerrors "sip/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCollectionUsecase lets each test plug in the behavior it needs.
type stubCollectionUsecase struct {
	addFavorite   func(ctx context.Context, userID, drinkID uuid.UUID) error
	addLike       func(ctx context.Context, userID, drinkID uuid.UUID) error
	addDislike    func(ctx context.Context, userID, drinkID uuid.UUID) error
	recordHistory func(ctx context.Context, userID, drinkID uuid.UUID) error
	replaceScores func(ctx context.Context, userID uuid.UUID, scores map[string]any) error
}

func (s *stubCollectionUsecase) AddFavorite(ctx context.Context, userID, drinkID uuid.UUID) error {
	return s.addFavorite(ctx, userID, drinkID)
}

func (s *stubCollectionUsecase) AddLike(ctx context.Context, userID, drinkID uuid.UUID) error {
	return s.addLike(ctx, userID, drinkID)
}

func (s *stubCollectionUsecase) AddDislike(ctx context.Context, userID, drinkID uuid.UUID) error {
	return s.addDislike(ctx, userID, drinkID)
}

func (s *stubCollectionUsecase) RecordHistory(ctx context.Context, userID, drinkID uuid.UUID) error {
	return s.recordHistory(ctx, userID, drinkID)
}

func (s *stubCollectionUsecase) ReplaceScores(ctx context.Context, userID uuid.UUID, scores map[string]any) error {
	return s.replaceScores(ctx, userID, scores)
}

func TestCollectionHandler_AddFavorite_Success(t *testing.T) {
	userID := uuid.New()
	drinkID := uuid.New()
	h := &CollectionHandler{
		collectionUC: &stubCollectionUsecase{
			addFavorite: func(ctx context.Context, gotUserID, gotDrinkID uuid.UUID) error {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, drinkID, gotDrinkID)
				return nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/addfavorite", fmt.Sprintf(`{"drinkId":%q}`, drinkID))
	c.Set("userID", userID)

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

func TestCollectionHandler_AddFavorite_Duplicate(t *testing.T) {
	h := &CollectionHandler{
		collectionUC: &stubCollectionUsecase{
			addFavorite: func(ctx context.Context, userID, drinkID uuid.UUID) error {
				return domainerrors.ErrAlreadyFavorited
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/addfavorite", fmt.Sprintf(`{"drinkId":%q}`, uuid.New()))
	c.Set("userID", uuid.New())

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Drink is already in favorites", body["message"])
}

func TestCollectionHandler_AddFavorite_MissingAuth(t *testing.T) {
	h := &CollectionHandler{collectionUC: &stubCollectionUsecase{}}

	c, rec := newJSONContext(t, http.MethodPost, "/addfavorite", fmt.Sprintf(`{"drinkId":%q}`, uuid.New()))

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCollectionHandler_AddFavorite_InvalidDrinkID(t *testing.T) {
	h := &CollectionHandler{collectionUC: &stubCollectionUsecase{}}

	c, rec := newJSONContext(t, http.MethodPost, "/addfavorite", `{"drinkId":"not-a-uuid"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.AddFavorite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCollectionHandler_SaveScores_Success(t *testing.T) {
	userID := uuid.New()
	h := &CollectionHandler{
		collectionUC: &stubCollectionUsecase{
			replaceScores: func(ctx context.Context, gotUserID uuid.UUID, scores map[string]any) error {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, map[string]any{"sweet": float64(4)}, scores)
				return nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/score", `{"scores":{"sweet":4}}`)
	c.Set("userID", userID)

	require.NoError(t, h.SaveScores(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

func TestCollectionHandler_SaveScores_EmptyObject(t *testing.T) {
	h := &CollectionHandler{
		collectionUC: &stubCollectionUsecase{
			replaceScores: func(ctx context.Context, userID uuid.UUID, scores map[string]any) error {
				// An empty object replaces the snapshot outright.
				require.NotNil(t, scores)
				assert.Empty(t, scores)
				return nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/score", `{"scores":{}}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.SaveScores(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

func TestCollectionHandler_SaveScores_MissingScores(t *testing.T) {
	h := &CollectionHandler{collectionUC: &stubCollectionUsecase{}}

	c, rec := newJSONContext(t, http.MethodPost, "/score", `{}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.SaveScores(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
}
