package impl

import (
	"context"
	"testing"

	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	mockRepo "sip/internal/mocks/repository"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service     usecase.CollectionUsecase
	txManager   *mockRepo.MockTransactionManager
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewCollectionService(CollectionServiceParams{
		TxManager:   txManager,
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return collectionServiceFixtures{
		service:     service,
		txManager:   txManager,
		catalogRepo: catalogRepo,
	}
}

// expectMutation wires the transaction mock so the mutation callback runs
// against the given user under a row lock.
func expectMutation(t *testing.T, fx collectionServiceFixtures, ctx context.Context, user *entity.User, expectUpdate bool) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().AcquireRowLock(ctx, user.ID).Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			if expectUpdate {
				mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestCollectionService_AddFavorite_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()
	user := &entity.User{ID: uuid.New()}

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(&entity.Drink{ID: drinkID}, nil)
	expectMutation(t, fx, ctx, user, true)

	err := fx.service.AddFavorite(ctx, user.ID, drinkID)

	require.NoError(t, err)
	assert.True(t, user.HasFavorite(drinkID))
}

func TestCollectionService_AddFavorite_Duplicate(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()
	user := &entity.User{
		ID:        uuid.New(),
		Favorites: []uuid.UUID{drinkID},
	}

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(&entity.Drink{ID: drinkID}, nil)
	expectMutation(t, fx, ctx, user, false)

	err := fx.service.AddFavorite(ctx, user.ID, drinkID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFavorited))
	assert.Len(t, user.Favorites, 1)
}

func TestCollectionService_AddFavorite_UnknownDrink(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(nil, domainerrors.ErrDrinkNotFound)

	err := fx.service.AddFavorite(ctx, uuid.New(), drinkID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDrinkNotFound))
}

func TestCollectionService_AddLike_Duplicate(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()
	user := &entity.User{
		ID:    uuid.New(),
		Liked: []uuid.UUID{drinkID},
	}

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(&entity.Drink{ID: drinkID}, nil)
	expectMutation(t, fx, ctx, user, false)

	err := fx.service.AddLike(ctx, user.ID, drinkID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyLiked))
}

func TestCollectionService_AddDislike_IndependentOfLiked(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()
	user := &entity.User{
		ID:    uuid.New(),
		Liked: []uuid.UUID{drinkID},
	}

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(&entity.Drink{ID: drinkID}, nil)
	expectMutation(t, fx, ctx, user, true)

	err := fx.service.AddDislike(ctx, user.ID, drinkID)

	// A liked drink can still be disliked; the lists do not exclude each other.
	require.NoError(t, err)
	assert.True(t, user.HasLiked(drinkID))
	assert.True(t, user.HasDisliked(drinkID))
}

func TestCollectionService_RecordHistory_AllowsRepeats(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	drinkID := uuid.New()
	user := &entity.User{
		ID:      uuid.New(),
		History: []entity.HistoryEntry{{DrinkID: drinkID}},
	}

	fx.catalogRepo.EXPECT().FindDrinkByID(ctx, drinkID).Return(&entity.Drink{ID: drinkID}, nil)
	expectMutation(t, fx, ctx, user, true)

	err := fx.service.RecordHistory(ctx, user.ID, drinkID)

	require.NoError(t, err)
	assert.Len(t, user.History, 2)
	assert.False(t, user.History[1].Date.IsZero())
}

func TestCollectionService_ReplaceScores_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:     uuid.New(),
		Email:  "user@example.com",
		Scores: map[string]any{"sweet": float64(1)},
	}
	scores := map[string]any{"sweet": float64(4), "bitter": float64(2)}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockScoreRepo := mockRepo.NewMockScoreRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewScoreRepository().Return(mockScoreRepo)
			mockUserRepo.EXPECT().AcquireRowLock(ctx, user.ID).Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			mockScoreRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ScoreRecord")).
				Run(func(ctx context.Context, record *entity.ScoreRecord) {
					assert.Equal(t, "user@example.com", record.Email)
					assert.Equal(t, scores, record.Scores)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ReplaceScores(ctx, user.ID, scores)

	require.NoError(t, err)
	assert.Equal(t, scores, user.Scores)
}

func TestCollectionService_ReplaceScores_EmptyObjectClearsSnapshot(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:     uuid.New(),
		Email:  "user@example.com",
		Scores: map[string]any{"sweet": float64(1)},
	}
	scores := map[string]any{}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockScoreRepo := mockRepo.NewMockScoreRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewScoreRepository().Return(mockScoreRepo)
			mockUserRepo.EXPECT().AcquireRowLock(ctx, user.ID).Return(nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)
			mockScoreRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ScoreRecord")).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ReplaceScores(ctx, user.ID, scores)

	require.NoError(t, err)
	assert.Empty(t, user.Scores)
}

func TestCollectionService_ReplaceScores_NilPayload(t *testing.T) {
	fx := createTestCollectionService(t)

	err := fx.service.ReplaceScores(context.Background(), uuid.New(), nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidScorePayload))
}
