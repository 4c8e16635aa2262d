package impl

import (
	"context"
	"testing"

	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	mockRepo "sip/internal/mocks/repository"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreServiceFixtures holds all test dependencies for score service tests.
type scoreServiceFixtures struct {
	service   usecase.ScoreUsecase
	userRepo  *mockRepo.MockUserRepository
	scoreRepo *mockRepo.MockScoreRepository
}

func createTestScoreService(t *testing.T) scoreServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	scoreRepo := mockRepo.NewMockScoreRepository(t)

	service := NewScoreService(ScoreServiceParams{
		UserRepo:  userRepo,
		ScoreRepo: scoreRepo,
		Logger:    newDiscardLogger(),
	})

	return scoreServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
	}
}

func TestScoreService_GetScores_Success(t *testing.T) {
	fx := createTestScoreService(t)

	ctx := context.Background()
	userID := uuid.New()
	scores := map[string]any{"sweet": float64(4)}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Scores: scores}, nil)

	result, err := fx.service.GetScores(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, scores, result)
}

func TestScoreService_GetScores_NeverTaken(t *testing.T) {
	fx := createTestScoreService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	result, err := fx.service.GetScores(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestScoreService_SaveSubmission_Success(t *testing.T) {
	fx := createTestScoreService(t)

	ctx := context.Background()
	scores := map[string]any{"sour": float64(3)}

	fx.scoreRepo.EXPECT().Append(ctx, &entity.ScoreRecord{
		Email:  "user@example.com",
		Scores: scores,
	}).Return(nil)

	record, err := fx.service.SaveSubmission(ctx, usecase.SaveScoreInput{
		Email:  "user@example.com",
		Scores: scores,
	})

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", record.Email)
	assert.Equal(t, scores, record.Scores)
}

func TestScoreService_SaveSubmission_EmptyPayload(t *testing.T) {
	fx := createTestScoreService(t)

	_, err := fx.service.SaveSubmission(context.Background(), usecase.SaveScoreInput{
		Email: "user@example.com",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidScorePayload))
}

func TestScoreService_ListSubmissions_Success(t *testing.T) {
	fx := createTestScoreService(t)

	ctx := context.Background()
	records := []entity.ScoreRecord{
		{Email: "user@example.com", Scores: map[string]any{"sweet": float64(1)}},
		{Email: "user@example.com", Scores: map[string]any{"sweet": float64(5)}},
	}

	fx.scoreRepo.EXPECT().ListByEmail(ctx, "user@example.com").Return(records, nil)

	result, err := fx.service.ListSubmissions(ctx, "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, records, result)
}
