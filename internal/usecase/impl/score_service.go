package impl

import (
	"context"
	"log/slog"

	deliverycontext "sip/internal/delivery/context"
	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scoreService implements the ScoreUsecase interface.
type scoreService struct {
	userRepo  repository.UserRepository
	scoreRepo repository.ScoreRepository
	logger    *slog.Logger
}

// ScoreServiceParams holds dependencies for scoreService, injected by Fx.
type ScoreServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	ScoreRepo repository.ScoreRepository
	Logger    *slog.Logger
}

// NewScoreService is the constructor for scoreService.
func NewScoreService(params ScoreServiceParams) usecase.ScoreUsecase {
	return &scoreService{
		userRepo:  params.UserRepo,
		scoreRepo: params.ScoreRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *scoreService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetScores returns the user's current quiz score snapshot.
func (srv *scoreService) GetScores(ctx context.Context, userID uuid.UUID) (map[string]any, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Get scores failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}
	if user.Scores == nil {
		return map[string]any{}, nil
	}

	return user.Scores, nil
}

// SaveSubmission appends an email-keyed submission to the log.
func (srv *scoreService) SaveSubmission(ctx context.Context, input usecase.SaveScoreInput) (*entity.ScoreRecord, error) {
	if len(input.Scores) == 0 {
		return nil, domainerrors.ErrInvalidScorePayload
	}

	record := &entity.ScoreRecord{
		Email:  input.Email,
		Scores: input.Scores,
	}
	if err := srv.scoreRepo.Append(ctx, record); err != nil {
		srv.log(ctx).Error("Save score submission failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save score submission")
	}

	return record, nil
}

// ListSubmissions returns every submission logged under the email.
func (srv *scoreService) ListSubmissions(ctx context.Context, email string) ([]entity.ScoreRecord, error) {
	records, err := srv.scoreRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list score submissions")
	}

	return records, nil
}
