package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sip/internal/delivery/context"
	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mutate loads the user under a row lock, applies fn and persists the result
// in a single transaction. Concurrent mutations on the same user serialize
// on the lock, so duplicate checks stay correct under parallel requests.
func (srv *collectionService) mutate(ctx context.Context, userID uuid.UUID, fn func(*entity.User) error) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.AcquireRowLock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for collection mutation")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for collection mutation")
		}

		if err := fn(user); err != nil {
			return err
		}

		return userRepo.Update(ctx, user)
	})
}

// ensureDrinkExists rejects mutations that reference unknown drinks.
func (srv *collectionService) ensureDrinkExists(ctx context.Context, drinkID uuid.UUID) error {
	if _, err := srv.catalogRepo.FindDrinkByID(ctx, drinkID); err != nil {
		return err
	}

	return nil
}

// AddFavorite appends the drink to the user's favorites.
func (srv *collectionService) AddFavorite(ctx context.Context, userID, drinkID uuid.UUID) error {
	if err := srv.ensureDrinkExists(ctx, drinkID); err != nil {
		return err
	}

	err := srv.mutate(ctx, userID, func(user *entity.User) error {
		if !user.AddFavorite(drinkID) {
			return domainerrors.ErrAlreadyFavorited
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add favorite failed", slog.Any("userID", userID), slog.Any("drinkID", drinkID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Added favorite", slog.Any("userID", userID), slog.Any("drinkID", drinkID))

	return nil
}

// AddLike appends the drink to the user's liked list.
func (srv *collectionService) AddLike(ctx context.Context, userID, drinkID uuid.UUID) error {
	if err := srv.ensureDrinkExists(ctx, drinkID); err != nil {
		return err
	}

	err := srv.mutate(ctx, userID, func(user *entity.User) error {
		if !user.AddLiked(drinkID) {
			return domainerrors.ErrAlreadyLiked
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add like failed", slog.Any("userID", userID), slog.Any("drinkID", drinkID), slog.Any("error", err))

		return err
	}

	return nil
}

// AddDislike appends the drink to the user's disliked list.
func (srv *collectionService) AddDislike(ctx context.Context, userID, drinkID uuid.UUID) error {
	if err := srv.ensureDrinkExists(ctx, drinkID); err != nil {
		return err
	}

	err := srv.mutate(ctx, userID, func(user *entity.User) error {
		if !user.AddDisliked(drinkID) {
			return domainerrors.ErrAlreadyDisliked
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add dislike failed", slog.Any("userID", userID), slog.Any("drinkID", drinkID), slog.Any("error", err))

		return err
	}

	return nil
}

// RecordHistory appends a tasting entry stamped with the current time.
func (srv *collectionService) RecordHistory(ctx context.Context, userID, drinkID uuid.UUID) error {
	if err := srv.ensureDrinkExists(ctx, drinkID); err != nil {
		return err
	}

	err := srv.mutate(ctx, userID, func(user *entity.User) error {
		user.AppendHistory(drinkID, time.Now().UTC())

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Record history failed", slog.Any("userID", userID), slog.Any("drinkID", drinkID), slog.Any("error", err))

		return err
	}

	return nil
}

// ReplaceScores overwrites the user's quiz score snapshot and appends the
// submission to the audit log in the same transaction. An empty map is a
// valid submission that clears the snapshot; only a missing payload is
// rejected.
func (srv *collectionService) ReplaceScores(ctx context.Context, userID uuid.UUID, scores map[string]any) error {
	if scores == nil {
		return domainerrors.ErrInvalidScorePayload
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		scoreRepo := repoFactory.NewScoreRepository()

		if err := userRepo.AcquireRowLock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for score update")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for score update")
		}

		user.Scores = scores
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist score snapshot")
		}

		return scoreRepo.Append(ctx, &entity.ScoreRecord{
			Email:  user.Email,
			Scores: scores,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Replace scores failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Replaced score snapshot", slog.Any("userID", userID))

	return nil
}
