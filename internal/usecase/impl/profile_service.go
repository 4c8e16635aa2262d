package impl

import (
	"context"
	"log/slog"

	deliverycontext "sip/internal/delivery/context"
	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/domain/repository"
	"sip/internal/domain/service"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	fileStore service.FileStore
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		fileStore: params.FileStore,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the full account record of the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Get profile failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// UpdateProfileImage stores the uploaded image and points the account at it.
func (srv *profileService) UpdateProfileImage(ctx context.Context, input usecase.UpdateProfileImageInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile image", slog.Any("userID", input.UserID))

	// Store the file before touching the account. An orphaned file on a
	// failed update is preferable to a dangling image reference.
	ref, err := srv.fileStore.SaveProfileImage(ctx, input.Filename, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile image", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("failed to store profile image")
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.AcquireRowLock(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to lock user row for image update")
		}

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for image update")
		}

		user.ProfileImage = ref
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist profile image reference")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Update profile image failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}
