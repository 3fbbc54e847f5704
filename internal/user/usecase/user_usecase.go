package usecase

import (
	"context"
	"hivesite/domain"
	"hivesite/internal/service/guestname"
	"hivesite/internal/service/logger"
	"hivesite/internal/service/middleware"
	"hivesite/internal/service/validation"

	"go.uber.org/zap"
)

type UserUsecase interface {
	GetUser(ctx context.Context, uid string) (*domain.User, error)
	CreateUser(ctx context.Context, caller domain.CallerIdentity, username string) (*domain.User, error)
	CreateGuestUser(ctx context.Context, caller domain.CallerIdentity) (*domain.User, error)
	GetUserChallenges(ctx context.Context, caller domain.CallerIdentity, uid string) ([]domain.GameChallengeResponse, error)
	GetUserGames(ctx context.Context, uid string) ([]domain.Game, error)
}

type userUsecase struct {
	userRepository domain.UserRepository
}

func NewUserUsecase(userRepository domain.UserRepository) UserUsecase {
	return &userUsecase{
		userRepository: userRepository,
	}
}

func (uc *userUsecase) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	return uc.userRepository.FindByUID(ctx, uid)
}

func (uc *userUsecase) CreateUser(ctx context.Context, caller domain.CallerIdentity, username string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateUsername(username) {
		logger.AccessLogger.Warn("not correct username", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidUsername
	}

	user := &domain.User{
		Uid:      caller.Uid,
		Username: username,
		IsGuest:  false,
	}
	if err := uc.userRepository.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) CreateGuestUser(ctx context.Context, caller domain.CallerIdentity) (*domain.User, error) {
	user := &domain.User{
		Uid:      caller.Uid,
		Username: guestname.Mint(),
		IsGuest:  true,
	}
	if err := uc.userRepository.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserChallenges is identity-scoped: the ownership check runs before any
// store access, so a denied caller costs no I/O and learns nothing about the
// target's data.
func (uc *userUsecase) GetUserChallenges(ctx context.Context, caller domain.CallerIdentity, uid string) ([]domain.GameChallengeResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	if err := caller.Authorize(uid); err != nil {
		logger.AccessLogger.Warn("Challenge list denied",
			zap.String("request_id", requestID),
			zap.String("uid", uid),
		)
		return nil, err
	}

	user, err := uc.userRepository.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	challenges, err := uc.userRepository.GetChallenges(ctx, uid)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GameChallengeResponse, 0, len(challenges))
	for _, challenge := range challenges {
		view, err := domain.NewGameChallengeResponse(challenge, *user)
		if err != nil {
			logger.AccessLogger.Error("Challenge view assembly failed",
				zap.String("request_id", requestID),
				zap.String("challenge_id", challenge.ID),
				zap.Error(err),
			)
			return nil, err
		}
		response = append(response, view)
	}
	return response, nil
}

func (uc *userUsecase) GetUserGames(ctx context.Context, uid string) ([]domain.Game, error) {
	if _, err := uc.userRepository.FindByUID(ctx, uid); err != nil {
		return nil, err
	}
	return uc.userRepository.GetGames(ctx, uid)
}
