package mocks

import (
	"context"
	"hivesite/domain"
	"hivesite/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetChallenges(ctx context.Context, uid string) ([]domain.GameChallenge, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.GameChallenge), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetGames(ctx context.Context, uid string) ([]domain.Game, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, caller domain.CallerIdentity, username string) (*domain.User, error) {
	args := m.Called(ctx, caller, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) CreateGuestUser(ctx context.Context, caller domain.CallerIdentity) (*domain.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetUserChallenges(ctx context.Context, caller domain.CallerIdentity, uid string) ([]domain.GameChallengeResponse, error) {
	args := m.Called(ctx, caller, uid)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.GameChallengeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetUserGames(ctx context.Context, uid string) ([]domain.Game, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(uid string, tokenExpTime int64) (string, error) {
	args := m.Called(uid, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.IdentityClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.IdentityClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}
