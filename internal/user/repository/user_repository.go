package repository

import (
	"context"
	"encoding/json"
	"errors"
	"hivesite/domain"
	"hivesite/internal/service/logger"
	"hivesite/internal/service/middleware"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const userCacheTTL = 5 * time.Minute

type userRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewUserRepository builds the gorm-backed store. redisClient may be nil; the
// profile cache is then skipped entirely.
func NewUserRepository(db *gorm.DB, redisClient *redis.Client) domain.UserRepository {
	return &userRepository{
		db:    db,
		redis: redisClient,
	}
}

func userCacheKey(uid string) string {
	return "user:" + uid
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("FindByUID called", zap.String("request_id", requestID), zap.String("uid", uid))

	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, userCacheKey(uid)).Result(); err == nil {
			var user domain.User
			if err := json.Unmarshal([]byte(cached), &user); err == nil {
				return &user, nil
			}
		}
	}

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("uid", uid))
			return nil, domain.ErrUserNotFound
		}
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.String("uid", uid), zap.Error(err))
		return nil, errors.New("failed to fetch user")
	}

	r.cacheUser(ctx, &user)
	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Insert called", zap.String("request_id", requestID), zap.String("uid", user.Uid), zap.Bool("is_guest", user.IsGuest))

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.DBLogger.Warn("Duplicate user", zap.String("request_id", requestID), zap.String("uid", user.Uid))
			return domain.ErrUserConflict
		}
		logger.DBLogger.Error("Failed to create user", zap.String("request_id", requestID), zap.String("uid", user.Uid), zap.Error(err))
		return errors.New("failed to create user")
	}

	r.cacheUser(ctx, user)
	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("uid", user.Uid))
	return nil
}

func (r *userRepository) GetChallenges(ctx context.Context, uid string) ([]domain.GameChallenge, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetChallenges called", zap.String("request_id", requestID), zap.String("uid", uid))

	challenges := make([]domain.GameChallenge, 0)
	if err := r.db.WithContext(ctx).
		Where("challenger_uid = ?", uid).
		Order("created_at").
		Find(&challenges).Error; err != nil {
		logger.DBLogger.Error("Failed to get challenges", zap.String("request_id", requestID), zap.String("uid", uid), zap.Error(err))
		return nil, errors.New("failed to fetch challenges")
	}

	return challenges, nil
}

func (r *userRepository) GetGames(ctx context.Context, uid string) ([]domain.Game, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetGames called", zap.String("request_id", requestID), zap.String("uid", uid))

	games := make([]domain.Game, 0)
	if err := r.db.WithContext(ctx).
		Where("white_uid = ? OR black_uid = ?", uid, uid).
		Find(&games).Error; err != nil {
		logger.DBLogger.Error("Failed to get games", zap.String("request_id", requestID), zap.String("uid", uid), zap.Error(err))
		return nil, errors.New("failed to fetch games")
	}

	return games, nil
}

// cacheUser is best-effort; a cache write failure never fails the request.
func (r *userRepository) cacheUser(ctx context.Context, user *domain.User) {
	if r.redis == nil {
		return
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, userCacheKey(user.Uid), payload, userCacheTTL).Err(); err != nil {
		logger.DBLogger.Warn("Failed to cache user", zap.String("uid", user.Uid), zap.Error(err))
	}
}
