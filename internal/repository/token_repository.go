package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/util"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TokenRepository keeps the hash of the one live access token per user.
type TokenRepository struct {
	Log     *zap.Logger
	DBCache *redis.Client
}

func NewTokenRepository(zap *zap.Logger, dbCache *redis.Client) *TokenRepository {
	return &TokenRepository{
		Log:     zap,
		DBCache: dbCache,
	}
}

func accessTokenKey(userId int64) string {
	return fmt.Sprintf("auth:accessToken:%d", userId)
}

func (repository *TokenRepository) SetAccessToken(ctx context.Context, userId int64, accessToken string, ttl time.Duration) error {
	// Hash tokens before storing in Redis for security
	err := repository.DBCache.Set(ctx, accessTokenKey(userId), util.HashToken(accessToken), ttl).Err()
	if err != nil {
		return err
	}

	return nil
}

func (repository *TokenRepository) GetAccessToken(ctx context.Context, userId int64) (string, error) {
	hashedToken, err := repository.DBCache.Get(ctx, accessTokenKey(userId)).Result()
	if err == redis.Nil {
		return hashedToken, &model.ValidationError{
			Code:    constant.ERR_UNATHORIZED_ERROR,
			Message: "Authorization token not found or expired",
			Param:   "accessToken",
		}
	} else if err != nil {
		return hashedToken, err
	}

	return hashedToken, nil
}

func (repository *TokenRepository) RemoveAccessToken(ctx context.Context, userId int64) error {
	err := repository.DBCache.Del(ctx, accessTokenKey(userId)).Err()
	if err != nil {
		return err
	}

	return nil
}
