package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	revokedTokenPrefix = "auth:revoked:"
	oauthStatePrefix   = "auth:oauth-state:"
)

type IRedis interface {
	RevokeToken(ctx context.Context, tokenID string, expiration time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	SetOAuthState(ctx context.Context, state string, expiration time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

// RevokeToken blacklists a token id until the token would have expired
// anyway.
func (r *redisClient) RevokeToken(ctx context.Context, tokenID string, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}

	key := revokedTokenPrefix + tokenID
	if err := r.client.Set(ctx, key, "1", expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error revoking token %s: %v", tokenID, err))
		return err
	}

	logrus.Debug(fmt.Sprintf("Revoked token %s for %v", tokenID, expiration))
	return nil
}

func (r *redisClient) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error checking revoked token %s: %v", tokenID, err))
		return false, err
	}
	return n > 0, nil
}

func (r *redisClient) SetOAuthState(ctx context.Context, state string, expiration time.Duration) error {
	if err := r.client.Set(ctx, oauthStatePrefix+state, "1", expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing oauth state: %v", err))
		return err
	}
	return nil
}

// ConsumeOAuthState reports whether the state was issued by us and deletes
// it so it cannot be replayed.
func (r *redisClient) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	_, err := r.client.GetDel(ctx, oauthStatePrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug("OAuth state not found")
		return false, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading oauth state: %v", err))
		return false, err
	}
	return true, nil
}
