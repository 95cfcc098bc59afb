package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

// IRedis counts failed login attempts per key inside an expiring window.
type IRedis interface {
	IncrFailedLogin(ctx context.Context, key string, window time.Duration) (int64, error)
	GetFailedLogin(ctx context.Context, key string) (int64, error)
	ResetFailedLogin(ctx context.Context, key string) error
}

type redisClient struct {
	client *redis.Client
}

const failedLoginPrefix = "login:failed:"

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
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

// IncrFailedLogin bumps the counter and starts the window on the first hit.
func (r *redisClient) IncrFailedLogin(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := failedLoginPrefix + key

	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error incrementing failed logins for key %s: %v", key, err))
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, fullKey, window).Err(); err != nil {
			logrus.Error(fmt.Sprintf("Error setting window for key %s: %v", key, err))
			return count, err
		}
	}

	return count, nil
}

func (r *redisClient) GetFailedLogin(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, failedLoginPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading failed logins for key %s: %v", key, err))
		return 0, err
	}
	return val, nil
}

func (r *redisClient) ResetFailedLogin(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, failedLoginPrefix+key).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error resetting failed logins for key %s: %v", key, err))
		return err
	}
	logrus.Debug(fmt.Sprintf("Reset failed logins for key %s", key))
	return nil
}
