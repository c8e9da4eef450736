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
	keyFramesProcessed = "tutela:stats:frames_processed"
	keyLastFrameAt     = "tutela:stats:last_frame_at"
	keyModelInfo       = "tutela:cache:model_info"
)

type IRedis interface {
	IncrFramesProcessed(ctx context.Context) error
	GetFramesProcessed(ctx context.Context) (int64, error)
	TouchLastFrame(ctx context.Context, at time.Time) error
	GetLastFrameAt(ctx context.Context) (time.Time, error)
	SetModelInfo(ctx context.Context, payload string, expiration time.Duration) error
	GetModelInfo(ctx context.Context) (string, error)
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

func (r *redisClient) IncrFramesProcessed(ctx context.Context) error {
	if err := r.client.Incr(ctx, keyFramesProcessed).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error incrementing frame counter: %v", err))
		return err
	}
	return nil
}

func (r *redisClient) GetFramesProcessed(ctx context.Context) (int64, error) {
	val, err := r.client.Get(ctx, keyFramesProcessed).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading frame counter: %v", err))
		return 0, err
	}
	return val, nil
}

func (r *redisClient) TouchLastFrame(ctx context.Context, at time.Time) error {
	if err := r.client.Set(ctx, keyLastFrameAt, at.Format(time.RFC3339Nano), 0).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing last frame timestamp: %v", err))
		return err
	}
	return nil
}

func (r *redisClient) GetLastFrameAt(ctx context.Context) (time.Time, error) {
	val, err := r.client.Get(ctx, keyLastFrameAt).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading last frame timestamp: %v", err))
		return time.Time{}, err
	}

	at, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, err
	}
	return at, nil
}

func (r *redisClient) SetModelInfo(ctx context.Context, payload string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Caching model info with expiration %v", expiration))
	if err := r.client.Set(ctx, keyModelInfo, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching model info: %v", err))
		return err
	}
	return nil
}

func (r *redisClient) GetModelInfo(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, keyModelInfo).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached model info: %v", err))
		return "", err
	}
	return val, nil
}
