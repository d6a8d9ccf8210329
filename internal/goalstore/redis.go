package goalstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tablero/internal/model"
)

const redisKeyPrefix = "metas:"

// RedisStore Redis 存储，键 "metas:{weekday}"，文档按 JSON 字符串存放
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 连接 Redis
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// WeekGoals 读取整周目标文档
func (s *RedisStore) WeekGoals(ctx context.Context, weekday string) (model.GoalMatrix, error) {
	doc, err := s.client.Get(ctx, redisKeyPrefix+weekday).Result()
	if err == redis.Nil {
		return model.GoalMatrix{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	var goals model.GoalMatrix
	if err := json.Unmarshal([]byte(doc), &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals document: %w", err)
	}
	return goals, nil
}

// SaveWeekGoals 整体替换文档
func (s *RedisStore) SaveWeekGoals(ctx context.Context, weekday string, goals model.GoalMatrix) error {
	doc, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals document: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+weekday, doc, 0).Err(); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

// Ping 连通性检查
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 关闭连接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
