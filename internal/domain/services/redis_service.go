package services

import (
	"context"
	"encoding/json"
	"time"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// 技术员目录在Redis中的缓存键
const technicianDirectoryKey = "directory:technicians"

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	Ping() error
	CacheTechnicians(technicians []models.User, expiration time.Duration) error
	GetCachedTechnicians() ([]models.User, error)
	InvalidateTechnicians() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 Ping checks the Redis connection
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

// 5 CacheTechnicians caches the technician directory
func (s *RedisService) CacheTechnicians(technicians []models.User, expiration time.Duration) error {
	return s.Set(technicianDirectoryKey, technicians, expiration)
}

// 6 GetCachedTechnicians gets the technician directory from cache
func (s *RedisService) GetCachedTechnicians() ([]models.User, error) {
	var technicians []models.User
	if err := s.Get(technicianDirectoryKey, &technicians); err != nil {
		return nil, err
	}
	return technicians, nil
}

// 7 InvalidateTechnicians drops the cached technician directory
func (s *RedisService) InvalidateTechnicians() error {
	return s.Delete(technicianDirectoryKey)
}
