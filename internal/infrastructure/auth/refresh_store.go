package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unionadmin/backend/internal/infrastructure/config"
)

// RefreshTokenStore tracks which refresh tokens are still live. A token
// missing from the store is treated as revoked, so logout is a delete and a
// stolen token dies with the session.
type RefreshTokenStore interface {
	// Save registers a refresh token's JTI for a user with the token's TTL
	Save(ctx context.Context, userID, jti string, ttl time.Duration) error

	// IsLive reports whether the JTI is still the registered token for the user
	IsLive(ctx context.Context, userID, jti string) (bool, error)

	// Revoke drops the user's registered refresh token
	Revoke(ctx context.Context, userID string) error
}

// RedisRefreshTokenStore implements RefreshTokenStore using Redis
type RedisRefreshTokenStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRefreshTokenStore connects to Redis and returns a refresh token store
func NewRedisRefreshTokenStore(cfg config.RedisConfig) (*RedisRefreshTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for refresh token store: %w", err)
	}

	return NewRedisRefreshTokenStoreWithClient(client), nil
}

// NewRedisRefreshTokenStoreWithClient wraps an existing Redis client
func NewRedisRefreshTokenStoreWithClient(client *redis.Client) *RedisRefreshTokenStore {
	return &RedisRefreshTokenStore{
		client:    client,
		keyPrefix: "auth:refresh:",
	}
}

func (s *RedisRefreshTokenStore) key(userID string) string {
	return s.keyPrefix + userID
}

// Save registers the refresh token, replacing any previous one for the user
func (s *RedisRefreshTokenStore) Save(ctx context.Context, userID, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), jti, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// IsLive reports whether the JTI matches the registered token for the user
func (s *RedisRefreshTokenStore) IsLive(ctx context.Context, userID, jti string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return stored == jti, nil
}

// Revoke drops the user's registered refresh token
func (s *RedisRefreshTokenStore) Revoke(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisRefreshTokenStore) Close() error {
	return s.client.Close()
}

var _ RefreshTokenStore = (*RedisRefreshTokenStore)(nil)

// InMemoryRefreshTokenStore is a single-process implementation for tests
type InMemoryRefreshTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]inMemoryToken
}

type inMemoryToken struct {
	jti       string
	expiresAt time.Time
}

// NewInMemoryRefreshTokenStore creates an in-memory refresh token store
func NewInMemoryRefreshTokenStore() *InMemoryRefreshTokenStore {
	return &InMemoryRefreshTokenStore{tokens: make(map[string]inMemoryToken)}
}

// Save registers the refresh token, replacing any previous one for the user
func (s *InMemoryRefreshTokenStore) Save(_ context.Context, userID, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = inMemoryToken{jti: jti, expiresAt: time.Now().Add(ttl)}
	return nil
}

// IsLive reports whether the JTI matches the registered token for the user
func (s *InMemoryRefreshTokenStore) IsLive(_ context.Context, userID, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tokens[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	return entry.jti == jti, nil
}

// Revoke drops the user's registered refresh token
func (s *InMemoryRefreshTokenStore) Revoke(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}

var _ RefreshTokenStore = (*InMemoryRefreshTokenStore)(nil)
