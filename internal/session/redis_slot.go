package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ripple/internal/models"

	"github.com/redis/go-redis/v9"
)

// SessionKey is the single Redis key holding the serialized current user.
const SessionKey = "session:current_user"

// redisSlot stores the session under one Redis key, for profiles that keep
// session state in a shared Redis instead of the local filesystem.
type redisSlot struct {
	client *redis.Client
}

// NewRedisSlot returns a Slot backed by the Redis at addr. addr may be a
// plain host:port or a redis:// URL.
func NewRedisSlot(addr string) (Slot, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid session redis url %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	return &redisSlot{client: redis.NewClient(opts)}, nil
}

// NewRedisSlotFromClient wraps an existing client; used by tests.
func NewRedisSlotFromClient(client *redis.Client) Slot {
	return &redisSlot{client: client}
}

func (s *redisSlot) Load(ctx context.Context) (*models.Identity, error) {
	data, err := s.client.Get(ctx, SessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &id, nil
}

func (s *redisSlot) Save(ctx context.Context, id models.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	if err := s.client.Set(ctx, SessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

func (s *redisSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, SessionKey).Err(); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
