package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/models"
)

// CartRepository is the persistence adapter for per-session carts. Load
// returns nil (not an error) when no usable snapshot exists.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartRepository stores cart snapshots as JSON under a session-scoped
// key with a TTL.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCartRepository) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load reads and deserializes the cart snapshot for a session. A missing key
// or a corrupt snapshot both yield a nil cart; corruption is logged and the
// stale value discarded so the session restarts empty instead of failing.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		zap.L().Warn("Discarding malformed cart snapshot",
			zap.String("session_id", sessionID), zap.Error(err))
		_ = r.client.Del(ctx, r.key(sessionID)).Err()
		return nil, nil
	}
	return &cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(cart.SessionID), data, r.ttl).Err()
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
