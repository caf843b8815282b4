package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
)

// UserCacheRepository keeps verified user documents in Redis so the auth
// gate can skip the database. The password hash is never cached.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns ErrCacheMiss when the user is not cached.
func (r *UserCacheRepository) Get(ctx context.Context, id string) (*models.User, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Set caches the user under its id.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userCacheKey(user.ID.Hex())
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
