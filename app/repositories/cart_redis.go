package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// cartTTL keeps abandoned carts from accumulating forever.
const cartTTL = 30 * 24 * time.Hour

// RedisCartStore persists carts as JSON values keyed per user.
type RedisCartStore struct {
	rdb *redis.Client
}

func NewRedisCartStore(rdb *redis.Client) *RedisCartStore {
	return &RedisCartStore{rdb: rdb}
}

func cartKey(userID string) string {
	return "rideaux:cart:" + userID
}

func (s *RedisCartStore) Load(ctx context.Context, userID string) (models.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return models.Cart{Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return models.Cart{}, apperr.Wrap(apperr.Internal, "load cart", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return models.Cart{}, apperr.Wrap(apperr.Internal, "decode cart", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "encode cart", err)
	}
	if err := s.rdb.Set(ctx, cartKey(userID), data, cartTTL).Err(); err != nil {
		return apperr.Wrap(apperr.Internal, "save cart", err)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return apperr.Wrap(apperr.Internal, "clear cart", err)
	}
	return nil
}
