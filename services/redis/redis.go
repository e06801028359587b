package redis

import (
	"context"
	"fmt"
	"log"

	redis_utils "Filmy/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// MarkMovieUsed adds a movie id to the global used set.
// Key format: "used_movies:global"
// SADD gives set semantics, so marking twice has no extra effect.
func (rc *RedisClient) MarkMovieUsed(movieID string) error {
	key := redis_utils.FormatGlobalUsedMoviesKey()
	if err := rc.client.SAdd(rc.ctx, key, movieID).Err(); err != nil {
		return fmt.Errorf("error marking movie as used: %v", err)
	}
	return nil
}

// ResetUsedMovies atomically clears the global used set. A deleted
// key reads back as an empty set, which is exactly the reset state.
func (rc *RedisClient) ResetUsedMovies() error {
	return rc.CleanupKeys([]string{redis_utils.FormatGlobalUsedMoviesKey()})
}

// UsedMovieIDs returns every movie id in the global used set.
func (rc *RedisClient) UsedMovieIDs() ([]string, error) {
	key := redis_utils.FormatGlobalUsedMoviesKey()
	ids, err := rc.client.SMembers(rc.ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading used movies: %v", err)
	}
	return ids, nil
}

// CountUsedMovies returns the size of the global used set.
func (rc *RedisClient) CountUsedMovies() (int64, error) {
	key := redis_utils.FormatGlobalUsedMoviesKey()
	count, err := rc.client.SCard(rc.ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("error counting used movies: %v", err)
	}
	return count, nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
