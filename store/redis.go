package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/redis/go-redis/v9"
)

// Key is the redis key holding the database record.
const Key = "moneymind:db:v1"

// Redis stores the database as a single string value.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// NewRedis returns a redis store connected to addr.
func NewRedis(addr string) *Redis {
	if addr == "" {
		addr = "localhost:6379"
	}
	return NewRedisClient(redis.NewClient(&redis.Options{Addr: addr}), Key)
}

// NewRedisClient returns a redis store using an existing client and key.
func NewRedisClient(client redis.UniversalClient, key string) *Redis {
	return &Redis{client: client, key: key}
}

// Load reads the record. A missing key is an empty database.
func (r *Redis) Load(ctx context.Context) (*moneymind.Database, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return moneymind.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read redis key %q: %w", r.key, err)
	}
	db, damaged := decode(ctx, "redis:"+r.key, data)
	if damaged {
		if err := r.client.Set(ctx, r.BackupKey(), data, 0).Err(); err != nil {
			return nil, fmt.Errorf("could not back up malformed redis key %q: %w", r.key, err)
		}
	}
	return db, nil
}

// BackupKey returns the key holding the last malformed record read.
func (r *Redis) BackupKey() string { return r.key + ":bak" }

// Save writes the record, without expiration.
func (r *Redis) Save(ctx context.Context, db *moneymind.Database) error {
	data, err := encode(db)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("could not write redis key %q: %w", r.key, err)
	}
	return nil
}

// Close releases the connection.
func (r *Redis) Close() error { return r.client.Close() }
