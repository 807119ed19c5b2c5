package repository

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"phone_input_backend/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "phone_input:session:"

// RedisStore keeps sessions as JSON values that expire with the session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient connects to the configured Redis URL. rediss:// URLs keep
// their TLS settings; REDIS_TLS_INSECURE disables certificate verification.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if cfg.GetRedisTLSInsecure() {
			clone.InsecureSkipVerify = true
		}
		opt.TLSConfig = clone
	} else if cfg.GetRedisTLSInsecure() {
		opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return redis.NewClient(opt), nil
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Save watches the session key so that a write racing ours between the
// revision check and SET aborts the transaction.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrNotFound
	}

	key := sessionKey(s.ID)
	next := *s
	next.Version++
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, ok, err := decodeStored(tx.Get(ctx, key), s.ID)
		if err != nil {
			return err
		}
		if err := checkRevision(current, ok, s.Version); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConflict
	}
	if err != nil {
		return err
	}

	s.Version = next.Version
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (Session, error) {
	s, ok, err := decodeStored(r.client.Get(ctx, sessionKey(id)), id)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func decodeStored(cmd *redis.StringCmd, id uuid.UUID) (Session, bool, error) {
	payload, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return Session{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, true, nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ Store = (*RedisStore)(nil)
