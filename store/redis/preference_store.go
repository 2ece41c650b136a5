// Package redis stores timeline preferences in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/redis/go-redis/v9"
)

var (
	_ store.PreferenceStore = (*PreferenceStore)(nil)
	_ store.Pinger          = (*PreferenceStore)(nil)
)

// PreferenceStore keeps each record as a plain string value without expiry.
type PreferenceStore struct {
	client *redis.Client
}

func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

func (s *PreferenceStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	return raw, true, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key string, raw []byte) error {
	if err := s.client.Set(ctx, key, string(raw), 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
