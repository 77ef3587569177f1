package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps one Redis hash per collection: the hash field is the
// document id, the value is the JSON-encoded document.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed document store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func hashKey(collection string) string {
	return "docs:" + collection
}

func (s *redisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	data, err := s.client.HGet(ctx, hashKey(collection), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("docstore: get %s/%s: %w", collection, id, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("docstore: decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *redisStore) Set(ctx context.Context, collection, id string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode %s/%s: %w", collection, id, err)
	}
	if err := s.client.HSet(ctx, hashKey(collection), id, data).Err(); err != nil {
		return fmt.Errorf("docstore: set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *redisStore) Add(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *redisStore) Update(ctx context.Context, collection, id string, fields Document) error {
	existing, err := s.Get(ctx, collection, id)
	if errors.Is(err, ErrNotFound) {
		// 문서가 없으면 조용히 무시 (no-op)
		return nil
	}
	if err != nil {
		return err
	}

	for k, v := range fields {
		existing[k] = v
	}
	return s.Set(ctx, collection, id, existing)
}

func (s *redisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.client.HDel(ctx, hashKey(collection), id).Err(); err != nil {
		return fmt.Errorf("docstore: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *redisStore) All(ctx context.Context, collection string) ([]Snapshot, error) {
	raw, err := s.client.HGetAll(ctx, hashKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("docstore: list %s: %w", collection, err)
	}

	snapshots := make([]Snapshot, 0, len(raw))
	for id, data := range raw {
		var doc Document
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, fmt.Errorf("docstore: decode %s/%s: %w", collection, id, err)
		}
		snapshots = append(snapshots, Snapshot{ID: id, Data: doc})
	}
	return snapshots, nil
}
