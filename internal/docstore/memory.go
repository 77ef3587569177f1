package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used in tests and for local
// development without Redis. Documents go through the same JSON
// round-trip as the Redis backend so field types behave identically.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) collection(name string) map[string][]byte {
	col, ok := s.collections[name]
	if !ok {
		col = make(map[string][]byte)
		s.collections[name] = col
	}
	return col
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("docstore: decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[id] = data
	return nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields Document) error {
	existing, err := s.Get(ctx, collection, id)
	if err == ErrNotFound {
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

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collection(collection), id)
	return nil
}

func (s *MemoryStore) All(_ context.Context, collection string) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := s.collections[collection]
	snapshots := make([]Snapshot, 0, len(col))
	for id, data := range col {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("docstore: decode %s/%s: %w", collection, id, err)
		}
		snapshots = append(snapshots, Snapshot{ID: id, Data: doc})
	}
	return snapshots, nil
}
