// Package docstore provides a minimal key-document store abstraction.
//
// Documents are schemaless field maps addressed by (collection, id).
// Two backends exist: Redis for production and an in-memory store for
// tests and local development. Both serialize documents as JSON, so
// numeric fields always decode as float64.
package docstore

import (
	"context"
	"errors"
)

// 컬렉션 이름 상수
const (
	CollectionApps               = "apps"
	CollectionConcepts           = "concepts"
	CollectionLectures           = "lectures"
	CollectionAffiliateAds       = "affiliate_ads"
	CollectionContactSubmissions = "contact_submissions"
)

// ErrNotFound is returned by Get when no document exists for the id.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a schemaless field map.
type Document map[string]interface{}

// Snapshot pairs a document with its id, as returned by All.
type Snapshot struct {
	ID   string
	Data Document
}

// Store is the key-document store boundary.
//
// Update merges only the supplied fields into an existing document and
// is a silent no-op when the document does not exist. Delete succeeds
// whether or not the document exists. Callers that need to distinguish
// a missing document use Get and check for ErrNotFound.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Set(ctx context.Context, collection, id string, doc Document) error
	Add(ctx context.Context, collection string, doc Document) (string, error)
	Update(ctx context.Context, collection, id string, fields Document) error
	Delete(ctx context.Context, collection, id string) error
	All(ctx context.Context, collection string) ([]Snapshot, error)
}
