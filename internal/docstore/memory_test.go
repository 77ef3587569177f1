package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionApps, "indsafety", Document{
		"app_name": "산업안전기사",
		"rating":   4.7,
		"count":    12,
	}))

	doc, err := store.Get(ctx, CollectionApps, "indsafety")
	require.NoError(t, err)
	assert.Equal(t, "산업안전기사", doc["app_name"])
	// JSON 왕복 때문에 숫자는 모두 float64로 돌아온다.
	assert.Equal(t, 4.7, doc["rating"])
	assert.Equal(t, float64(12), doc["count"])
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), CollectionApps, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_AddGeneratesID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id1, err := store.Add(ctx, CollectionConcepts, Document{"title": "하나"})
	require.NoError(t, err)
	id2, err := store.Add(ctx, CollectionConcepts, Document{"title": "둘"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)

	snapshots, err := store.All(ctx, CollectionConcepts)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}

func TestMemoryStore_UpdateMerges(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionApps, "a", Document{
		"app_name": "원래 이름",
		"status":   "draft",
	}))
	require.NoError(t, store.Update(ctx, CollectionApps, "a", Document{
		"status": "published",
	}))

	doc, err := store.Get(ctx, CollectionApps, "a")
	require.NoError(t, err)
	assert.Equal(t, "published", doc["status"])
	assert.Equal(t, "원래 이름", doc["app_name"])
}

func TestMemoryStore_UpdateMissingIsNoop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// 없는 문서에 대한 Update는 오류도 아니고 문서를 만들지도 않는다.
	require.NoError(t, store.Update(ctx, CollectionApps, "ghost", Document{"x": 1}))

	_, err := store.Get(ctx, CollectionApps, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionApps, "a", Document{"x": 1}))
	require.NoError(t, store.Delete(ctx, CollectionApps, "a"))
	require.NoError(t, store.Delete(ctx, CollectionApps, "a"))

	_, err := store.Get(ctx, CollectionApps, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CollectionsIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionApps, "same-id", Document{"kind": "app"}))
	require.NoError(t, store.Set(ctx, CollectionLectures, "same-id", Document{"kind": "lecture"}))

	doc, err := store.Get(ctx, CollectionApps, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "app", doc["kind"])

	doc, err = store.Get(ctx, CollectionLectures, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "lecture", doc["kind"])
}
