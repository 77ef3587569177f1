package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

func newTestApp(bundleID string) *domain.App {
	return &domain.App{
		BundleID:    bundleID,
		AppName:     "산업안전기사",
		AppNameFull: "산업안전기사 기출문제",
		AppCategory: domain.AppCategoryGisa,
		Categories:  []string{"안전관리", "기출문제"},
		Rating:      4.7,
	}
}

func TestAppRepo_CreateAndGet(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestApp("indsafety")))

	got, err := repo.GetByBundleID(ctx, "indsafety")
	require.NoError(t, err)
	assert.Equal(t, "indsafety", got.BundleID)
	assert.Equal(t, "산업안전기사", got.AppName)
	assert.Equal(t, domain.AppCategoryGisa, got.AppCategory)
	assert.Equal(t, []string{"안전관리", "기출문제"}, got.Categories)
	assert.InDelta(t, 4.7, got.Rating, 0.001)
	// 상태 미지정 시 draft로 저장된다.
	assert.Equal(t, domain.AppStatusDraft, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestAppRepo_GetMissing(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())

	_, err := repo.GetByBundleID(context.Background(), "ghost")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestAppRepo_ListPublished(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	draft := newTestApp("draft-app")
	require.NoError(t, repo.Create(ctx, draft))

	published := newTestApp("live-app")
	published.Status = domain.AppStatusPublished
	require.NoError(t, repo.Create(ctx, published))

	apps, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "live-app", apps[0].BundleID)
}

func TestAppRepo_PartialUpdate(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestApp("indsafety")))

	status := domain.AppStatusPublished
	featured := true
	require.NoError(t, repo.Update(ctx, "indsafety", &domain.UpdateAppRequest{
		Status:     &status,
		IsFeatured: &featured,
	}))

	got, err := repo.GetByBundleID(ctx, "indsafety")
	require.NoError(t, err)
	assert.Equal(t, domain.AppStatusPublished, got.Status)
	assert.True(t, got.IsFeatured)
	// 전달하지 않은 필드는 그대로 남아야 한다.
	assert.Equal(t, "산업안전기사", got.AppName)
	assert.InDelta(t, 4.7, got.Rating, 0.001)
}

func TestAppRepo_UpdateMissingIsNoop(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewAppRepository(store)
	ctx := context.Background()

	name := "이름"
	// 존재하지 않는 문서에 대한 부분 수정은 조용히 무시된다.
	assert.NoError(t, repo.Update(ctx, "ghost", &domain.UpdateAppRequest{AppName: &name}))

	_, err := repo.GetByBundleID(ctx, "ghost")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestAppRepo_Delete(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestApp("indsafety")))
	require.NoError(t, repo.Delete(ctx, "indsafety"))

	_, err := repo.GetByBundleID(ctx, "indsafety")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	// 삭제는 멱등: 없는 문서를 지워도 오류가 아니다.
	assert.NoError(t, repo.Delete(ctx, "indsafety"))
}

func TestAppRepo_ListOrderAndLimit(t *testing.T) {
	repo := NewAppRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newTestApp(id)))
		time.Sleep(2 * time.Millisecond)
	}

	apps, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	// 최신 생성순 정렬
	assert.Equal(t, "third", apps[0].BundleID)
	assert.Equal(t, "second", apps[1].BundleID)
}
