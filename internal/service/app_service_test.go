package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
)

func newAppServiceForTest() AppService {
	repo := repository.NewAppRepository(docstore.NewMemoryStore())
	return NewAppService(repo, nil)
}

func TestAppCreate_AndListPublished(t *testing.T) {
	svc := newAppServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.CreateAppRequest{
		BundleID: "indsafety",
		AppName:  "산업안전기사",
		Status:   domain.AppStatusPublished,
	}))
	require.NoError(t, svc.Create(ctx, &domain.CreateAppRequest{
		BundleID: "elecdraft",
		AppName:  "전기기사",
		// 상태 미지정 → draft → 공개 목록에서 제외
	}))

	resp, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Apps, 1)
	assert.Equal(t, "indsafety", resp.Apps[0].BundleID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestAppUpdate_PublishesDraft(t *testing.T) {
	svc := newAppServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.CreateAppRequest{
		BundleID: "indsafety",
		AppName:  "산업안전기사",
	}))

	status := domain.AppStatusPublished
	require.NoError(t, svc.Update(ctx, "indsafety", &domain.UpdateAppRequest{Status: &status}))

	resp, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestAppGet_Missing(t *testing.T) {
	svc := newAppServiceForTest()

	_, err := svc.GetByBundleID(context.Background(), "ghost")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestAppDelete_RemovesFromCatalog(t *testing.T) {
	svc := newAppServiceForTest()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.CreateAppRequest{
		BundleID: "indsafety",
		AppName:  "산업안전기사",
		Status:   domain.AppStatusPublished,
	}))
	require.NoError(t, svc.Delete(ctx, "indsafety"))

	resp, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}
