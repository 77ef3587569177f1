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

func newConceptServiceForTest() ConceptService {
	repo := repository.NewConceptRepository(docstore.NewMemoryStore())
	return NewConceptService(repo, nil)
}

func TestConceptCreate_Defaults(t *testing.T) {
	svc := newConceptServiceForTest()
	ctx := context.Background()

	id, err := svc.Create(ctx, &domain.CreateConceptRequest{
		AppID:   "indsafety",
		Title:   "재해예방의 4원칙",
		Content: "예방가능, 손실우연, 원인연계, 대책선정",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	// 중요도 미지정 시 기본값 3
	assert.Equal(t, domain.DefaultImportance, got.Importance)
	assert.Equal(t, []string{}, got.RelatedQuestionIDs)
}

func TestConceptListByApp_Filters(t *testing.T) {
	svc := newConceptServiceForTest()
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateConceptRequest{
		AppID: "indsafety", Title: "개념 A", Content: "내용",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateConceptRequest{
		AppID: "elecdraft", Title: "개념 B", Content: "내용",
	})
	require.NoError(t, err)

	resp, err := svc.ListByApp(ctx, "indsafety")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Concepts, 1)
	assert.Equal(t, "개념 A", resp.Concepts[0].Title)

	// 개념 없는 앱은 빈 목록
	resp, err = svc.ListByApp(ctx, "ghostapp")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}

func TestConceptUpdate_KeywordsStoredAsIs(t *testing.T) {
	svc := newConceptServiceForTest()
	ctx := context.Background()

	id, err := svc.Create(ctx, &domain.CreateConceptRequest{
		AppID: "indsafety", Title: "개념", Content: "내용",
		Keywords: "하인리히, 도미노",
	})
	require.NoError(t, err)

	keywords := "하인리히,도미노,버드"
	require.NoError(t, svc.Update(ctx, id, &domain.UpdateConceptRequest{Keywords: &keywords}))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	// 쉼표 구분 문자열은 파싱 없이 그대로 저장된다.
	assert.Equal(t, "하인리히,도미노,버드", got.Keywords)
	assert.Equal(t, "개념", got.Title)
}
