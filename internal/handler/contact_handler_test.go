package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

func newContactTestRouter() (*gin.Engine, repository.ContactRepository) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewContactRepository(docstore.NewMemoryStore())
	h := NewContactHandler(service.NewContactService(repo))

	r := gin.New()
	r.POST("/api/contact", h.Submit)
	r.GET("/api/admin/contacts", h.ListContacts)
	r.PUT("/api/admin/contacts/:id/status", h.UpdateContactStatus)
	return r, repo
}

func postContact(t *testing.T, r *gin.Engine, form domain.ContactFormRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(form)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestContactSubmit_Success(t *testing.T) {
	r, repo := newContactTestRouter()

	w := postContact(t, r, domain.ContactFormRequest{
		Email:   "user@example.com",
		Message: "앱이 자꾸 종료됩니다. 확인 부탁드립니다.",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "성공")
	require.NotEmpty(t, resp.ID)

	// 이름/제목 미입력 시 기본값이 채워져 저장된다.
	sub, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultContactName, sub.Name)
	assert.Equal(t, domain.DefaultContactSubject, sub.Subject)
	assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestContactSubmit_ValidationFailure(t *testing.T) {
	r, _ := newContactTestRouter()

	cases := []struct {
		form   domain.ContactFormRequest
		marker string
	}{
		{domain.ContactFormRequest{Message: "충분히 긴 메시지입니다."}, "필수"},
		{domain.ContactFormRequest{Email: "broken", Message: "충분히 긴 메시지입니다."}, "이메일"},
		{domain.ContactFormRequest{Email: "user@example.com", Message: "짧음"}, "10자"},
	}
	for _, tc := range cases {
		w := postContact(t, r, tc.form)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp common.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, tc.marker)
	}
}

func TestContactStatusUpdate(t *testing.T) {
	r, _ := newContactTestRouter()

	w := postContact(t, r, domain.ContactFormRequest{
		Email:   "user@example.com",
		Message: "앱이 자꾸 종료됩니다. 확인 부탁드립니다.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	body, _ := json.Marshal(domain.UpdateSubmissionStatusRequest{
		Status: domain.SubmissionStatusResolved,
	})
	w2 := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/admin/contacts/"+created.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "변경")

	w3 := httptest.NewRecorder()
	listReq, _ := http.NewRequest("GET", "/api/admin/contacts", nil)
	r.ServeHTTP(w3, listReq)
	assert.Equal(t, http.StatusOK, w3.Code)
	assert.Contains(t, w3.Body.String(), string(domain.SubmissionStatusResolved))
}
