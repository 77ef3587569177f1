package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

// ContactHandler handles HTTP requests for contact form submissions
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit godoc
// @Summary      문의 접수
// @Description  공개 문의 폼을 접수합니다. 이름/제목 미입력 시 기본값이 적용됩니다
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ContactFormRequest  true  "문의 내용"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	id, err := h.service.Submit(c.Request.Context(), &req)
	if !common.OperationResponse(c, err, service.MsgContactSubmitFailed) {
		return
	}
	common.CreatedResponse(c, service.MsgContactSubmitted, id)
}

// ============= Admin Endpoints =============

// ListContacts godoc
// @Summary      문의 목록 조회 (관리자)
// @Description  접수된 문의를 최신순으로 조회합니다
// @Tags         contact
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.ContactSubmissionListResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "문의 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// UpdateContactStatus godoc
// @Summary      문의 상태 변경 (관리자)
// @Description  문의를 pending / in_progress / resolved 상태로 변경합니다
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id       path      string                                true  "문의 ID"
// @Param        request  body      domain.UpdateSubmissionStatusRequest  true  "변경할 상태"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/contacts/{id}/status [put]
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.UpdateStatus(c.Request.Context(), id, req.Status), service.MsgContactStatusFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgContactStatusSet, nil)
}
