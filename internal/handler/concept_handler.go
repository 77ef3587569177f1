package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

// ConceptHandler handles HTTP requests for study concepts
type ConceptHandler struct {
	service service.ConceptService
}

// NewConceptHandler creates a new ConceptHandler
func NewConceptHandler(service service.ConceptService) *ConceptHandler {
	return &ConceptHandler{service: service}
}

// ListAppConcepts godoc
// @Summary      앱별 핵심 개념 목록 조회
// @Tags         concepts
// @Produce      json
// @Param        bundle_id  path  string  true  "앱 Bundle ID"
// @Success      200  {object}  common.APIResponse{data=domain.ConceptListResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /api/apps/{bundle_id}/concepts [get]
func (h *ConceptHandler) ListAppConcepts(c *gin.Context) {
	appID := c.Param("bundle_id")

	data, err := h.service.ListByApp(c.Request.Context(), appID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "개념 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// ============= Admin Endpoints =============

// ListAllConcepts godoc
// @Summary      모든 개념 목록 조회 (관리자)
// @Description  최신순으로 최대 50개를 조회합니다
// @Tags         concepts
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.ConceptListResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/concepts [get]
func (h *ConceptHandler) ListAllConcepts(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "개념 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// GetConcept godoc
// @Summary      개념 상세 조회 (관리자)
// @Tags         concepts
// @Produce      json
// @Param        id  path  string  true  "개념 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Concept}
// @Failure      404  {object}  common.APIResponse
// @Router       /api/admin/concepts/{id} [get]
func (h *ConceptHandler) GetConcept(c *gin.Context) {
	id := c.Param("id")

	concept, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, docstore.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "개념을 찾을 수 없습니다.", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "개념 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", concept)
}

// CreateConcept godoc
// @Summary      개념 추가 (관리자)
// @Tags         concepts
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateConceptRequest  true  "개념 추가 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/concepts [post]
func (h *ConceptHandler) CreateConcept(c *gin.Context) {
	var req domain.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if !common.OperationResponse(c, err, service.MsgConceptCreateFailed) {
		return
	}
	common.CreatedResponse(c, service.MsgConceptCreated, id)
}

// UpdateConcept godoc
// @Summary      개념 수정 (관리자)
// @Description  전달된 필드만 수정합니다
// @Tags         concepts
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "개념 ID"
// @Param        request  body      domain.UpdateConceptRequest  true  "개념 수정 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/concepts/{id} [put]
func (h *ConceptHandler) UpdateConcept(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.Update(c.Request.Context(), id, &req), service.MsgConceptUpdateFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgConceptUpdated, nil)
}

// DeleteConcept godoc
// @Summary      개념 삭제 (관리자)
// @Tags         concepts
// @Produce      json
// @Param        id  path  string  true  "개념 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/concepts/{id} [delete]
func (h *ConceptHandler) DeleteConcept(c *gin.Context) {
	id := c.Param("id")

	if !common.OperationResponse(c, h.service.Delete(c.Request.Context(), id), service.MsgConceptDeleteFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgConceptDeleted, nil)
}
