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

// AppHandler handles HTTP requests for apps
type AppHandler struct {
	service service.AppService
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(service service.AppService) *AppHandler {
	return &AppHandler{service: service}
}

// ListApps godoc
// @Summary      공개 앱 목록 조회
// @Description  published 상태의 앱만 조회합니다
// @Tags         apps
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.AppListResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /api/apps [get]
func (h *AppHandler) ListApps(c *gin.Context) {
	data, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "앱 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// GetApp godoc
// @Summary      앱 상세 조회
// @Tags         apps
// @Produce      json
// @Param        bundle_id  path  string  true  "앱 Bundle ID"
// @Success      200  {object}  common.APIResponse{data=domain.App}
// @Failure      404  {object}  common.APIResponse
// @Router       /api/apps/{bundle_id} [get]
func (h *AppHandler) GetApp(c *gin.Context) {
	bundleID := c.Param("bundle_id")

	app, err := h.service.GetByBundleID(c.Request.Context(), bundleID)
	if errors.Is(err, docstore.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "앱을 찾을 수 없습니다.", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "앱 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", app)
}

// ============= Admin Endpoints =============

// ListAllApps godoc
// @Summary      모든 앱 목록 조회 (관리자)
// @Description  draft 포함 모든 상태의 앱을 조회합니다
// @Tags         apps
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.AppListResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/apps [get]
func (h *AppHandler) ListAllApps(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "앱 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// CreateApp godoc
// @Summary      앱 추가 (관리자)
// @Tags         apps
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateAppRequest  true  "앱 추가 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/apps [post]
func (h *AppHandler) CreateApp(c *gin.Context) {
	var req domain.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.Create(c.Request.Context(), &req), service.MsgAppCreateFailed) {
		return
	}
	common.CreatedResponse(c, service.MsgAppCreated, req.BundleID)
}

// UpdateApp godoc
// @Summary      앱 수정 (관리자)
// @Description  전달된 필드만 수정합니다. bundle_id는 변경할 수 없습니다
// @Tags         apps
// @Accept       json
// @Produce      json
// @Param        bundle_id  path      string                   true  "앱 Bundle ID"
// @Param        request    body      domain.UpdateAppRequest  true  "앱 수정 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/apps/{bundle_id} [put]
func (h *AppHandler) UpdateApp(c *gin.Context) {
	bundleID := c.Param("bundle_id")

	var req domain.UpdateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.Update(c.Request.Context(), bundleID, &req), service.MsgAppUpdateFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgAppUpdated, nil)
}

// DeleteApp godoc
// @Summary      앱 삭제 (관리자)
// @Description  즉시 삭제되며 복구할 수 없습니다. 연결된 개념/강의는 삭제되지 않습니다
// @Tags         apps
// @Produce      json
// @Param        bundle_id  path  string  true  "앱 Bundle ID"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/apps/{bundle_id} [delete]
func (h *AppHandler) DeleteApp(c *gin.Context) {
	bundleID := c.Param("bundle_id")

	if !common.OperationResponse(c, h.service.Delete(c.Request.Context(), bundleID), service.MsgAppDeleteFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgAppDeleted, nil)
}
