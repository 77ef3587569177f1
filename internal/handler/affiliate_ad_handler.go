package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

// AffiliateAdHandler handles HTTP requests for affiliate ads
type AffiliateAdHandler struct {
	service service.AffiliateAdService
}

// NewAffiliateAdHandler creates a new AffiliateAdHandler
func NewAffiliateAdHandler(service service.AffiliateAdService) *AffiliateAdHandler {
	return &AffiliateAdHandler{service: service}
}

// ListActiveAds godoc
// @Summary      활성 광고 목록 조회
// @Description  활성 상태이며 게재 기간 내인 광고를 우선순위순으로 조회합니다
// @Tags         ads
// @Produce      json
// @Param        app_id  query     string  false  "대상 앱 Bundle ID"
// @Success      200  {object}  common.APIResponse{data=domain.AffiliateAdListResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /api/ads [get]
func (h *AffiliateAdHandler) ListActiveAds(c *gin.Context) {
	appID := c.Query("app_id")

	data, err := h.service.ListActive(c.Request.Context(), appID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "광고 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// TrackImpression godoc
// @Summary      광고 노출 기록
// @Tags         ads
// @Produce      json
// @Param        id  path  string  true  "광고 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /api/ads/{id}/impression [post]
func (h *AffiliateAdHandler) TrackImpression(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.TrackImpression(c.Request.Context(), id); err != nil {
		h.trackError(c, err)
		return
	}
	common.SuccessResponse(c, "", nil)
}

// TrackClick godoc
// @Summary      광고 클릭 기록
// @Tags         ads
// @Produce      json
// @Param        id  path  string  true  "광고 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /api/ads/{id}/click [post]
func (h *AffiliateAdHandler) TrackClick(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.TrackClick(c.Request.Context(), id); err != nil {
		h.trackError(c, err)
		return
	}
	common.SuccessResponse(c, "", nil)
}

func (h *AffiliateAdHandler) trackError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrAdNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	common.ErrorResponse(c, http.StatusInternalServerError, "광고 집계 중 오류가 발생했습니다.", err)
}

// ============= Admin Endpoints =============

// ListAllAds godoc
// @Summary      모든 광고 목록 조회 (관리자)
// @Description  활성/비활성 포함 모든 광고를 조회합니다
// @Tags         ads
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.AffiliateAdListResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/ads [get]
func (h *AffiliateAdHandler) ListAllAds(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "광고 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// CreateAd godoc
// @Summary      광고 추가 (관리자)
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateAffiliateAdRequest  true  "광고 추가 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/ads [post]
func (h *AffiliateAdHandler) CreateAd(c *gin.Context) {
	var req domain.CreateAffiliateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if !common.OperationResponse(c, err, service.MsgAdCreateFailed) {
		return
	}
	common.CreatedResponse(c, service.MsgAdCreated, id)
}

// UpdateAd godoc
// @Summary      광고 수정 (관리자)
// @Description  전달된 필드만 수정합니다
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "광고 ID"
// @Param        request  body      domain.UpdateAffiliateAdRequest  true  "광고 수정 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/ads/{id} [put]
func (h *AffiliateAdHandler) UpdateAd(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateAffiliateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.Update(c.Request.Context(), id, &req), service.MsgAdUpdateFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgAdUpdated, nil)
}

// DeleteAd godoc
// @Summary      광고 삭제 (관리자)
// @Tags         ads
// @Produce      json
// @Param        id  path  string  true  "광고 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/ads/{id} [delete]
func (h *AffiliateAdHandler) DeleteAd(c *gin.Context) {
	id := c.Param("id")

	if !common.OperationResponse(c, h.service.Delete(c.Request.Context(), id), service.MsgAdDeleteFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgAdDeleted, nil)
}

// ToggleAd godoc
// @Summary      광고 활성 상태 토글 (관리자)
// @Description  isActive 값을 반전합니다. 존재하지 않는 광고면 실패합니다
// @Tags         ads
// @Produce      json
// @Param        id  path  string  true  "광고 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/ads/{id}/toggle [post]
func (h *AffiliateAdHandler) ToggleAd(c *gin.Context) {
	id := c.Param("id")

	if !common.OperationResponse(c, h.service.Toggle(c.Request.Context(), id), service.MsgAdToggleFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgAdToggled, nil)
}
