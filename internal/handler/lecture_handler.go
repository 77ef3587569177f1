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

// LectureHandler handles HTTP requests for lectures
type LectureHandler struct {
	service service.LectureService
}

// NewLectureHandler creates a new LectureHandler
func NewLectureHandler(service service.LectureService) *LectureHandler {
	return &LectureHandler{service: service}
}

// ListAppLectures godoc
// @Summary      앱별 강의 목록 조회
// @Tags         lectures
// @Produce      json
// @Param        bundle_id  path  string  true  "앱 Bundle ID"
// @Success      200  {object}  common.APIResponse{data=domain.LectureListResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /api/apps/{bundle_id}/lectures [get]
func (h *LectureHandler) ListAppLectures(c *gin.Context) {
	appID := c.Param("bundle_id")

	data, err := h.service.ListByApp(c.Request.Context(), appID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "강의 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// ============= Admin Endpoints =============

// ListAllLectures godoc
// @Summary      모든 강의 목록 조회 (관리자)
// @Description  최신순으로 최대 50개를 조회합니다
// @Tags         lectures
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.LectureListResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/lectures [get]
func (h *LectureHandler) ListAllLectures(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "강의 목록 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", data)
}

// GetLecture godoc
// @Summary      강의 상세 조회 (관리자)
// @Tags         lectures
// @Produce      json
// @Param        id  path  string  true  "강의 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Lecture}
// @Failure      404  {object}  common.APIResponse
// @Router       /api/admin/lectures/{id} [get]
func (h *LectureHandler) GetLecture(c *gin.Context) {
	id := c.Param("id")

	lecture, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, docstore.ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "강의를 찾을 수 없습니다.", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "강의 조회 중 오류가 발생했습니다.", err)
		return
	}
	common.SuccessResponse(c, "", lecture)
}

// CreateLecture godoc
// @Summary      강의 추가 (관리자)
// @Tags         lectures
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateLectureRequest  true  "강의 추가 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/lectures [post]
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	var req domain.CreateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if !common.OperationResponse(c, err, service.MsgLectureCreateFailed) {
		return
	}
	common.CreatedResponse(c, service.MsgLectureCreated, id)
}

// UpdateLecture godoc
// @Summary      강의 수정 (관리자)
// @Description  전달된 필드만 수정합니다
// @Tags         lectures
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "강의 ID"
// @Param        request  body      domain.UpdateLectureRequest  true  "강의 수정 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/lectures/{id} [put]
func (h *LectureHandler) UpdateLecture(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다.", err)
		return
	}

	if !common.OperationResponse(c, h.service.Update(c.Request.Context(), id, &req), service.MsgLectureUpdateFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgLectureUpdated, nil)
}

// DeleteLecture godoc
// @Summary      강의 삭제 (관리자)
// @Tags         lectures
// @Produce      json
// @Param        id  path  string  true  "강의 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /api/admin/lectures/{id} [delete]
func (h *LectureHandler) DeleteLecture(c *gin.Context) {
	id := c.Param("id")

	if !common.OperationResponse(c, h.service.Delete(c.Request.Context(), id), service.MsgLectureDeleteFailed) {
		return
	}
	common.SuccessResponse(c, service.MsgLectureDeleted, nil)
}
