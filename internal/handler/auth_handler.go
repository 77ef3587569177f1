package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/middleware"
	"github.com/jmkcontents/jmkcontents/internal/service"
)

// AuthHandler handles admin session endpoints
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      관리자 로그인
// @Description  관리자 비밀번호 확인 후 세션 쿠키를 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "로그인 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "비밀번호를 입력해주세요.", err)
		return
	}

	if err := h.service.Login(req.Password); err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}

	middleware.SetAdminSession(c)
	common.SuccessResponse(c, service.MsgLoginSuccess, nil)
}

// Logout godoc
// @Summary      관리자 로그아웃
// @Description  세션 쿠키를 무조건 삭제합니다
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAdminSession(c)
	common.SuccessResponse(c, service.MsgLogout, nil)
}

// Session godoc
// @Summary      관리자 세션 확인
// @Description  현재 요청이 인증된 관리자 세션인지 반환합니다
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /api/admin/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	common.SuccessResponse(c, "", gin.H{
		"authenticated": middleware.IsAdminSession(c),
	})
}
