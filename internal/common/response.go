package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/pkg/logger"
)

// APIResponse 표준 응답 형식. 모든 변경 작업은
// {success, message, id?} 형태로 결과를 알린다.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	ID      string      `json:"id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse returns a 200 success response
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse returns a 201 response carrying the new document id
func CreatedResponse(c *gin.Context, message, id string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		ID:      id,
	})
}

// ErrorResponse returns a failure response. The underlying error (if
// any) is logged, never exposed; message is the localized user-facing
// text.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.GetLogger().Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("request failed")
	}
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
	})
}

// OperationResponse maps a service error to the uniform envelope:
// validation errors surface their own localized message with 400,
// anything else is logged and replaced by failMessage with 500.
func OperationResponse(c *gin.Context, err error, failMessage string) bool {
	if err == nil {
		return true
	}
	if IsValidation(err) {
		ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	ErrorResponse(c, http.StatusInternalServerError, failMessage, err)
	return false
}
