package response

import (
	"net/http"

	cErr "apitracker/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

// ErrorBody 僅用於錯誤路徑；成功回應由各 handler 依介面規格直接輸出
type ErrorBody struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, ErrorBody{
		RequestID:   requestID,
		Code:        errorCode,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	v, ok := err.(*cErr.Error)
	if ok {
		Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, err.Error(), "internal error")
	}
}
