package shared

import (
	"errors"

	"github.com/draftpost/internal/http/response"
	"github.com/draftpost/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error", appErr.LogFields()...)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// ErrorRule 业务错误到接口响应的映射
type ErrorRule struct {
	Target error
	Code   int
	Msg    string
}

// RespondMappedError 按规则映射业务错误，未命中时以 fallback 返回并记录原始错误。
// 错误链中已有 AppError 时直接使用其业务码。
func RespondMappedError(c *gin.Context, err error, rules []ErrorRule, fallbackCode int, fallbackMsg string) {
	if appErr, ok := response.AsAppError(err); ok {
		RespondError(c, appErr.Code, appErr.Message, appErr.Err)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Msg, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackMsg, err)
}
