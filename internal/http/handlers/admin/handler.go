package admin

import (
	handlershared "github.com/draftpost/internal/http/handlers/shared"
	"github.com/draftpost/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 后台管理接口处理器入口
// 说明：负责草稿的创建、发布、编辑、删除与多条件检索。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
