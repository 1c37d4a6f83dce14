package public

import (
	handlershared "github.com/draftpost/internal/http/handlers/shared"
	"github.com/draftpost/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 公开接口处理器入口
// 说明：仅暴露已发布投稿的只读接口。
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
