package public

import (
	"github.com/draftpost/internal/http/handlers/shared"
	"github.com/draftpost/internal/http/response"
	"github.com/draftpost/internal/service"

	"github.com/gin-gonic/gin"
)

var postErrorRules = []shared.ErrorRule{
	{Target: service.ErrInvalidID, Code: response.CodeBadRequest, Msg: "invalid post id"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Msg: "post not found"},
	{Target: service.ErrInvalidSearchParam, Code: response.CodeBadRequest, Msg: "invalid search parameters"},
}

// GetPost 获取投稿详情
func (h *Handler) GetPost(c *gin.Context) {
	id, err := service.ParsePostID(c.Param("id"))
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post fetch failed")
		return
	}

	post, err := h.PostService.Get(id)
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post fetch failed")
		return
	}
	response.Success(c, post)
}

// GetPosts 获取已发布投稿列表
func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.PostService.ListPublished()
	if err != nil {
		respondError(c, response.CodeInternal, "post fetch failed", err)
		return
	}
	response.Success(c, posts)
}

// SearchPosts 检索已发布投稿
// 参数：keyword、published_after、published_before（RFC3339）
func (h *Handler) SearchPosts(c *gin.Context) {
	params, err := service.ParseSearchParams(
		c.Query("keyword"),
		c.Query("published_after"),
		c.Query("published_before"),
	)
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post search failed")
		return
	}

	posts, err := h.PostService.SearchPublished(params)
	if err != nil {
		respondError(c, response.CodeInternal, "post search failed", err)
		return
	}
	response.Success(c, posts)
}
