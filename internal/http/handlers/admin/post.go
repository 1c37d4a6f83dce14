package admin

import (
	"github.com/draftpost/internal/http/handlers/shared"
	"github.com/draftpost/internal/http/response"
	"github.com/draftpost/internal/search"
	"github.com/draftpost/internal/service"

	"github.com/gin-gonic/gin"
)

var postErrorRules = []shared.ErrorRule{
	{Target: service.ErrInvalidID, Code: response.CodeBadRequest, Msg: "invalid post id"},
	{Target: service.ErrContentRequired, Code: response.CodeBadRequest, Msg: "content is required"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Msg: "post not found"},
}

// PostContentRequest 草稿内容请求
type PostContentRequest struct {
	Content *string `json:"content"`
}

// CreateDraft 创建草稿
func (h *Handler) CreateDraft(c *gin.Context) {
	var req PostContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	post, err := h.PostService.CreateDraft(req.Content)
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "draft create failed")
		return
	}
	response.Created(c, post)
}

// PublishDraft 发布草稿，已发布的投稿按不存在处理
func (h *Handler) PublishDraft(c *gin.Context) {
	id, err := service.ParsePostID(c.Param("id"))
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "draft publish failed")
		return
	}

	post, err := h.PostService.Publish(id)
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "draft publish failed")
		return
	}
	requestLog(c).Infow("admin_post_published", "post_id", id)
	response.Success(c, post)
}

// UpdateContent 修改投稿内容
func (h *Handler) UpdateContent(c *gin.Context) {
	id, err := service.ParsePostID(c.Param("id"))
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post update failed")
		return
	}

	var req PostContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	post, err := h.PostService.UpdateContent(id, req.Content)
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post update failed")
		return
	}
	response.Success(c, post)
}

// DeletePost 删除投稿
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := service.ParsePostID(c.Param("id"))
	if err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post delete failed")
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		shared.RespondMappedError(c, err, postErrorRules, response.CodeInternal, "post delete failed")
		return
	}
	requestLog(c).Infow("admin_post_deleted", "post_id", id)
	response.SuccessWithMsg(c, "deleted", gin.H{"id": id})
}

// GetDrafts 获取草稿列表
func (h *Handler) GetDrafts(c *gin.Context) {
	posts, err := h.PostService.ListDrafts()
	if err != nil {
		respondError(c, response.CodeInternal, "draft fetch failed", err)
		return
	}
	response.Success(c, posts)
}

// SearchPosts 多条件检索投稿，包含草稿
// 日期参数格式为 YYYY-MM-DD，无法解析时忽略该条件
func (h *Handler) SearchPosts(c *gin.Context) {
	in, err := bindFilterInput(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	posts, err := h.PostService.SearchFiltered(in)
	if err != nil {
		respondError(c, response.CodeInternal, "post search failed", err)
		return
	}
	response.Success(c, posts)
}

func bindFilterInput(c *gin.Context) (search.FilterInput, error) {
	in := search.FilterInput{
		Keyword:  c.Query("keyword"),
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
	}
	var err error
	if in.BeforeID, err = shared.QueryInt64(c, "before_id"); err != nil {
		return in, err
	}
	if in.AfterID, err = shared.QueryInt64(c, "after_id"); err != nil {
		return in, err
	}
	if in.IsDraft, err = shared.QueryBool(c, "is_draft"); err != nil {
		return in, err
	}
	if in.MinWords, err = shared.QueryInt(c, "min_words"); err != nil {
		return in, err
	}
	if in.MaxWords, err = shared.QueryInt(c, "max_words"); err != nil {
		return in, err
	}
	return in, nil
}
