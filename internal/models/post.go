package models

import (
	"fmt"
	"strings"
	"time"
)

// now 当前时间，测试中可替换
var now = time.Now

// Post 投稿
// 新建时处于草稿状态，发布后记录发布时间
type Post struct {
	ID          *int64     `json:"id"`           // 主键，入库前为空
	Content     *string    `json:"content"`      // 内容
	CreatedAt   time.Time  `json:"created_at"`   // 创建时间
	UpdatedAt   *time.Time `json:"updated_at"`   // 最后一次修改内容的时间
	PublishedAt *time.Time `json:"published_at"` // 首次发布时间
	IsDraft     bool       `json:"is_draft"`     // 是否草稿
}

// SearchParams 已发布投稿的检索条件
type SearchParams struct {
	Keyword         string     // 内容关键字，空串表示不限
	PublishedAfter  *time.Time // 发布时间下限（含）
	PublishedBefore *time.Time // 发布时间上限（含）
}

// NewPost 创建空内容草稿
func NewPost() *Post {
	return &Post{
		CreatedAt: now(),
		IsDraft:   true,
	}
}

// NewPostWithContent 创建带内容的草稿
func NewPostWithContent(content string) *Post {
	ts := now()
	updatedAt := ts
	return &Post{
		Content:   &content,
		CreatedAt: ts,
		UpdatedAt: &updatedAt,
		IsDraft:   true,
	}
}

// SetContent 替换内容并刷新更新时间
func (p *Post) SetContent(content string) {
	ts := now()
	p.Content = &content
	p.UpdatedAt = &ts
}

// SetDraft 设置草稿标记
// 首次离开草稿状态时写入发布时间，之后不再覆盖；重新置为草稿不清除发布时间
func (p *Post) SetDraft(draft bool) {
	p.IsDraft = draft
	if !draft && p.PublishedAt == nil {
		ts := now()
		p.PublishedAt = &ts
	}
}

// Publish 离开草稿状态并以当前时间覆盖发布时间
func (p *Post) Publish() {
	p.SetDraft(false)
	ts := now()
	p.PublishedAt = &ts
}

// MatchesCriteria 判断已发布投稿是否满足检索条件
func (p *Post) MatchesCriteria(params *SearchParams) bool {
	if p.IsDraft || p.PublishedAt == nil {
		return false
	}
	if params == nil {
		return true
	}

	if params.Keyword != "" {
		if p.Content == nil {
			return false
		}
		if !ContainsFold(*p.Content, params.Keyword) {
			return false
		}
	}
	if params.PublishedAfter != nil && p.PublishedAt.Before(*params.PublishedAfter) {
		return false
	}
	if params.PublishedBefore != nil && p.PublishedAt.After(*params.PublishedBefore) {
		return false
	}
	return true
}

// WordCount 按空白分隔统计词数，内容为空指针时返回 false
func (p *Post) WordCount() (int, bool) {
	if p.Content == nil {
		return 0, false
	}
	return len(strings.Fields(*p.Content)), true
}

// Equal 以 ID 判定是否为同一投稿，两个未入库的投稿视为相等
func (p *Post) Equal(other *Post) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.ID == nil || other.ID == nil {
		return p.ID == nil && other.ID == nil
	}
	return *p.ID == *other.ID
}

// Clone 深拷贝
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	if p.ID != nil {
		id := *p.ID
		cp.ID = &id
	}
	if p.Content != nil {
		content := *p.Content
		cp.Content = &content
	}
	if p.UpdatedAt != nil {
		ts := *p.UpdatedAt
		cp.UpdatedAt = &ts
	}
	if p.PublishedAt != nil {
		ts := *p.PublishedAt
		cp.PublishedAt = &ts
	}
	return &cp
}

// IDValue 返回 ID，未入库时第二个返回值为 false
func (p *Post) IDValue() (int64, bool) {
	if p == nil || p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p Post) String() string {
	id := "null"
	if p.ID != nil {
		id = fmt.Sprintf("%d", *p.ID)
	}
	content := "null"
	if p.Content != nil {
		content = "'" + *p.Content + "'"
	}
	return fmt.Sprintf("Post{id=%s, content=%s, isDraft=%t}", id, content, p.IsDraft)
}

// ContainsFold 不区分大小写的子串匹配
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
