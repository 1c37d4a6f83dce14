package search

import (
	"time"

	"github.com/draftpost/internal/models"
)

const (
	fieldFromDate = "from_date"
	fieldToDate   = "to_date"
)

// FilterInput 后台检索的原始条件
type FilterInput struct {
	Keyword  string
	BeforeID *int64 // ID 上限（不含）
	AfterID  *int64 // ID 下限（不含）
	FromDate string // 创建日期下限（含），YYYY-MM-DD
	ToDate   string // 创建日期上限（含），YYYY-MM-DD
	IsDraft  *bool
	MinWords *int
	MaxWords *int
}

// Filter 解析后的检索条件，所有条件取交集
type Filter struct {
	Keyword     string
	BeforeID    *int64
	AfterID     *int64
	CreatedFrom *time.Time // 含
	CreatedTo   *time.Time // 不含，为截止日期次日零点
	IsDraft     *bool
	MinWords    *int
	MaxWords    *int
}

// BuildFilter 构建检索条件
// 无法解析的日期按未提供处理，并通过第二个返回值交给调用方记录
func BuildFilter(in FilterInput, loc *time.Location) (Filter, []DateBound) {
	f := Filter{
		Keyword:  in.Keyword,
		BeforeID: in.BeforeID,
		AfterID:  in.AfterID,
		IsDraft:  in.IsDraft,
		MinWords: in.MinWords,
		MaxWords: in.MaxWords,
	}

	from := ParseDate(fieldFromDate, in.FromDate, loc)
	if from.Applied() {
		start := from.Day
		f.CreatedFrom = &start
	}
	to := ParseDate(fieldToDate, in.ToDate, loc)
	if to.Applied() {
		end := to.Day.AddDate(0, 0, 1)
		f.CreatedTo = &end
	}

	var invalid []DateBound
	for _, bound := range []DateBound{from, to} {
		if bound.Outcome == DateInvalid {
			invalid = append(invalid, bound)
		}
	}
	return f, invalid
}

// IsEmpty 是否未设置任何条件
func (f Filter) IsEmpty() bool {
	return f.Keyword == "" &&
		f.BeforeID == nil &&
		f.AfterID == nil &&
		f.CreatedFrom == nil &&
		f.CreatedTo == nil &&
		f.IsDraft == nil &&
		f.MinWords == nil &&
		f.MaxWords == nil
}

// Match 判断投稿是否满足全部条件
func (f Filter) Match(p *models.Post) bool {
	if p == nil {
		return false
	}
	if f.IsDraft != nil && p.IsDraft != *f.IsDraft {
		return false
	}
	if f.Keyword != "" {
		if p.Content == nil || !models.ContainsFold(*p.Content, f.Keyword) {
			return false
		}
	}
	if f.BeforeID != nil || f.AfterID != nil {
		id, ok := p.IDValue()
		if !ok {
			return false
		}
		if f.BeforeID != nil && id >= *f.BeforeID {
			return false
		}
		if f.AfterID != nil && id <= *f.AfterID {
			return false
		}
	}
	if f.CreatedFrom != nil || f.CreatedTo != nil {
		if p.CreatedAt.IsZero() {
			return false
		}
		if f.CreatedFrom != nil && p.CreatedAt.Before(*f.CreatedFrom) {
			return false
		}
		if f.CreatedTo != nil && !p.CreatedAt.Before(*f.CreatedTo) {
			return false
		}
	}
	if f.MinWords != nil || f.MaxWords != nil {
		words, ok := p.WordCount()
		if !ok {
			return false
		}
		if f.MinWords != nil && words < *f.MinWords {
			return false
		}
		if f.MaxWords != nil && words > *f.MaxWords {
			return false
		}
	}
	return true
}

// Apply 返回满足条件的投稿，保持入参顺序
func Apply(posts []models.Post, f Filter) []models.Post {
	result := make([]models.Post, 0, len(posts))
	for i := range posts {
		if f.Match(&posts[i]) {
			result = append(result, posts[i])
		}
	}
	return result
}

// MatchPublished 已发布投稿检索，草稿始终排除
func MatchPublished(posts []models.Post, params *models.SearchParams) []models.Post {
	result := make([]models.Post, 0, len(posts))
	for i := range posts {
		if posts[i].MatchesCriteria(params) {
			result = append(result, posts[i])
		}
	}
	return result
}
