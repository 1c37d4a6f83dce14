package repository

import "errors"

// ErrNilPost 入参为空
var ErrNilPost = errors.New("post is nil")

// PostListFilter 查询投稿列表的过滤条件
type PostListFilter struct {
	IsDraft *bool // nil 表示全部
}
