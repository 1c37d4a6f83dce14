package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("not found")
	// ErrAlreadyPublished 投稿已发布，对外与 ErrNotFound 一致
	ErrAlreadyPublished = fmt.Errorf("post already published: %w", ErrNotFound)
	// ErrContentRequired 缺少内容
	ErrContentRequired = errors.New("content is required")
	// ErrInvalidID ID 格式错误
	ErrInvalidID = errors.New("invalid post id")
	// ErrInvalidSearchParam 检索参数格式错误
	ErrInvalidSearchParam = errors.New("invalid search parameter")
)
