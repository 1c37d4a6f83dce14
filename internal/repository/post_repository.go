package repository

import (
	"sync"
	"sync/atomic"

	"github.com/draftpost/internal/models"
)

// PostRepository 投稿数据访问接口
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int64) (*models.Post, error)
	Update(id int64, fn func(post *models.Post) error) (*models.Post, error)
	Delete(id int64) (bool, error)
	List(filter PostListFilter) ([]models.Post, error)
	Count() int
}

// MemoryPostRepository 内存实现，重启后数据丢失
type MemoryPostRepository struct {
	mu     sync.RWMutex
	posts  map[int64]*models.Post
	nextID atomic.Int64
}

// NewPostRepository 创建投稿仓库
func NewPostRepository() *MemoryPostRepository {
	r := &MemoryPostRepository{
		posts: make(map[int64]*models.Post),
	}
	r.nextID.Store(1)
	return r
}

// Create 分配 ID 并保存投稿副本，ID 会回写到入参
func (r *MemoryPostRepository) Create(post *models.Post) error {
	if post == nil {
		return ErrNilPost
	}
	id := r.nextID.Add(1) - 1
	post.ID = &id

	stored := post.Clone()
	r.mu.Lock()
	r.posts[id] = stored
	r.mu.Unlock()
	return nil
}

// GetByID 根据 ID 获取投稿，不存在时返回 nil
func (r *MemoryPostRepository) GetByID(id int64) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return post.Clone(), nil
}

// Update 在写锁内修改投稿
// fn 返回错误时放弃修改；投稿不存在时返回 nil
func (r *MemoryPostRepository) Update(id int64, fn func(post *models.Post) error) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	// ID 不可变
	working.ID = current.ID
	r.posts[id] = working
	return working.Clone(), nil
}

// Delete 删除投稿，返回是否实际删除
func (r *MemoryPostRepository) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

// List 投稿列表快照，顺序不保证
func (r *MemoryPostRepository) List(filter PostListFilter) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		if filter.IsDraft != nil && post.IsDraft != *filter.IsDraft {
			continue
		}
		posts = append(posts, *post.Clone())
	}
	return posts, nil
}

// Count 当前投稿数量
func (r *MemoryPostRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}
