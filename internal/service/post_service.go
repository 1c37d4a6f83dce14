package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/draftpost/internal/constants"
	"github.com/draftpost/internal/logger"
	"github.com/draftpost/internal/models"
	"github.com/draftpost/internal/observability"
	"github.com/draftpost/internal/queue"
	"github.com/draftpost/internal/repository"
	"github.com/draftpost/internal/search"

	"github.com/hibiken/asynq"
)

// PostEventPublisher 投稿事件发布
type PostEventPublisher interface {
	EnqueuePostPublished(payload queue.PostPublishedPayload, opts ...asynq.Option) error
}

// PostService 投稿业务服务
type PostService struct {
	repo         repository.PostRepository
	events       PostEventPublisher
	dateLocation *time.Location
}

// NewPostService 创建投稿服务
func NewPostService(repo repository.PostRepository, events PostEventPublisher, dateLocation *time.Location) *PostService {
	if dateLocation == nil {
		dateLocation = time.UTC
	}
	return &PostService{
		repo:         repo,
		events:       events,
		dateLocation: dateLocation,
	}
}

// ParsePostID 解析路径中的投稿 ID
func ParsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// CreateDraft 创建草稿
func (s *PostService) CreateDraft(content *string) (*models.Post, error) {
	if content == nil {
		return nil, ErrContentRequired
	}
	post := models.NewPostWithContent(*content)
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()
	s.refreshStoreStats()
	logger.Debugw("post_draft_created", "post_id", *post.ID)
	return post, nil
}

// Publish 发布草稿
// 投稿不存在或已发布都返回 ErrNotFound（已发布时为 ErrAlreadyPublished）
func (s *PostService) Publish(id int64) (*models.Post, error) {
	post, err := s.repo.Update(id, func(p *models.Post) error {
		if !p.IsDraft {
			return ErrAlreadyPublished
		}
		p.Publish()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyPublished) {
			logger.Debugw("post_publish_skipped", "post_id", id, "reason", "already_published")
		}
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	observability.PostsPublished.Inc()
	s.refreshStoreStats()
	logger.Infow("post_published", "post_id", id, "published_at", *post.PublishedAt)
	if s.events != nil {
		if err := s.events.EnqueuePostPublished(queue.PostPublishedPayload{
			PostID:      id,
			PublishedAt: *post.PublishedAt,
		}); err != nil {
			logger.Warnw("post_enqueue_published_event_failed",
				"post_id", id,
				"error", err,
			)
		}
	}
	return post, nil
}

// UpdateContent 修改投稿内容
func (s *PostService) UpdateContent(id int64, content *string) (*models.Post, error) {
	if content == nil {
		return nil, ErrContentRequired
	}
	post, err := s.repo.Update(id, func(p *models.Post) error {
		p.SetContent(*content)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Delete 删除投稿
func (s *PostService) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	observability.PostsDeleted.Inc()
	s.refreshStoreStats()
	logger.Infow("post_deleted", "post_id", id)
	return nil
}

// Get 获取投稿详情，草稿与已发布均可获取
func (s *PostService) Get(id int64) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// ListPublished 已发布投稿列表，顺序不保证
func (s *PostService) ListPublished() ([]models.Post, error) {
	isDraft := false
	return s.repo.List(repository.PostListFilter{IsDraft: &isDraft})
}

// ListDrafts 草稿列表，顺序不保证
func (s *PostService) ListDrafts() ([]models.Post, error) {
	isDraft := true
	return s.repo.List(repository.PostListFilter{IsDraft: &isDraft})
}

// RecordStoreStats 按状态统计存储中的投稿数并写入 PostsStored
func (s *PostService) RecordStoreStats() (drafts int, published int, err error) {
	all, err := s.repo.List(repository.PostListFilter{})
	if err != nil {
		return 0, 0, err
	}
	for i := range all {
		if all[i].IsDraft {
			drafts++
		} else {
			published++
		}
	}
	observability.PostsStored.WithLabelValues(constants.PostStateDraft).Set(float64(drafts))
	observability.PostsStored.WithLabelValues(constants.PostStatePublished).Set(float64(published))
	return drafts, published, nil
}

func (s *PostService) refreshStoreStats() {
	if _, _, err := s.RecordStoreStats(); err != nil {
		logger.Warnw("post_store_stats_failed", "error", err)
	}
}

// SearchFiltered 后台多条件检索，包含草稿
// 无法解析的日期参数被忽略并记录日志，不返回给调用方
func (s *PostService) SearchFiltered(in search.FilterInput) ([]models.Post, error) {
	observability.SearchRequests.WithLabelValues(constants.SearchKindFiltered).Inc()

	filter, invalid := search.BuildFilter(in, s.dateLocation)
	for _, bound := range invalid {
		observability.SearchDateParseFailures.WithLabelValues(bound.Field).Inc()
		logger.Warnw("search_date_parse_failed",
			"field", bound.Field,
			"value", bound.Raw,
			"outcome", bound.Outcome.String(),
			"error", bound.Err,
		)
	}

	posts, err := s.repo.List(repository.PostListFilter{})
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return posts, nil
	}
	return search.Apply(posts, filter), nil
}

// SearchPublished 已发布投稿检索
func (s *PostService) SearchPublished(params *models.SearchParams) ([]models.Post, error) {
	observability.SearchRequests.WithLabelValues(constants.SearchKindPublished).Inc()

	isDraft := false
	posts, err := s.repo.List(repository.PostListFilter{IsDraft: &isDraft})
	if err != nil {
		return nil, err
	}
	return search.MatchPublished(posts, params), nil
}

// ParseSearchParams 解析已发布检索参数，时间为 RFC3339 格式
// 三个参数都为空时返回 nil，表示不限条件
func ParseSearchParams(keyword, publishedAfter, publishedBefore string) (*models.SearchParams, error) {
	keyword = strings.TrimSpace(keyword)
	publishedAfter = strings.TrimSpace(publishedAfter)
	publishedBefore = strings.TrimSpace(publishedBefore)
	if keyword == "" && publishedAfter == "" && publishedBefore == "" {
		return nil, nil
	}

	params := &models.SearchParams{Keyword: keyword}
	if publishedAfter != "" {
		ts, err := time.Parse(time.RFC3339, publishedAfter)
		if err != nil {
			return nil, fmt.Errorf("%w: published_after: %v", ErrInvalidSearchParam, err)
		}
		params.PublishedAfter = &ts
	}
	if publishedBefore != "" {
		ts, err := time.Parse(time.RFC3339, publishedBefore)
		if err != nil {
			return nil, fmt.Errorf("%w: published_before: %v", ErrInvalidSearchParam, err)
		}
		params.PublishedBefore = &ts
	}
	return params, nil
}
