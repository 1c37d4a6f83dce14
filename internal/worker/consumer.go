package worker

import (
	"context"

	"github.com/draftpost/internal/logger"
	"github.com/draftpost/internal/observability"
	"github.com/draftpost/internal/provider"
	"github.com/draftpost/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	resultHandled = "handled"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPostPublished, c.handlePostPublished)
}

func (c *Consumer) handlePostPublished(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_post_published_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParsePostPublishedPayload(task)
	if err != nil {
		logger.Warnw("worker_post_published_unmarshal_failed", "error", err)
		observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultFailed).Inc()
		return err
	}
	if payload.PostID <= 0 {
		logger.Debugw("worker_post_published_skip_invalid_payload", "post_id", payload.PostID)
		observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultSkipped).Inc()
		return nil
	}
	if c.PostRepo == nil {
		logger.Warnw("worker_post_published_skip_repo_nil", "post_id", payload.PostID)
		observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultSkipped).Inc()
		return nil
	}

	post, err := c.PostRepo.GetByID(payload.PostID)
	if err != nil {
		logger.Warnw("worker_post_published_fetch_failed", "post_id", payload.PostID, "error", err)
		observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultFailed).Inc()
		return err
	}
	// 独立部署的 worker 与 API 不共享内存存储，找不到投稿时只记录事件
	if post == nil {
		logger.Infow("worker_post_published_received",
			"post_id", payload.PostID,
			"published_at", payload.PublishedAt,
			"local", false,
		)
		observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultSkipped).Inc()
		return nil
	}

	words, _ := post.WordCount()
	logger.Infow("worker_post_published_received",
		"post_id", payload.PostID,
		"published_at", payload.PublishedAt,
		"is_draft", post.IsDraft,
		"words", words,
		"local", true,
	)
	observability.PostEventsConsumed.WithLabelValues(queue.TaskPostPublished, resultHandled).Inc()
	return nil
}
