package provider

import (
	"github.com/draftpost/internal/cache"
	"github.com/draftpost/internal/config"
	"github.com/draftpost/internal/logger"
	"github.com/draftpost/internal/queue"
	"github.com/draftpost/internal/repository"
	"github.com/draftpost/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	PostRepo repository.PostRepository

	// Services
	PostService *service.PostService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	return NewContainerWith(cfg, repository.NewPostRepository(), queueClient)
}

// NewContainerWith 使用给定仓库与队列客户端组装容器
func NewContainerWith(cfg *config.Config, postRepo repository.PostRepository, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		PostRepo:    postRepo,
	}

	var events service.PostEventPublisher
	if queueClient != nil {
		events = queueClient
	}
	c.PostService = service.NewPostService(postRepo, events, cfg.Search.Location())
	return c
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
