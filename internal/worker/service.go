package worker

import (
	"context"
	"errors"
	"time"

	"github.com/draftpost/internal/config"
	"github.com/draftpost/internal/logger"
	"github.com/draftpost/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	storeStatsInterval = time.Minute
)

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	serverCfg.Logger = logger.S()
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.PostService != nil {
		go runStoreStatsLoop(ctx, s.consumer, storeStatsInterval)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func runStoreStatsLoop(ctx context.Context, consumer *Consumer, interval time.Duration) {
	if consumer == nil || consumer.PostService == nil {
		return
	}
	recordStoreStats(consumer)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			recordStoreStats(consumer)
		}
	}
}

// recordStoreStats 周期性校准存储计数
func recordStoreStats(consumer *Consumer) {
	drafts, published, err := consumer.PostService.RecordStoreStats()
	if err != nil {
		logger.Warnw("worker_store_stats_failed", "error", err)
		return
	}
	logger.Debugw("worker_store_stats",
		"drafts", drafts,
		"published", published,
	)
}
