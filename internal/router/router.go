package router

import (
	"context"
	"net/http"
	"time"

	"github.com/draftpost/internal/cache"
	"github.com/draftpost/internal/config"
	adminhandlers "github.com/draftpost/internal/http/handlers/admin"
	publichandlers "github.com/draftpost/internal/http/handlers/public"
	"github.com/draftpost/internal/http/response"
	"github.com/draftpost/internal/logger"
	"github.com/draftpost/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthCheckTimeout = 2 * time.Second

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	var writeLimit gin.HandlerFunc = func(ctx *gin.Context) { ctx.Next() }
	if cfg.RateLimit.Enabled {
		writeLimit = RateLimitMiddleware(cache.Client(), RateLimitRule{
			Prefix:        cache.Key("rate", "admin_write"),
			WindowSeconds: cfg.RateLimit.WindowSeconds,
			MaxRequests:   cfg.RateLimit.MaxRequests,
		}, KeyByIPAndMethod)
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", healthz)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/search", publicHandler.SearchPosts)
			public.GET("/posts/:id", publicHandler.GetPost)
		}

		// 后台接口
		admin := apiV1.Group("/admin")
		{
			admin.GET("/posts/drafts", adminHandler.GetDrafts)
			admin.GET("/posts/search", adminHandler.SearchPosts)
			admin.POST("/posts/drafts", writeLimit, adminHandler.CreateDraft)
			admin.PUT("/posts/drafts/:id/publish", writeLimit, adminHandler.PublishDraft)
			admin.PUT("/posts/:id/content", writeLimit, adminHandler.UpdateContent)
			admin.DELETE("/posts/:id", writeLimit, adminHandler.DeletePost)
		}
	}

	return r
}

func healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		logger.Warnw("healthz_redis_unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, response.Response{
			StatusCode: response.CodeUnavailable,
			Msg:        "redis unavailable",
		})
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
