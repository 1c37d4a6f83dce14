package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated 新建草稿数
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "draftpost_posts_created_total",
		Help: "Total number of drafts created",
	})

	// PostsPublished 发布成功数
	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "draftpost_posts_published_total",
		Help: "Total number of drafts published",
	})

	// PostsDeleted 删除成功数
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "draftpost_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// SearchRequests 按检索类型统计
	SearchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "draftpost_search_requests_total",
		Help: "Total number of search requests by kind",
	}, []string{"kind"})

	// SearchDateParseFailures 日期参数解析失败次数
	SearchDateParseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "draftpost_search_date_parse_failures_total",
		Help: "Total number of unparseable date bounds ignored by filtered search",
	}, []string{"field"})

	// PostEventsConsumed worker 处理的投稿事件
	PostEventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "draftpost_post_events_consumed_total",
		Help: "Total number of post events handled by the worker",
	}, []string{"task", "result"})
)

// PostsStored 当前存储中的投稿数，按状态区分
var PostsStored = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "draftpost_posts_stored",
	Help: "Number of posts currently held in the store by state",
}, []string{"state"})
