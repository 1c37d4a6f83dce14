package constants

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskPostPublished = "post:published"
)

// 检索类型常量，用于指标标签
const (
	SearchKindFiltered  = "filtered"
	SearchKindPublished = "published"
)

// 默认值
const (
	DefaultRedisPrefix  = "dp"
	DefaultDateLocation = "UTC"
	DefaultMetricsPath  = "/metrics"
)

// 投稿状态标签
const (
	PostStateDraft     = "draft"
	PostStatePublished = "published"
)
