package queue

import (
	"encoding/json"
	"time"

	"github.com/draftpost/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPostPublished 投稿发布事件
	TaskPostPublished = constants.TaskPostPublished
)

// PostPublishedPayload 投稿发布事件载荷
type PostPublishedPayload struct {
	PostID      int64     `json:"post_id"`
	PublishedAt time.Time `json:"published_at"`
}

// NewPostPublishedTask 创建投稿发布任务
func NewPostPublishedTask(payload PostPublishedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPostPublished, body), nil
}

// ParsePostPublishedPayload 解析投稿发布任务载荷
func ParsePostPublishedPayload(task *asynq.Task) (PostPublishedPayload, error) {
	var payload PostPublishedPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
