package jobs

import (
	"encoding/json"
	"log"

	DB "Backend-Flourish-Campus/src/database"

	"github.com/hibiken/asynq"
)

const TypeRefreshAnalytics = "analytics:refresh"

type RefreshAnalyticsPayload struct {
	UniversitySlug string `json:"university_slug"`
}

func NewRefreshAnalyticsTask(universitySlug string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshAnalyticsPayload{UniversitySlug: universitySlug})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshAnalytics, payload), nil
}

// EnqueueRefreshAnalytics เข้าคิว refresh cache ของ tenant
// TaskID ซ้ำกันถูก dedup — survey จบติดกันหลายคนได้ job เดียว
func EnqueueRefreshAnalytics(universitySlug string) {
	if DB.AsynqClient == nil {
		// ไม่มี Redis → ไม่มี cache ให้ refresh อยู่แล้ว
		return
	}

	task, err := NewRefreshAnalyticsTask(universitySlug)
	if err != nil {
		log.Println("❌ create refresh-analytics task:", err)
		return
	}

	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("refresh-analytics-"+universitySlug), asynq.MaxRetry(3)); err != nil {
		log.Println("❌ enqueue refresh-analytics task:", err)
	} else {
		log.Println("✅ Enqueued refresh-analytics task:", universitySlug)
	}
}
