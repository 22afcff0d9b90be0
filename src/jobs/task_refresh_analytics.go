package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Flourish-Campus/src/services/analytics"

	"github.com/hibiken/asynq"
)

func HandleRefreshAnalyticsTask(ctx context.Context, t *asynq.Task) error {
	var payload RefreshAnalyticsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	return analytics.RefreshAnalyticsCache(ctx, payload.UniversitySlug)
}
