package jobs

import (
	"log"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/services/surveys/email"

	"github.com/hibiken/asynq"
)

// StartWorker รัน asynq worker คู่กับ API server (goroutine แยก)
// ถ้าไม่มี Redis จะข้ามไปเลย — task ที่เข้าคิวไม่ได้จะ fallback เป็น sync ที่ฝั่ง enqueue
func StartWorker() {
	if DB.RedisClient == nil || DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 10},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRefreshAnalytics, HandleRefreshAnalyticsTask)

	if err := email.RegisterEmailHandlers(mux); err != nil {
		// SMTP env ไม่ครบ — worker ยังรันได้ แค่ไม่มี handler ส่งเมล
		log.Println("⚠️ Email handlers not registered:", err)
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}
