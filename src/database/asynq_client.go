package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient client สำหรับเข้าคิว background job (analytics refresh, results email)
// nil เมื่อไม่มี Redis — ฝั่ง enqueue ต้องเช็คก่อนใช้เสมอ
var AsynqClient *asynq.Client

// InitAsynq สร้าง asynq client ต่อจาก InitRedis — ถ้า Redis ไม่พร้อมก็ข้าม
// (ไม่มีคิว = refresh cache ไม่มีอะไรให้ทำ ส่วนอีเมลจะ fallback เป็น sync)
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Job queue disabled.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client ready")
}
