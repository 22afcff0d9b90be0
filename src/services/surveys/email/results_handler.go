package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/services/analytics"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterEmailHandlers ลงทะเบียน handler ทั้งหมดของ package email
func RegisterEmailHandlers(mux *asynq.ServeMux) error {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		return err // ถ้า SMTP env ยังไม่ครบ จะ fail ตอน start worker
	}

	mux.HandleFunc(TypeSurveyResults, HandleSurveyResults(sender))
	return nil
}

// HandleSurveyResults ส่งสรุปผล flourishing รายด้านให้ respondent ที่ขอไว้
func HandleSurveyResults(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SurveyResultsPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		var score models.FlourishingScore
		err := DB.FlourishingCollection.FindOne(ctx, bson.M{"sessionId": p.SessionID}).Decode(&score)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				// ไม่ได้ตอบ section flourishing เลย — ไม่มีอะไรให้สรุป ไม่ถือว่า error
				log.Printf("results: no flourishing scores for session %s, skipping", p.SessionID)
				return nil
			}
			return fmt.Errorf("failed to load flourishing scores: %w", err)
		}

		rows := make([]ResultRow, 0, len(models.FlourishingDomains))
		for _, domain := range models.FlourishingDomains {
			avg, ok := score.DomainAverage(domain)
			if !ok {
				continue // ตอบไม่ครบคู่ = ไม่มีคะแนนด้านนี้
			}
			crit := analytics.Classify(avg)
			rows = append(rows, ResultRow{
				Domain: models.FlourishingDomainLabels[domain],
				Score:  avg,
				Label:  crit.Label,
				Color:  crit.Color,
			})
		}
		if len(rows) == 0 {
			log.Printf("results: no complete domains for session %s, skipping", p.SessionID)
			return nil
		}

		html, err := RenderResultsEmailHTML(ResultsEmailData{Rows: rows})
		if err != nil {
			return fmt.Errorf("failed to render results email: %w", err)
		}

		if err := sender.Send(p.To, "Your Well-being Survey Results", html); err != nil {
			return fmt.Errorf("failed to send results email: %w", err)
		}

		log.Printf("✅ Results email sent for session %s", p.SessionID)
		return nil
	}
}

// NotifyRespondentResults เข้าคิวส่งอีเมลผลลัพธ์ ถ้าไม่มี Redis ส่งทันที (sync)
func NotifyRespondentResults(sessionID, to string) {
	// ถ้ามี Redis → เข้าคิว
	if DB.AsynqClient != nil {
		task, _ := NewSurveyResultsTask(sessionID, to)
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("survey-results-"+sessionID), asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue survey-results task:", err)
		} else {
			log.Println("✅ Enqueued survey-results task:", sessionID)
		}
		return
	}

	// ไม่มี Redis → ส่งทันที
	log.Println("⚠️ Redis not available → sending results email synchronously")
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return
	}

	handler := HandleSurveyResults(sender)
	task, _ := NewSurveyResultsTask(sessionID, to)
	if err := handler(context.Background(), task); err != nil {
		log.Printf("❌ send results email: %v", err)
	}
}
