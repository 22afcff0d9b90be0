package surveys

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "Backend-Flourish-Campus/src/database"
	"Backend-Flourish-Campus/src/jobs"
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/services/surveys/email"
	"Backend-Flourish-Campus/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrSurveyClosed = errors.New("survey is not open for this university")
var ErrSessionNotFound = errors.New("survey session not found")

// StartSession เริ่ม session ใหม่ของ respondent
// ถ้า client ส่ง sessionId เดิมมา (เช่น refresh หน้า) คืน session เดิม — idempotent
func StartSession(universitySlug, sessionID, emailForResults string) (*models.SurveySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ตรวจสอบว่า university เปิดรับ survey อยู่
	var uni models.University
	err := DB.UniversityCollection.FindOne(ctx, bson.M{"slug": universitySlug}).Decode(&uni)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSurveyClosed
		}
		return nil, fmt.Errorf("failed to find university: %w", err)
	}
	if !uni.IsActive || !uni.SurveyActive {
		return nil, ErrSurveyClosed
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// check-then-write: ถ้ามี session นี้อยู่แล้วคืนของเดิม
	var existing models.SurveySession
	err = DB.SessionCollection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check existing session: %w", err)
	}

	session := models.SurveySession{
		ID:              primitive.NewObjectID(),
		SessionID:       sessionID,
		UniversitySlug:  universitySlug,
		StartTime:       time.Now(),
		IsCompleted:     false,
		EmailForResults: emailForResults,
	}
	if _, err := DB.SessionCollection.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("✅ Survey session started: %s (%s)", sessionID, universitySlug)
	return &session, nil
}

// getSession ดึง session ตาม sessionId
func getSession(ctx context.Context, sessionID string) (*models.SurveySession, error) {
	var session models.SurveySession
	err := DB.SessionCollection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

// upsertBySession เขียน record ของ section หนึ่งแบบ check-then-write (ไม่ atomic)
// ซ้ำกันได้ในกรณี race — caller ฝั่งอ่านต้อง tolerate at-least-once อยู่แล้ว
func upsertBySession(ctx context.Context, collection *mongo.Collection, filter bson.M, doc interface{}) error {
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check existing record: %w", err)
	}
	if count > 0 {
		if _, err := collection.ReplaceOne(ctx, filter, doc); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}
		return nil
	}
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// SaveDemographics บันทึก demographics ของ session (0..1 record)
func SaveDemographics(sessionID string, d *models.Demographics) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	d.ID = primitive.NewObjectID()
	d.SessionID = sessionID
	d.UniversitySlug = session.UniversitySlug
	return upsertBySession(ctx, DB.DemographicsCollection, bson.M{"sessionId": sessionID}, d)
}

// SaveFlourishing บันทึกคะแนน flourishing ของ session
func SaveFlourishing(sessionID string, f *models.FlourishingScore) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	f.ID = primitive.NewObjectID()
	f.SessionID = sessionID
	f.UniversitySlug = session.UniversitySlug
	return upsertBySession(ctx, DB.FlourishingCollection, bson.M{"sessionId": sessionID}, f)
}

// SaveSchoolWellbeing บันทึก school wellbeing — shape ต้องตรงกับ version ที่ tag มา
func SaveSchoolWellbeing(sessionID string, w *models.SchoolWellbeing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch w.Version {
	case models.WellbeingV1:
		if w.V1 == nil || w.V2 != nil {
			return errors.New("v1 wellbeing record must carry v1 fields only")
		}
	case models.WellbeingV2:
		if w.V2 == nil || w.V1 != nil {
			return errors.New("v2 wellbeing record must carry v2 statements only")
		}
		for stmt := range w.V2.Statements {
			if !validStatementKeys[stmt] {
				return fmt.Errorf("unknown barrier statement: %s", stmt)
			}
		}
	default:
		return fmt.Errorf("unknown wellbeing version: %q", w.Version)
	}

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	w.ID = primitive.NewObjectID()
	w.SessionID = sessionID
	w.UniversitySlug = session.UniversitySlug
	return upsertBySession(ctx, DB.SchoolWellbeingCollection, bson.M{"sessionId": sessionID}, w)
}

// SaveTextResponse บันทึกคำตอบ fastest-win
func SaveTextResponse(sessionID string, t *models.TextResponse) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	t.ID = primitive.NewObjectID()
	t.SessionID = sessionID
	t.UniversitySlug = session.UniversitySlug
	return upsertBySession(ctx, DB.TextResponseCollection, bson.M{"sessionId": sessionID}, t)
}

// SaveTensions บันทึกค่า tension sliders
func SaveTensions(sessionID string, t *models.TensionAssessment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	t.ID = primitive.NewObjectID()
	t.SessionID = sessionID
	t.UniversitySlug = session.UniversitySlug
	return upsertBySession(ctx, DB.TensionCollection, bson.M{"sessionId": sessionID}, t)
}

// SaveEnablerBarrier บันทึก selection ของ domain หนึ่ง — key คือ session+domain
func SaveEnablerBarrier(sessionID string, sel *models.EnablerBarrierSelection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if !validDomainKeys[sel.DomainKey] {
		return fmt.Errorf("unknown flourishing domain: %s", sel.DomainKey)
	}

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	sel.ID = primitive.NewObjectID()
	sel.SessionID = sessionID
	sel.UniversitySlug = session.UniversitySlug
	filter := bson.M{"sessionId": sessionID, "domainKey": sel.DomainKey}
	return upsertBySession(ctx, DB.EnablerBarrierCollection, filter, sel)
}

// CompleteSession ปิด session — ตั้ง completionTime ครั้งเดียว (เรียกซ้ำไม่ทำอะไร)
// หลังปิดจะเข้าคิวส่งอีเมลผลลัพธ์ (ถ้าขอไว้) และ refresh analytics cache ของ tenant
func CompleteSession(sessionID, emailForResults string) (*models.SurveySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return session, nil // ปิดไปแล้ว — idempotent
	}

	if emailForResults != "" {
		session.EmailForResults = emailForResults
	}
	now := time.Now()
	session.CompletionTime = &now
	session.IsCompleted = true

	update := bson.M{"$set": bson.M{
		"isCompleted":     true,
		"completionTime":  now,
		"emailForResults": session.EmailForResults,
	}}
	if _, err := DB.SessionCollection.UpdateOne(ctx, bson.M{"sessionId": sessionID}, update); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	log.Printf("✅ Survey session completed: %s (%s)", sessionID, session.UniversitySlug)

	// cache ของ tenant เก่าไปแล้ว — ลบทิ้งแล้วให้ job คำนวณใหม่
	utils.InvalidateAnalytics(session.UniversitySlug)
	jobs.EnqueueRefreshAnalytics(session.UniversitySlug)

	if session.EmailForResults != "" {
		email.NotifyRespondentResults(sessionID, session.EmailForResults)
	}

	return session, nil
}
