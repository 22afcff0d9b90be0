package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveySession การตอบแบบสอบถามหนึ่งครั้ง (หนึ่ง respondent)
// SessionID เป็น opaque id ที่ client สร้าง (หรือ server สร้างให้ถ้าไม่ส่งมา)
type SurveySession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID       string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug  string             `bson:"universitySlug" json:"universitySlug"`
	StartTime       time.Time          `bson:"startTime" json:"startTime"`
	CompletionTime  *time.Time         `bson:"completionTime,omitempty" json:"completionTime,omitempty"`
	IsCompleted     bool               `bson:"isCompleted" json:"isCompleted"`
	EmailForResults string             `bson:"emailForResults,omitempty" json:"emailForResults,omitempty"`
}
