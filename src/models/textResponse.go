package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TextResponse คำตอบ free-text "fastest win" ของหนึ่ง session
type TextResponse struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID      string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug string             `bson:"universitySlug" json:"universitySlug"`
	FastestWin     string             `bson:"fastestWin" json:"fastestWin"`
}
