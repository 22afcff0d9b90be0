package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// EnablerBarrierSelection สิ่งที่ respondent เลือกว่าช่วย/ขัดขวางใน domain หนึ่ง
// หนึ่ง session มีได้หลาย row (row ละ domain) — เปอร์เซ็นต์ความถี่คิดจากจำนวน row ไม่ใช่จำนวน session
type EnablerBarrierSelection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID      string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug string             `bson:"universitySlug" json:"universitySlug"`
	DomainKey      string             `bson:"domainKey" json:"domainKey"`
	Enablers       []string           `bson:"enablers" json:"enablers"`
	Barriers       []string           `bson:"barriers" json:"barriers"`
	EnablerOther   string             `bson:"enablerOther,omitempty" json:"enablerOther,omitempty"`
	BarrierOther   string             `bson:"barrierOther,omitempty" json:"barrierOther,omitempty"`
}
