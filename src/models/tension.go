package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tension keys ทั้ง 5 คู่ (bipolar slider 0-100, 50 = สมดุล)
const (
	TensionPerformanceWellbeing  = "performance_wellbeing"
	TensionIndependenceSupport   = "independence_support"
	TensionAuthenticityBelonging = "authenticity_belonging"
	TensionChallengeSecurity     = "challenge_security"
	TensionAmbitionBalance       = "ambition_balance"
)

// TensionKeys ลำดับ tension ที่ใช้ใน gap analysis
var TensionKeys = []string{
	TensionPerformanceWellbeing,
	TensionIndependenceSupport,
	TensionAuthenticityBelonging,
	TensionChallengeSecurity,
	TensionAmbitionBalance,
}

// TensionAssessment ค่า slider ทั้ง 5 ของหนึ่ง session (nil = ไม่ได้ตอบ)
type TensionAssessment struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID             string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug        string             `bson:"universitySlug" json:"universitySlug"`
	PerformanceWellbeing  *int               `bson:"performance_wellbeing" json:"performance_wellbeing"`
	IndependenceSupport   *int               `bson:"independence_support" json:"independence_support"`
	AuthenticityBelonging *int               `bson:"authenticity_belonging" json:"authenticity_belonging"`
	ChallengeSecurity     *int               `bson:"challenge_security" json:"challenge_security"`
	AmbitionBalance       *int               `bson:"ambition_balance" json:"ambition_balance"`
}

// Value คืนค่า slider ตาม tension key
func (t *TensionAssessment) Value(key string) *int {
	switch key {
	case TensionPerformanceWellbeing:
		return t.PerformanceWellbeing
	case TensionIndependenceSupport:
		return t.IndependenceSupport
	case TensionAuthenticityBelonging:
		return t.AuthenticityBelonging
	case TensionChallengeSecurity:
		return t.ChallengeSecurity
	case TensionAmbitionBalance:
		return t.AmbitionBalance
	}
	return nil
}
