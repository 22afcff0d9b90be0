package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Version ของ school wellbeing record — v1 กับ v2 ห้ามเอามาเฉลี่ยรวมกันเด็ดขาด
const (
	WellbeingV1 = "v1"
	WellbeingV2 = "v2"
)

// WellbeingV1Fields ลำดับ field ของ v1 ทั้ง 11 ข้อ (0-10)
var WellbeingV1Fields = []string{
	"feel_safe",
	"manage_emotions",
	"sense_of_belonging",
	"supportive_friends",
	"ask_for_help",
	"academic_balance",
	"sleep_quality",
	"physical_activity",
	"financial_confidence",
	"campus_resources",
	"optimism_future",
}

// SchoolWellbeingV1 แบบเดิม: 11 คะแนน 0-10 + checklist อิสระ
type SchoolWellbeingV1 struct {
	FeelSafe            *float64 `bson:"feel_safe" json:"feel_safe"`
	ManageEmotions      *float64 `bson:"manage_emotions" json:"manage_emotions"`
	SenseOfBelonging    *float64 `bson:"sense_of_belonging" json:"sense_of_belonging"`
	SupportiveFriends   *float64 `bson:"supportive_friends" json:"supportive_friends"`
	AskForHelp          *float64 `bson:"ask_for_help" json:"ask_for_help"`
	AcademicBalance     *float64 `bson:"academic_balance" json:"academic_balance"`
	SleepQuality        *float64 `bson:"sleep_quality" json:"sleep_quality"`
	PhysicalActivity    *float64 `bson:"physical_activity" json:"physical_activity"`
	FinancialConfidence *float64 `bson:"financial_confidence" json:"financial_confidence"`
	CampusResources     *float64 `bson:"campus_resources" json:"campus_resources"`
	OptimismFuture      *float64 `bson:"optimism_future" json:"optimism_future"`
	Checklist           []string `bson:"checklist,omitempty" json:"checklist,omitempty"`
}

// Field คืนคะแนนของ field v1 ตามชื่อ
func (w *SchoolWellbeingV1) Field(name string) *float64 {
	switch name {
	case "feel_safe":
		return w.FeelSafe
	case "manage_emotions":
		return w.ManageEmotions
	case "sense_of_belonging":
		return w.SenseOfBelonging
	case "supportive_friends":
		return w.SupportiveFriends
	case "ask_for_help":
		return w.AskForHelp
	case "academic_balance":
		return w.AcademicBalance
	case "sleep_quality":
		return w.SleepQuality
	case "physical_activity":
		return w.PhysicalActivity
	case "financial_confidence":
		return w.FinancialConfidence
	case "campus_resources":
		return w.CampusResources
	case "optimism_future":
		return w.OptimismFuture
	}
	return nil
}

// SchoolWellbeingV2 แบบใหม่: barrier statement 15 ข้อเป็น tri-state
// nil = ไม่ได้ถาม, false = ถามแล้วไม่เลือก, true = เลือกว่าเป็น barrier
// การแยก nil ออกจาก false สำคัญมากตอนรวมคะแนนข้าม session
type SchoolWellbeingV2 struct {
	Statements map[string]*bool `bson:"statements" json:"statements"` // statement_1 .. statement_15
}

// SchoolWellbeing record หนึ่งต่อ session — shape แยกตาม Version (v1 หรือ v2 อย่างใดอย่างหนึ่ง)
type SchoolWellbeing struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID      string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug string             `bson:"universitySlug" json:"universitySlug"`
	Version        string             `bson:"version" json:"version"`
	V1             *SchoolWellbeingV1 `bson:"v1,omitempty" json:"v1,omitempty"`
	V2             *SchoolWellbeingV2 `bson:"v2,omitempty" json:"v2,omitempty"`
}
