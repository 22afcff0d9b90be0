package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Domain keys ของ flourishing ทั้ง 6 ด้าน (เรียงตามลำดับในแบบสอบถาม)
const (
	DomainHappinessSatisfaction = "happiness_satisfaction"
	DomainMentalPhysicalHealth  = "mental_physical_health"
	DomainMeaningPurpose        = "meaning_purpose"
	DomainCharacterVirtue       = "character_virtue"
	DomainSocialRelationships   = "social_relationships"
	DomainFinancialStability    = "financial_stability"
)

// FlourishingDomains ลำดับ domain ที่ใช้ทั้งใน aggregation และ dashboard
var FlourishingDomains = []string{
	DomainHappinessSatisfaction,
	DomainMentalPhysicalHealth,
	DomainMeaningPurpose,
	DomainCharacterVirtue,
	DomainSocialRelationships,
	DomainFinancialStability,
}

// FlourishingDomainLabels ชื่อ domain สำหรับแสดงผล
var FlourishingDomainLabels = map[string]string{
	DomainHappinessSatisfaction: "Happiness & Life Satisfaction",
	DomainMentalPhysicalHealth:  "Mental & Physical Health",
	DomainMeaningPurpose:        "Meaning & Purpose",
	DomainCharacterVirtue:       "Character & Virtue",
	DomainSocialRelationships:   "Social Relationships",
	DomainFinancialStability:    "Financial Stability",
}

// FlourishingScore คะแนน flourishing ของหนึ่ง session
// แต่ละ domain มี 2 คำถามย่อย คะแนน 0-10 (nil = ไม่ได้ตอบ)
type FlourishingScore struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID              string             `bson:"sessionId" json:"sessionId"`
	UniversitySlug         string             `bson:"universitySlug" json:"universitySlug"`
	HappinessSatisfaction1 *float64           `bson:"happiness_satisfaction_1" json:"happiness_satisfaction_1"`
	HappinessSatisfaction2 *float64           `bson:"happiness_satisfaction_2" json:"happiness_satisfaction_2"`
	MentalPhysicalHealth1  *float64           `bson:"mental_physical_health_1" json:"mental_physical_health_1"`
	MentalPhysicalHealth2  *float64           `bson:"mental_physical_health_2" json:"mental_physical_health_2"`
	MeaningPurpose1        *float64           `bson:"meaning_purpose_1" json:"meaning_purpose_1"`
	MeaningPurpose2        *float64           `bson:"meaning_purpose_2" json:"meaning_purpose_2"`
	CharacterVirtue1       *float64           `bson:"character_virtue_1" json:"character_virtue_1"`
	CharacterVirtue2       *float64           `bson:"character_virtue_2" json:"character_virtue_2"`
	SocialRelationships1   *float64           `bson:"social_relationships_1" json:"social_relationships_1"`
	SocialRelationships2   *float64           `bson:"social_relationships_2" json:"social_relationships_2"`
	FinancialStability1    *float64           `bson:"financial_stability_1" json:"financial_stability_1"`
	FinancialStability2    *float64           `bson:"financial_stability_2" json:"financial_stability_2"`
}

// SubScores คืนคะแนนคำถามย่อยทั้งสองข้อของ domain ที่ระบุ
func (f *FlourishingScore) SubScores(domain string) (*float64, *float64) {
	switch domain {
	case DomainHappinessSatisfaction:
		return f.HappinessSatisfaction1, f.HappinessSatisfaction2
	case DomainMentalPhysicalHealth:
		return f.MentalPhysicalHealth1, f.MentalPhysicalHealth2
	case DomainMeaningPurpose:
		return f.MeaningPurpose1, f.MeaningPurpose2
	case DomainCharacterVirtue:
		return f.CharacterVirtue1, f.CharacterVirtue2
	case DomainSocialRelationships:
		return f.SocialRelationships1, f.SocialRelationships2
	case DomainFinancialStability:
		return f.FinancialStability1, f.FinancialStability2
	}
	return nil, nil
}

// DomainAverage ค่าเฉลี่ยของ domain — ต้องมีคำถามย่อยครบทั้งสองข้อเท่านั้น
// ขาดข้อใดข้อหนึ่ง = ไม่มีค่าเฉลี่ย (ไม่ fallback ไปใช้ค่าเดียวที่มี)
func (f *FlourishingScore) DomainAverage(domain string) (float64, bool) {
	q1, q2 := f.SubScores(domain)
	if q1 == nil || q2 == nil {
		return 0, false
	}
	return (*q1 + *q2) / 2, true
}
