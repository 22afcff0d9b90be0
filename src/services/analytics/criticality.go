package analytics

import "Backend-Flourish-Campus/src/models"

// Classify จัดระดับความเร่งด่วนจากคะแนนเฉลี่ย 0-10
// ขอบเขตเป็น half-open: คะแนน 6.5 พอดีได้ Watch ไม่ใช่ Priority
func Classify(score float64) models.Criticality {
	switch {
	case score < 5.0:
		return models.Criticality{Level: 4, Label: "Critical", Color: "#dc2626"}
	case score < 6.5:
		return models.Criticality{Level: 3, Label: "Priority", Color: "#ea580c"}
	case score < 8.0:
		return models.Criticality{Level: 2, Label: "Watch", Color: "#eab308"}
	default:
		return models.Criticality{Level: 1, Label: "Informational", Color: "#16a34a"}
	}
}
