package analytics

import (
	"math"

	"Backend-Flourish-Campus/src/models"
)

// tensionMapping การจับคู่แบบตายตัวระหว่าง tension slider กับ domain/field ที่วัด support จริง
type tensionMapping struct {
	domains         []string
	wellbeingFields []string
}

var tensionMappings = map[string]tensionMapping{
	models.TensionPerformanceWellbeing: {
		domains:         []string{models.DomainHappinessSatisfaction, models.DomainMentalPhysicalHealth},
		wellbeingFields: []string{"manage_emotions", "feel_safe"},
	},
	models.TensionIndependenceSupport: {
		domains:         []string{models.DomainSocialRelationships},
		wellbeingFields: []string{"ask_for_help", "campus_resources"},
	},
	models.TensionAuthenticityBelonging: {
		domains:         []string{models.DomainCharacterVirtue, models.DomainSocialRelationships},
		wellbeingFields: []string{"sense_of_belonging", "supportive_friends"},
	},
	models.TensionChallengeSecurity: {
		domains:         []string{models.DomainMeaningPurpose},
		wellbeingFields: []string{"academic_balance", "optimism_future"},
	},
	models.TensionAmbitionBalance: {
		domains:         []string{models.DomainFinancialStability, models.DomainMeaningPurpose},
		wellbeingFields: []string{"sleep_quality", "physical_activity", "financial_confidence"},
	},
}

// significantGapThreshold gap (normalized) ที่ถือว่ามีนัยสำคัญ
const significantGapThreshold = 0.2

// computeTensionGaps วิเคราะห์ช่องว่างระหว่าง tension ที่รายงานเอง กับ support ที่วัดได้จริง
// ต่อ session ที่มีค่า tension ของคู่นั้น:
//
//	enabler score = enablerRatio×5 − barrierRatio×4 + 5 (clamp 1..10)
//	fallback เป็นค่าเฉลี่ย flourishing+wellbeing เมื่อไม่มี selection row ของ domain ที่ map ไว้
//	gap = |tension−50|/50 − (score−1)/9
func computeTensionGaps(
	tensions []models.TensionAssessment,
	flourishing []models.FlourishingScore,
	wellbeing []models.SchoolWellbeing,
	selections []models.EnablerBarrierSelection,
) []models.TensionGap {

	flourishingBySession := make(map[string]*models.FlourishingScore, len(flourishing))
	for i := range flourishing {
		flourishingBySession[flourishing[i].SessionID] = &flourishing[i]
	}
	wellbeingBySession := make(map[string]*models.SchoolWellbeing, len(wellbeing))
	for i := range wellbeing {
		wellbeingBySession[wellbeing[i].SessionID] = &wellbeing[i]
	}
	selectionsBySession := make(map[string][]models.EnablerBarrierSelection)
	for _, sel := range selections {
		selectionsBySession[sel.SessionID] = append(selectionsBySession[sel.SessionID], sel)
	}

	results := make([]models.TensionGap, 0, len(models.TensionKeys))
	for _, key := range models.TensionKeys {
		mapping := tensionMappings[key]

		gapSum := 0.0
		significant := 0
		n := 0

		for i := range tensions {
			t := &tensions[i]
			value := t.Value(key)
			if value == nil {
				continue
			}

			score, ok := enablerScore(t.SessionID, mapping, flourishingBySession, wellbeingBySession, selectionsBySession)
			if !ok {
				continue // ไม่มีข้อมูล support เลย — วัด gap ไม่ได้
			}

			normTension := math.Abs(float64(*value)-50) / 50 // 0 = สมดุล, 1 = สุดขั้ว
			normEnabler := (score - 1) / 9                   // 1..10 -> 0..1
			gap := normTension - normEnabler

			gapSum += gap
			if gap > significantGapThreshold {
				significant++
			}
			n++
		}

		result := models.TensionGap{TensionKey: key, SessionCount: n}
		if n > 0 {
			result.AvgGap = math.Round(gapSum/float64(n)*100) / 100
			result.GapPercentage = roundInt(float64(significant) / float64(n) * 100)
		}
		results = append(results, result)
	}
	return results
}

// enablerScore คะแนน support 1-10 ของ session สำหรับ tension คู่หนึ่ง
// ใช้ selection rows ของ domain ที่ map ไว้ก่อน ถ้าไม่มีค่อย fallback เป็นคะแนน flourishing+wellbeing
func enablerScore(
	sessionID string,
	mapping tensionMapping,
	flourishingBySession map[string]*models.FlourishingScore,
	wellbeingBySession map[string]*models.SchoolWellbeing,
	selectionsBySession map[string][]models.EnablerBarrierSelection,
) (float64, bool) {

	enablers, barriers := 0, 0
	for _, sel := range selectionsBySession[sessionID] {
		for _, domain := range mapping.domains {
			if sel.DomainKey == domain {
				enablers += len(sel.Enablers)
				barriers += len(sel.Barriers)
			}
		}
	}

	if total := enablers + barriers; total > 0 {
		enablerRatio := float64(enablers) / float64(total)
		barrierRatio := float64(barriers) / float64(total)
		score := enablerRatio*5 - barrierRatio*4 + 5
		if score < 1 {
			score = 1
		}
		if score > 10 {
			score = 10
		}
		return score, true
	}

	// fallback: ค่าเฉลี่ยของคะแนน flourishing (ครบคู่) และ wellbeing v1 ของ field ที่ map ไว้
	sum, n := 0.0, 0
	if f := flourishingBySession[sessionID]; f != nil {
		for _, domain := range mapping.domains {
			if avg, ok := f.DomainAverage(domain); ok {
				sum += avg
				n++
			}
		}
	}
	if w := wellbeingBySession[sessionID]; w != nil && w.Version == models.WellbeingV1 && w.V1 != nil {
		for _, field := range mapping.wellbeingFields {
			if v := w.V1.Field(field); v != nil {
				sum += *v
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}

	score := sum / float64(n)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score, true
}
