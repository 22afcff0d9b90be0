package analytics

import (
	"math"
	"sort"
	"strings"

	"Backend-Flourish-Campus/src/models"
)

// จำนวน suggestion สูงสุดที่ส่งให้ dashboard แสดง
const maxSuggestions = 50

// จำนวน enabler/barrier อันดับสูงสุดที่ rank
const topN = 10

// AnalyticsData row sets ทั้งหมดของ tenant หนึ่ง ดึงจาก Mongo แล้วค่อยส่งเข้ามา
// แยกออกจากการ fetch เพื่อให้การคำนวณทั้งหมดเป็น pure function ทดสอบได้โดยไม่ต้องมี DB
type AnalyticsData struct {
	Sessions      []models.SurveySession
	Demographics  []models.Demographics
	Flourishing   []models.FlourishingScore
	Wellbeing     []models.SchoolWellbeing
	TextResponses []models.TextResponse
	Tensions      []models.TensionAssessment
	Selections    []models.EnablerBarrierSelection
}

// BuildAnalytics รวม row sets เป็น analytics object เดียวสำหรับ dashboard
// ข้อมูลที่ขาด (record ไม่มี, คะแนน null, array ว่าง) ให้ผลว่าง/ศูนย์/nil เสมอ ไม่ error
func BuildAnalytics(data AnalyticsData) models.SurveyAnalytics {
	total := len(data.Sessions)
	completed := 0
	completedIDs := make(map[string]bool)
	for _, s := range data.Sessions {
		if s.IsCompleted {
			completed++
			completedIDs[s.SessionID] = true
		}
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = round1(float64(completed) / float64(total) * 100)
	}

	// join ในแอป: metric ทุกตัวคิดเฉพาะ row ของ session ที่ตอบจบแล้ว
	// save path เป็น check-then-write (at-least-once) — row ซ้ำต่อ session เกิดได้
	// ฝั่งอ่านจึงต้องเก็บ row แรกต่อ key เดียว ไม่งั้น session โดนนับสองครั้ง
	flourishing := filterFlourishing(data.Flourishing, completedIDs)
	wellbeing := filterWellbeing(data.Wellbeing, completedIDs)
	demographics := filterDemographics(data.Demographics, completedIDs)
	texts := filterTexts(data.TextResponses, completedIDs)
	tensions := filterTensions(data.Tensions, completedIDs)
	selections := filterSelections(data.Selections, completedIDs)

	domainAverages := computeDomainAverages(flourishing)
	driverScores, growthIndex := computeDriverScores(wellbeing)

	return models.SurveyAnalytics{
		TotalResponses:            completed,
		CompletionRate:            completionRate,
		OverallFlourishingScore:   computeOverallFlourishing(flourishing),
		StudentsAtRiskPercent:     computeAtRiskPercent(flourishing, completed),
		FlourishingDomainAverages: domainAverages,
		SchoolWellbeingAverages:   computeWellbeingAverages(wellbeing),
		DemographicBreakdown:      computeDemographicBreakdown(demographics),
		InterventionAnalysis:      computeInterventions(selections),
		FastestWinSuggestions:     collectSuggestions(texts),
		TensionGapAnalysis:        computeTensionGaps(tensions, flourishing, wellbeing, selections),
		ActionPathway:             computeActionPathway(domainAverages, selections, completed),
		GrowthIndexScore:          growthIndex,
		DriverScores:              driverScores,
	}
}

// computeDomainAverages ค่าเฉลี่ยรายด้านทั้ง tenant
// session จะ contribute ให้ domain ก็ต่อเมื่อตอบครบทั้งสองคำถามย่อย (strict AND)
// domain ที่ไม่มี session ไหนตอบครบคู่ = ไม่มี key ใน map
func computeDomainAverages(scores []models.FlourishingScore) map[string]float64 {
	averages := make(map[string]float64)
	for _, domain := range models.FlourishingDomains {
		sum, n := 0.0, 0
		for i := range scores {
			if avg, ok := scores[i].DomainAverage(domain); ok {
				sum += avg
				n++
			}
		}
		if n > 0 {
			averages[domain] = round1(sum / float64(n))
		}
	}
	return averages
}

// computeOverallFlourishing composite ต่อ session (เฉลี่ย domain ที่มีข้อมูลครบคู่)
// แล้วเฉลี่ยข้าม session ที่มีอย่างน้อยหนึ่ง domain — session/domain ที่ไม่มีข้อมูลถูกตัดทิ้ง ไม่ใช่นับเป็นศูนย์
func computeOverallFlourishing(scores []models.FlourishingScore) *float64 {
	sum, n := 0.0, 0
	for i := range scores {
		domainSum, domains := 0.0, 0
		for _, domain := range models.FlourishingDomains {
			if avg, ok := scores[i].DomainAverage(domain); ok {
				domainSum += avg
				domains++
			}
		}
		if domains > 0 {
			sum += domainSum / float64(domains)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	overall := round1(sum / float64(n))
	return &overall
}

// computeAtRiskPercent session ถือว่า at-risk เมื่อมีคำถามย่อยข้อใดก็ตาม < 6
func computeAtRiskPercent(scores []models.FlourishingScore, completed int) int {
	if completed == 0 {
		return 0
	}
	atRisk := 0
	for i := range scores {
		if isAtRisk(&scores[i]) {
			atRisk++
		}
	}
	return roundInt(float64(atRisk) / float64(completed) * 100)
}

func isAtRisk(score *models.FlourishingScore) bool {
	for _, domain := range models.FlourishingDomains {
		q1, q2 := score.SubScores(domain)
		if (q1 != nil && *q1 < 6) || (q2 != nil && *q2 < 6) {
			return true
		}
	}
	return false
}

// computeWellbeingAverages ค่าเฉลี่ยรายข้อของ v1 เท่านั้น (ห้ามปน v2)
func computeWellbeingAverages(wellbeing []models.SchoolWellbeing) map[string]float64 {
	averages := make(map[string]float64)
	for _, field := range models.WellbeingV1Fields {
		sum, n := 0.0, 0
		for i := range wellbeing {
			w := &wellbeing[i]
			if w.Version != models.WellbeingV1 || w.V1 == nil {
				continue
			}
			if v := w.V1.Field(field); v != nil {
				sum += *v
				n++
			}
		}
		if n > 0 {
			averages[field] = round1(sum / float64(n))
		}
	}
	return averages
}

// computeDemographicBreakdown นับจำนวนต่อ category
// raceEthnicity เลือกได้หลายค่า — แต่ละค่าที่เลือกนับแยกกัน
func computeDemographicBreakdown(demographics []models.Demographics) map[string]map[string]int {
	breakdown := map[string]map[string]int{
		"yearInSchool":     {},
		"genderIdentity":   {},
		"employmentStatus": {},
		"raceEthnicity":    {},
	}
	for _, d := range demographics {
		if d.YearInSchool != "" {
			breakdown["yearInSchool"][d.YearInSchool]++
		}
		if d.GenderIdentity != "" {
			breakdown["genderIdentity"][d.GenderIdentity]++
		}
		if d.EmploymentStatus != "" {
			breakdown["employmentStatus"][d.EmploymentStatus]++
		}
		for _, race := range d.RaceEthnicity {
			if race != "" {
				breakdown["raceEthnicity"][race]++
			}
		}
	}
	return breakdown
}

// computeInterventions ความถี่ enabler/barrier ทั้ง tenant + ค่าเฉลี่ยต่อ row ราย domain
// เปอร์เซ็นต์คิดจากจำนวน selection rows ไม่ใช่จำนวน session
func computeInterventions(selections []models.EnablerBarrierSelection) models.InterventionAnalysis {
	enablerCounts := map[string]int{}
	barrierCounts := map[string]int{}
	domainStats := map[string]models.DomainSelectionStats{}

	totalRows := len(selections)
	enablerSums := map[string]int{}
	barrierSums := map[string]int{}
	rowCounts := map[string]int{}

	for _, sel := range selections {
		for _, e := range sel.Enablers {
			enablerCounts[e]++
		}
		for _, b := range sel.Barriers {
			barrierCounts[b]++
		}
		enablerSums[sel.DomainKey] += len(sel.Enablers)
		barrierSums[sel.DomainKey] += len(sel.Barriers)
		rowCounts[sel.DomainKey]++
	}

	for domain, rows := range rowCounts {
		domainStats[domain] = models.DomainSelectionStats{
			ResponseCount: rows,
			AvgEnablers:   round1(float64(enablerSums[domain]) / float64(rows)),
			AvgBarriers:   round1(float64(barrierSums[domain]) / float64(rows)),
		}
	}

	return models.InterventionAnalysis{
		TopEnablers:    rankTop(enablerCounts, totalRows, topN),
		TopBarriers:    rankTop(barrierCounts, totalRows, topN),
		DomainAnalysis: domainStats,
	}
}

// rankTop เรียงตามความถี่มาก→น้อย ถ้าเท่ากันเรียงตามตัวอักษร
func rankTop(counts map[string]int, totalRows, limit int) []models.RankedItem {
	items := make([]models.RankedItem, 0, len(counts))
	for label, count := range counts {
		pct := 0
		if totalRows > 0 {
			pct = roundInt(float64(count) / float64(totalRows) * 100)
		}
		items = append(items, models.RankedItem{Label: label, Count: count, Percentage: pct})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// collectSuggestions เก็บ free-text ที่ไม่ว่าง ส่งตรงๆ ไม่ dedup ไม่ตีความ
func collectSuggestions(texts []models.TextResponse) []string {
	suggestions := make([]string, 0, len(texts))
	for _, t := range texts {
		if s := strings.TrimSpace(t.FastestWin); s != "" {
			suggestions = append(suggestions, s)
		}
		if len(suggestions) >= maxSuggestions {
			break
		}
	}
	return suggestions
}

// filter* ตัด row ของ session ที่ยังไม่จบ และเก็บแค่ row แรกต่อ session
// (ตารางพวกนี้เป็น 0..1 ต่อ session — row ซ้ำจาก write race ต้องไม่ถูกนับเพิ่ม)

func filterFlourishing(rows []models.FlourishingScore, ids map[string]bool) []models.FlourishingScore {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if ids[r.SessionID] && !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r)
		}
	}
	return out
}

func filterWellbeing(rows []models.SchoolWellbeing, ids map[string]bool) []models.SchoolWellbeing {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if ids[r.SessionID] && !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r)
		}
	}
	return out
}

func filterDemographics(rows []models.Demographics, ids map[string]bool) []models.Demographics {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if ids[r.SessionID] && !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r)
		}
	}
	return out
}

func filterTexts(rows []models.TextResponse, ids map[string]bool) []models.TextResponse {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if ids[r.SessionID] && !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r)
		}
	}
	return out
}

func filterTensions(rows []models.TensionAssessment, ids map[string]bool) []models.TensionAssessment {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if ids[r.SessionID] && !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r)
		}
	}
	return out
}

// selections มี key เป็น session+domain — dedupe ตามคู่นั้น ไม่ใช่ตาม session
func filterSelections(rows []models.EnablerBarrierSelection, ids map[string]bool) []models.EnablerBarrierSelection {
	out := rows[:0:0]
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		key := r.SessionID + "\x00" + r.DomainKey
		if ids[r.SessionID] && !seen[key] {
			seen[key] = true
			out = append(out, r)
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
