package analytics

import (
	"sort"

	"Backend-Flourish-Campus/src/models"
)

// computeActionPathway จัดอันดับ domain ตามความเร่งด่วน
// domain ที่ไม่มีคำตอบครบคู่เลยถูกตัดออกทั้งหมด (ไม่ใช่แสดงเป็นศูนย์)
// เรียง: criticality level มาก→น้อย แล้วคะแนนเฉลี่ยน้อย→มากในระดับเดียวกัน
func computeActionPathway(
	domainAverages map[string]float64,
	selections []models.EnablerBarrierSelection,
	totalResponses int,
) models.ActionPathway {

	// ความถี่ enabler/barrier แยกราย domain สำหรับหา top ของแต่ละ domain
	enablersByDomain := map[string]map[string]int{}
	barriersByDomain := map[string]map[string]int{}
	for _, sel := range selections {
		if enablersByDomain[sel.DomainKey] == nil {
			enablersByDomain[sel.DomainKey] = map[string]int{}
			barriersByDomain[sel.DomainKey] = map[string]int{}
		}
		for _, e := range sel.Enablers {
			enablersByDomain[sel.DomainKey][e]++
		}
		for _, b := range sel.Barriers {
			barriersByDomain[sel.DomainKey][b]++
		}
	}

	domains := make([]models.PathwayDomain, 0, len(models.FlourishingDomains))
	for _, domain := range models.FlourishingDomains {
		avg, ok := domainAverages[domain]
		if !ok {
			continue
		}
		domains = append(domains, models.PathwayDomain{
			DomainKey:    domain,
			Label:        models.FlourishingDomainLabels[domain],
			AverageScore: avg,
			Criticality:  Classify(avg),
			TopEnabler:   mostFrequent(enablersByDomain[domain]),
			TopBarrier:   mostFrequent(barriersByDomain[domain]),
		})
	}

	sort.Slice(domains, func(i, j int) bool {
		if domains[i].Criticality.Level != domains[j].Criticality.Level {
			return domains[i].Criticality.Level > domains[j].Criticality.Level
		}
		return domains[i].AverageScore < domains[j].AverageScore
	})

	return models.ActionPathway{Domains: domains, TotalResponses: totalResponses}
}

// mostFrequent label ที่ถูกเลือกบ่อยสุด — เสมอกันให้ตัวอักษรน้อยกว่าชนะ
func mostFrequent(counts map[string]int) string {
	best := ""
	bestCount := 0
	for label, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || label < best)) {
			best = label
			bestCount = count
		}
	}
	return best
}
