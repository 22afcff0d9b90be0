package analytics

import "Backend-Flourish-Campus/src/models"

// Driver keys ของ school-support ทั้ง 5 หมวด (v2)
const (
	DriverAccess     = "access"
	DriverGuidance   = "guidance"
	DriverConnection = "connection"
	DriverTrust      = "trust"
	DriverCare       = "care"
)

// DriverKeys ลำดับ driver ที่ใช้คำนวณ Growth Index
var DriverKeys = []string{DriverAccess, DriverGuidance, DriverConnection, DriverTrust, DriverCare}

// driverStatements การ map แบบตายตัว: driver ละ 3 barrier statements
var driverStatements = map[string][]string{
	DriverAccess:     {"statement_1", "statement_2", "statement_3"},
	DriverGuidance:   {"statement_4", "statement_5", "statement_6"},
	DriverConnection: {"statement_7", "statement_8", "statement_9"},
	DriverTrust:      {"statement_10", "statement_11", "statement_12"},
	DriverCare:       {"statement_13", "statement_14", "statement_15"},
}

// ScoreForDriver คะแนน driver ของหนึ่ง session จาก barrier flags
// นับเฉพาะ flag ที่เป็น true (nil และ false = ไม่ได้เลือก) แล้วหักข้อละ 2.5 จาก 10
func ScoreForDriver(flags map[string]*bool, driver string) float64 {
	count := 0
	for _, stmt := range driverStatements[driver] {
		if v, ok := flags[stmt]; ok && v != nil && *v {
			count++
		}
	}
	score := 10 - 2.5*float64(count)
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// CompositeScore ค่าเฉลี่ยของ driver ทั้ง 5 ของหนึ่ง session (ทศนิยม 1 ตำแหน่ง)
// ระดับ session ถือว่า flag ที่หายไป = false — การแยก "ไม่ได้ถาม" ทำที่ระดับ aggregate
func CompositeScore(flags map[string]*bool) float64 {
	sum := 0.0
	for _, driver := range DriverKeys {
		sum += ScoreForDriver(flags, driver)
	}
	return round1(sum / float64(len(DriverKeys)))
}

// driverHasData ตรวจว่า session นี้มีข้อมูลของ driver หรือไม่
// (มี statement อย่างน้อยหนึ่งข้อที่ไม่ใช่ nil — false ก็นับว่ามีข้อมูล)
func driverHasData(flags map[string]*bool, driver string) bool {
	for _, stmt := range driverStatements[driver] {
		if v, ok := flags[stmt]; ok && v != nil {
			return true
		}
	}
	return false
}

// computeDriverScores คะแนนเฉลี่ยต่อ driver และ Growth Index จาก v2 records เท่านั้น
// driver ที่ไม่มี session ไหนมีข้อมูลเลย = nil, ไม่ใช่ 0 — ต้องแยก "ไม่มีข้อมูล" จาก "ได้ 0"
func computeDriverScores(wellbeing []models.SchoolWellbeing) (models.DriverScores, *float64) {
	sums := map[string]float64{}
	counts := map[string]int{}

	for i := range wellbeing {
		w := &wellbeing[i]
		if w.Version != models.WellbeingV2 || w.V2 == nil {
			continue // v1 record = ไม่มีข้อมูลสำหรับ metric นี้ ไม่ใช่ error
		}
		for _, driver := range DriverKeys {
			if driverHasData(w.V2.Statements, driver) {
				sums[driver] += ScoreForDriver(w.V2.Statements, driver)
				counts[driver]++
			}
		}
	}

	avgFor := func(driver string) *float64 {
		if counts[driver] == 0 {
			return nil
		}
		avg := round1(sums[driver] / float64(counts[driver]))
		return &avg
	}

	scores := models.DriverScores{
		Access:     avgFor(DriverAccess),
		Guidance:   avgFor(DriverGuidance),
		Connection: avgFor(DriverConnection),
		Trust:      avgFor(DriverTrust),
		Care:       avgFor(DriverCare),
	}

	// Growth Index = ค่าเฉลี่ยของ driver averages ที่มีข้อมูล
	sum, n := 0.0, 0
	for _, avg := range []*float64{scores.Access, scores.Guidance, scores.Connection, scores.Trust, scores.Care} {
		if avg != nil {
			sum += *avg
			n++
		}
	}
	if n == 0 {
		return scores, nil
	}
	growth := round1(sum / float64(n))
	return scores, &growth
}
