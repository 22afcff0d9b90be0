package models

// Criticality ระดับความเร่งด่วนของ domain (1 = ดีสุด, 4 = วิกฤต)
type Criticality struct {
	Level int    `json:"level"` // 1..4
	Label string `json:"label"`
	Color string `json:"color"`
}

// RankedItem enabler/barrier หนึ่งรายการพร้อมความถี่
type RankedItem struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"` // count / total selection rows × 100
}

// DomainSelectionStats ค่าเฉลี่ยจำนวน enabler/barrier ที่ถูกเลือกต่อ row ใน domain หนึ่ง
type DomainSelectionStats struct {
	ResponseCount int     `json:"responseCount"`
	AvgEnablers   float64 `json:"avgEnablers"`
	AvgBarriers   float64 `json:"avgBarriers"`
}

// InterventionAnalysis ผลการวิเคราะห์ enabler/barrier ทั้ง tenant
type InterventionAnalysis struct {
	TopEnablers    []RankedItem                    `json:"topEnablers"`
	TopBarriers    []RankedItem                    `json:"topBarriers"`
	DomainAnalysis map[string]DomainSelectionStats `json:"domainAnalysis"`
}

// TensionGap ผล gap analysis ของ tension คู่หนึ่ง
type TensionGap struct {
	TensionKey    string  `json:"tensionKey"`
	AvgGap        float64 `json:"avgGap"`        // normalized tension − normalized enabler score
	GapPercentage int     `json:"gapPercentage"` // % ของ session ที่ gap > 0.2
	SessionCount  int     `json:"sessionCount"`
}

// PathwayDomain หนึ่ง domain ใน Action Pathway
type PathwayDomain struct {
	DomainKey    string      `json:"domainKey"`
	Label        string      `json:"label"`
	AverageScore float64     `json:"averageScore"`
	Criticality  Criticality `json:"criticality"`
	TopEnabler   string      `json:"topEnabler,omitempty"`
	TopBarrier   string      `json:"topBarrier,omitempty"`
}

// ActionPathway รายการ domain เรียงตามความเร่งด่วน (วิกฤตสุด + คะแนนต่ำสุดก่อน)
type ActionPathway struct {
	Domains        []PathwayDomain `json:"domains"`
	TotalResponses int             `json:"totalResponses"`
}

// DriverScores คะแนนเฉลี่ยของ driver ทั้ง 5 จาก v2 records (nil = ไม่มีข้อมูล)
type DriverScores struct {
	Access     *float64 `json:"access"`
	Guidance   *float64 `json:"guidance"`
	Connection *float64 `json:"connection"`
	Trust      *float64 `json:"trust"`
	Care       *float64 `json:"care"`
}

// SurveyAnalytics ผลรวมทั้งหมดที่ dashboard ใช้ — หนึ่ง object ต่อหนึ่ง tenant
type SurveyAnalytics struct {
	TotalResponses            int                       `json:"totalResponses"`
	CompletionRate            float64                   `json:"completionRate"`
	OverallFlourishingScore   *float64                  `json:"overallFlourishingScore"`
	StudentsAtRiskPercent     int                       `json:"studentsAtRiskPercent"`
	FlourishingDomainAverages map[string]float64        `json:"flourishingDomainAverages"`
	SchoolWellbeingAverages   map[string]float64        `json:"schoolWellbeingAverages"`
	DemographicBreakdown      map[string]map[string]int `json:"demographicBreakdown"`
	InterventionAnalysis      InterventionAnalysis      `json:"interventionAnalysis"`
	FastestWinSuggestions     []string                  `json:"fastestWinSuggestions"`
	TensionGapAnalysis        []TensionGap              `json:"tensionGapAnalysis"`
	ActionPathway             ActionPathway             `json:"actionPathway"`
	GrowthIndexScore          *float64                  `json:"growthIndexScore"` // nil เมื่อไม่มี v2 data เลย
	DriverScores              DriverScores              `json:"driverScores"`
}
