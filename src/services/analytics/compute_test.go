package analytics

import (
	"testing"

	"Backend-Flourish-Campus/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestBuildAnalyticsEmpty(t *testing.T) {
	result := BuildAnalytics(AnalyticsData{})

	assert.Equal(t, 0, result.TotalResponses)
	assert.Equal(t, 0.0, result.CompletionRate)
	assert.Nil(t, result.OverallFlourishingScore)
	assert.Equal(t, 0, result.StudentsAtRiskPercent)
	assert.Empty(t, result.FlourishingDomainAverages)
	assert.Empty(t, result.SchoolWellbeingAverages)
	assert.Empty(t, result.FastestWinSuggestions)
	assert.Nil(t, result.GrowthIndexScore)
	assert.Nil(t, result.DriverScores.Access)
	assert.Len(t, result.TensionGapAnalysis, len(models.TensionKeys))
	for _, gap := range result.TensionGapAnalysis {
		assert.Equal(t, 0, gap.SessionCount)
	}
	assert.Empty(t, result.ActionPathway.Domains)
}

func TestBuildAnalyticsScenario(t *testing.T) {
	data := AnalyticsData{
		Sessions: []models.SurveySession{
			{SessionID: "s1", IsCompleted: true},
			{SessionID: "s2", IsCompleted: true},
			{SessionID: "s3", IsCompleted: false},
		},
		Flourishing: []models.FlourishingScore{
			{
				SessionID:              "s1",
				HappinessSatisfaction1: fptr(5),
				HappinessSatisfaction2: fptr(6),
				MentalPhysicalHealth1:  fptr(5), // second sub-question missing
			},
			{
				SessionID:              "s2",
				HappinessSatisfaction1: fptr(7),
				HappinessSatisfaction2: fptr(8),
			},
			{
				SessionID:              "s3", // incomplete session, must be ignored
				HappinessSatisfaction1: fptr(1),
				HappinessSatisfaction2: fptr(1),
			},
		},
		Wellbeing: []models.SchoolWellbeing{
			{SessionID: "s1", Version: models.WellbeingV1, V1: &models.SchoolWellbeingV1{FeelSafe: fptr(8)}},
			{SessionID: "s2", Version: models.WellbeingV2, V2: &models.SchoolWellbeingV2{
				Statements: map[string]*bool{
					"statement_1": bptr(true),
					"statement_2": bptr(false),
					"statement_4": bptr(false),
				},
			}},
		},
		Demographics: []models.Demographics{
			{SessionID: "s1", YearInSchool: "Freshman", RaceEthnicity: []string{"Asian", "White"}},
			{SessionID: "s2", YearInSchool: "Freshman"},
		},
		TextResponses: []models.TextResponse{
			{SessionID: "s1", FastestWin: "  Fix the dining hall  "},
			{SessionID: "s2", FastestWin: "   "},
		},
		Selections: []models.EnablerBarrierSelection{
			{SessionID: "s1", DomainKey: models.DomainHappinessSatisfaction,
				Enablers: []string{"Friends", "Exercise"}, Barriers: []string{"Stress"}},
			{SessionID: "s2", DomainKey: models.DomainHappinessSatisfaction,
				Enablers: []string{"Friends"}},
		},
	}

	result := BuildAnalytics(data)

	// Counts only completed sessions
	t.Run("TestTotalsAndCompletionRate", func(t *testing.T) {
		assert.Equal(t, 2, result.TotalResponses)
		assert.Equal(t, 66.7, result.CompletionRate) // 2 of 3
	})

	// A domain contributes only when both sub-questions are answered
	t.Run("TestDomainAveragesStrictPair", func(t *testing.T) {
		require.Contains(t, result.FlourishingDomainAverages, models.DomainHappinessSatisfaction)
		assert.Equal(t, 6.5, result.FlourishingDomainAverages[models.DomainHappinessSatisfaction])
		// s1's lone mental_physical_health_1 must contribute nothing
		assert.NotContains(t, result.FlourishingDomainAverages, models.DomainMentalPhysicalHealth)
	})

	t.Run("TestOverallFlourishing", func(t *testing.T) {
		require.NotNil(t, result.OverallFlourishingScore)
		assert.Equal(t, 6.5, *result.OverallFlourishingScore) // (5.5 + 7.5) / 2
	})

	// s1 has a sub-question below 6, s2 does not
	t.Run("TestAtRiskPercent", func(t *testing.T) {
		assert.Equal(t, 50, result.StudentsAtRiskPercent)
	})

	// v2 records must never leak into v1 field averages
	t.Run("TestWellbeingAveragesV1Only", func(t *testing.T) {
		assert.Equal(t, map[string]float64{"feel_safe": 8}, result.SchoolWellbeingAverages)
	})

	t.Run("TestDriverScoresAndGrowthIndex", func(t *testing.T) {
		require.NotNil(t, result.DriverScores.Access)
		assert.Equal(t, 7.5, *result.DriverScores.Access)
		require.NotNil(t, result.DriverScores.Guidance)
		assert.Equal(t, 10.0, *result.DriverScores.Guidance)
		assert.Nil(t, result.DriverScores.Care)
		require.NotNil(t, result.GrowthIndexScore)
		assert.Equal(t, 8.8, *result.GrowthIndexScore)
	})

	t.Run("TestDemographicBreakdown", func(t *testing.T) {
		assert.Equal(t, 2, result.DemographicBreakdown["yearInSchool"]["Freshman"])
		// multi-valued race counts each selection separately
		assert.Equal(t, 1, result.DemographicBreakdown["raceEthnicity"]["Asian"])
		assert.Equal(t, 1, result.DemographicBreakdown["raceEthnicity"]["White"])
	})

	// Percentages use selection row count as the denominator, not session count
	t.Run("TestInterventionAnalysis", func(t *testing.T) {
		require.NotEmpty(t, result.InterventionAnalysis.TopEnablers)
		top := result.InterventionAnalysis.TopEnablers[0]
		assert.Equal(t, "Friends", top.Label)
		assert.Equal(t, 2, top.Count)
		assert.Equal(t, 100, top.Percentage) // 2 of 2 rows

		stats := result.InterventionAnalysis.DomainAnalysis[models.DomainHappinessSatisfaction]
		assert.Equal(t, 2, stats.ResponseCount)
		assert.Equal(t, 1.5, stats.AvgEnablers)
		assert.Equal(t, 0.5, stats.AvgBarriers)
	})

	t.Run("TestSuggestionsTrimmed", func(t *testing.T) {
		assert.Equal(t, []string{"Fix the dining hall"}, result.FastestWinSuggestions)
	})

	t.Run("TestActionPathway", func(t *testing.T) {
		require.Len(t, result.ActionPathway.Domains, 1)
		d := result.ActionPathway.Domains[0]
		assert.Equal(t, models.DomainHappinessSatisfaction, d.DomainKey)
		assert.Equal(t, 6.5, d.AverageScore)
		assert.Equal(t, 2, d.Criticality.Level) // exactly 6.5 is Watch
		assert.Equal(t, "Friends", d.TopEnabler)
		assert.Equal(t, "Stress", d.TopBarrier)
		assert.Equal(t, 2, result.ActionPathway.TotalResponses)
	})
}

// The save path is check-then-write, so a racing client can leave two rows for
// one session. The read side must count each session (or session+domain) once.
func TestBuildAnalyticsDuplicateRows(t *testing.T) {
	t.Run("TestDuplicateFlourishingRowCountsOnce", func(t *testing.T) {
		dup := models.FlourishingScore{
			SessionID:              "s1",
			HappinessSatisfaction1: fptr(5),
			HappinessSatisfaction2: fptr(5),
		}
		result := BuildAnalytics(AnalyticsData{
			Sessions:    []models.SurveySession{{SessionID: "s1", IsCompleted: true}},
			Flourishing: []models.FlourishingScore{dup, dup},
		})

		assert.LessOrEqual(t, result.StudentsAtRiskPercent, 100)
		assert.Equal(t, 100, result.StudentsAtRiskPercent) // one session, at risk, counted once
		require.NotNil(t, result.OverallFlourishingScore)
		assert.Equal(t, 5.0, *result.OverallFlourishingScore)
	})

	t.Run("TestDuplicateRowDoesNotSkewDomainAverage", func(t *testing.T) {
		low := models.FlourishingScore{
			SessionID:              "s1",
			HappinessSatisfaction1: fptr(5),
			HappinessSatisfaction2: fptr(5),
		}
		high := models.FlourishingScore{
			SessionID:              "s2",
			HappinessSatisfaction1: fptr(9),
			HappinessSatisfaction2: fptr(9),
		}
		result := BuildAnalytics(AnalyticsData{
			Sessions: []models.SurveySession{
				{SessionID: "s1", IsCompleted: true},
				{SessionID: "s2", IsCompleted: true},
			},
			Flourishing: []models.FlourishingScore{low, low, high},
		})

		// (5 + 9) / 2, not (5 + 5 + 9) / 3
		assert.Equal(t, 7.0, result.FlourishingDomainAverages[models.DomainHappinessSatisfaction])
	})

	t.Run("TestDuplicateWellbeingRowFirstWins", func(t *testing.T) {
		result := BuildAnalytics(AnalyticsData{
			Sessions: []models.SurveySession{{SessionID: "s1", IsCompleted: true}},
			Wellbeing: []models.SchoolWellbeing{
				{SessionID: "s1", Version: models.WellbeingV1, V1: &models.SchoolWellbeingV1{FeelSafe: fptr(4)}},
				{SessionID: "s1", Version: models.WellbeingV1, V1: &models.SchoolWellbeingV1{FeelSafe: fptr(6)}},
			},
		})

		assert.Equal(t, map[string]float64{"feel_safe": 4}, result.SchoolWellbeingAverages)
	})

	t.Run("TestDuplicateSelectionRowCountsOnce", func(t *testing.T) {
		sel := models.EnablerBarrierSelection{
			SessionID: "s1",
			DomainKey: models.DomainHappinessSatisfaction,
			Enablers:  []string{"Friends"},
		}
		other := models.EnablerBarrierSelection{
			SessionID: "s1",
			DomainKey: models.DomainFinancialStability,
			Enablers:  []string{"Budgeting"},
		}
		result := BuildAnalytics(AnalyticsData{
			Sessions:   []models.SurveySession{{SessionID: "s1", IsCompleted: true}},
			Selections: []models.EnablerBarrierSelection{sel, sel, other},
		})

		// dedupe key is session+domain, so the second domain's row survives
		require.Len(t, result.InterventionAnalysis.TopEnablers, 2)
		assert.Equal(t, 1, result.InterventionAnalysis.TopEnablers[0].Count)
		stats := result.InterventionAnalysis.DomainAnalysis[models.DomainHappinessSatisfaction]
		assert.Equal(t, 1, stats.ResponseCount)
	})

	t.Run("TestDuplicateTextRowCollectedOnce", func(t *testing.T) {
		result := BuildAnalytics(AnalyticsData{
			Sessions: []models.SurveySession{{SessionID: "s1", IsCompleted: true}},
			TextResponses: []models.TextResponse{
				{SessionID: "s1", FastestWin: "fix the wifi"},
				{SessionID: "s1", FastestWin: "fix the wifi"},
			},
		})

		assert.Equal(t, []string{"fix the wifi"}, result.FastestWinSuggestions)
	})
}

func TestRankTop(t *testing.T) {
	// Ties break alphabetically after count
	t.Run("TestTieBreaksAlphabetically", func(t *testing.T) {
		items := rankTop(map[string]int{"B": 1, "C": 2, "A": 1}, 4, 10)
		require.Len(t, items, 3)
		assert.Equal(t, "C", items[0].Label)
		assert.Equal(t, "A", items[1].Label)
		assert.Equal(t, "B", items[2].Label)
	})

	t.Run("TestPercentageDenominator", func(t *testing.T) {
		items := rankTop(map[string]int{"A": 1}, 3, 10)
		require.Len(t, items, 1)
		assert.Equal(t, 33, items[0].Percentage) // 1 of 3 rows
	})

	t.Run("TestLimit", func(t *testing.T) {
		counts := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
		items := rankTop(counts, 10, 2)
		require.Len(t, items, 2)
		assert.Equal(t, "d", items[0].Label)
		assert.Equal(t, "c", items[1].Label)
	})
}

func TestComputeAtRiskPercent(t *testing.T) {
	atRisk := models.FlourishingScore{SessionID: "s1", MeaningPurpose1: fptr(5.9)}
	safe := models.FlourishingScore{SessionID: "s2", MeaningPurpose1: fptr(6), MeaningPurpose2: fptr(6)}

	// Any single sub-question below 6 flags the session, even without its pair
	t.Run("TestLoneSubQuestionCounts", func(t *testing.T) {
		assert.Equal(t, 100, computeAtRiskPercent([]models.FlourishingScore{atRisk}, 1))
	})

	t.Run("TestExactlySixIsNotAtRisk", func(t *testing.T) {
		assert.Equal(t, 0, computeAtRiskPercent([]models.FlourishingScore{safe}, 1))
	})

	t.Run("TestDenominatorIsCompletedSessions", func(t *testing.T) {
		scores := []models.FlourishingScore{atRisk}
		assert.Equal(t, 33, computeAtRiskPercent(scores, 3)) // 1 of 3 completed
	})

	t.Run("TestZeroCompleted", func(t *testing.T) {
		assert.Equal(t, 0, computeAtRiskPercent(nil, 0))
	})
}

func TestCollectSuggestions(t *testing.T) {
	t.Run("TestCapped", func(t *testing.T) {
		texts := make([]models.TextResponse, maxSuggestions+10)
		for i := range texts {
			texts[i].FastestWin = "more study space"
		}
		assert.Len(t, collectSuggestions(texts), maxSuggestions)
	})

	t.Run("TestBlankDropped", func(t *testing.T) {
		texts := []models.TextResponse{{FastestWin: "\t\n "}, {FastestWin: "quiet hours"}}
		assert.Equal(t, []string{"quiet hours"}, collectSuggestions(texts))
	})
}
