package analytics

import (
	"fmt"
	"testing"

	"Backend-Flourish-Campus/src/models"

	"github.com/stretchr/testify/assert"
)

func bptr(v bool) *bool { return &v }

func TestScoreForDriver(t *testing.T) {
	// Test deduction of 2.5 per selected barrier statement
	t.Run("TestDeductionPerBarrier", func(t *testing.T) {
		assert.Equal(t, 10.0, ScoreForDriver(map[string]*bool{}, DriverAccess))
		assert.Equal(t, 7.5, ScoreForDriver(map[string]*bool{
			"statement_1": bptr(true),
		}, DriverAccess))
		assert.Equal(t, 5.0, ScoreForDriver(map[string]*bool{
			"statement_1": bptr(true),
			"statement_2": bptr(true),
		}, DriverAccess))
		assert.Equal(t, 2.5, ScoreForDriver(map[string]*bool{
			"statement_1": bptr(true),
			"statement_2": bptr(true),
			"statement_3": bptr(true),
		}, DriverAccess))
	})

	// Test false flags and nil flags are not selections
	t.Run("TestFalseAndNilNotCounted", func(t *testing.T) {
		flags := map[string]*bool{
			"statement_1": bptr(false),
			"statement_2": nil,
		}
		assert.Equal(t, 10.0, ScoreForDriver(flags, DriverAccess))
	})

	// Test statements belonging to other drivers are ignored
	t.Run("TestOtherDriverStatementsIgnored", func(t *testing.T) {
		flags := map[string]*bool{
			"statement_4":  bptr(true), // guidance
			"statement_13": bptr(true), // care
		}
		assert.Equal(t, 10.0, ScoreForDriver(flags, DriverAccess))
		assert.Equal(t, 7.5, ScoreForDriver(flags, DriverGuidance))
		assert.Equal(t, 7.5, ScoreForDriver(flags, DriverCare))
	})
}

func TestCompositeScore(t *testing.T) {
	t.Run("TestNoBarriersSelected", func(t *testing.T) {
		assert.Equal(t, 10.0, CompositeScore(map[string]*bool{}))
	})

	t.Run("TestEveryBarrierSelected", func(t *testing.T) {
		flags := map[string]*bool{}
		for i := 1; i <= 15; i++ {
			flags[fmt.Sprintf("statement_%d", i)] = bptr(true)
		}
		assert.Equal(t, 2.5, CompositeScore(flags))
	})
}

func TestComputeDriverScores(t *testing.T) {
	// Test v1 records carry no driver data at all
	t.Run("TestV1OnlyGivesNilGrowthIndex", func(t *testing.T) {
		eight := 8.0
		wellbeing := []models.SchoolWellbeing{
			{SessionID: "s1", Version: models.WellbeingV1, V1: &models.SchoolWellbeingV1{FeelSafe: &eight}},
		}
		scores, growth := computeDriverScores(wellbeing)
		assert.Nil(t, growth)
		assert.Nil(t, scores.Access)
		assert.Nil(t, scores.Guidance)
		assert.Nil(t, scores.Connection)
		assert.Nil(t, scores.Trust)
		assert.Nil(t, scores.Care)
	})

	// Test drivers without any answered statement stay nil, not zero
	t.Run("TestPartialDataKeepsMissingDriversNil", func(t *testing.T) {
		wellbeing := []models.SchoolWellbeing{
			{SessionID: "s1", Version: models.WellbeingV2, V2: &models.SchoolWellbeingV2{
				Statements: map[string]*bool{
					"statement_1": bptr(true),  // access: one barrier
					"statement_4": bptr(false), // guidance: asked, none selected
				},
			}},
		}
		scores, growth := computeDriverScores(wellbeing)
		assert.NotNil(t, scores.Access)
		assert.Equal(t, 7.5, *scores.Access)
		assert.NotNil(t, scores.Guidance)
		assert.Equal(t, 10.0, *scores.Guidance)
		assert.Nil(t, scores.Connection)
		assert.Nil(t, scores.Trust)
		assert.Nil(t, scores.Care)

		// Growth Index averages only the drivers that have data
		assert.NotNil(t, growth)
		assert.Equal(t, 8.8, *growth) // (7.5 + 10) / 2 = 8.75 -> 8.8
	})

	// Test averaging across sessions per driver
	t.Run("TestAveragesAcrossSessions", func(t *testing.T) {
		wellbeing := []models.SchoolWellbeing{
			{SessionID: "s1", Version: models.WellbeingV2, V2: &models.SchoolWellbeingV2{
				Statements: map[string]*bool{"statement_1": bptr(true)},
			}},
			{SessionID: "s2", Version: models.WellbeingV2, V2: &models.SchoolWellbeingV2{
				Statements: map[string]*bool{"statement_1": bptr(false)},
			}},
		}
		scores, _ := computeDriverScores(wellbeing)
		assert.NotNil(t, scores.Access)
		assert.Equal(t, 8.8, *scores.Access) // (7.5 + 10) / 2
	})
}
