package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestDomainAverage(t *testing.T) {
	// Both sub-questions answered
	t.Run("TestCompletePair", func(t *testing.T) {
		score := FlourishingScore{
			HappinessSatisfaction1: fptr(5),
			HappinessSatisfaction2: fptr(6),
		}
		avg, ok := score.DomainAverage(DomainHappinessSatisfaction)
		assert.True(t, ok)
		assert.Equal(t, 5.5, avg)
	})

	// A lone sub-question never yields a domain average
	t.Run("TestHalfPairHasNoAverage", func(t *testing.T) {
		score := FlourishingScore{MentalPhysicalHealth1: fptr(5)}
		_, ok := score.DomainAverage(DomainMentalPhysicalHealth)
		assert.False(t, ok)
	})

	t.Run("TestUnansweredDomain", func(t *testing.T) {
		score := FlourishingScore{}
		_, ok := score.DomainAverage(DomainFinancialStability)
		assert.False(t, ok)
	})

	t.Run("TestUnknownDomainKey", func(t *testing.T) {
		score := FlourishingScore{}
		_, ok := score.DomainAverage("not_a_domain")
		assert.False(t, ok)
	})
}

func TestSchoolWellbeingV1Field(t *testing.T) {
	w := SchoolWellbeingV1{FeelSafe: fptr(7), OptimismFuture: fptr(9)}

	assert.Equal(t, 7.0, *w.Field("feel_safe"))
	assert.Equal(t, 9.0, *w.Field("optimism_future"))
	assert.Nil(t, w.Field("sleep_quality"))
	assert.Nil(t, w.Field("unknown"))

	// every declared v1 field name resolves
	for _, name := range WellbeingV1Fields {
		full := SchoolWellbeingV1{
			FeelSafe: fptr(1), ManageEmotions: fptr(1), SenseOfBelonging: fptr(1),
			SupportiveFriends: fptr(1), AskForHelp: fptr(1), AcademicBalance: fptr(1),
			SleepQuality: fptr(1), PhysicalActivity: fptr(1), FinancialConfidence: fptr(1),
			CampusResources: fptr(1), OptimismFuture: fptr(1),
		}
		assert.NotNil(t, full.Field(name), name)
	}
}
