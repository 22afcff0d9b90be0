package analytics

import (
	"testing"

	"Backend-Flourish-Campus/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeActionPathway(t *testing.T) {
	// Test ordering: higher criticality first, then lower score within the same level
	t.Run("TestOrdering", func(t *testing.T) {
		averages := map[string]float64{
			models.DomainHappinessSatisfaction: 9.0, // Informational
			models.DomainMentalPhysicalHealth:  4.0, // Critical
			models.DomainMeaningPurpose:        6.2, // Priority
			models.DomainCharacterVirtue:       6.0, // Priority, lower score ranks first
		}

		pathway := computeActionPathway(averages, nil, 12)
		require.Len(t, pathway.Domains, 4)

		assert.Equal(t, models.DomainMentalPhysicalHealth, pathway.Domains[0].DomainKey)
		assert.Equal(t, models.DomainCharacterVirtue, pathway.Domains[1].DomainKey)
		assert.Equal(t, models.DomainMeaningPurpose, pathway.Domains[2].DomainKey)
		assert.Equal(t, models.DomainHappinessSatisfaction, pathway.Domains[3].DomainKey)
		assert.Equal(t, 12, pathway.TotalResponses)
	})

	// Test domains with no complete answers are omitted entirely
	t.Run("TestMissingDomainsOmitted", func(t *testing.T) {
		averages := map[string]float64{models.DomainSocialRelationships: 7.0}

		pathway := computeActionPathway(averages, nil, 3)
		require.Len(t, pathway.Domains, 1)
		d := pathway.Domains[0]
		assert.Equal(t, models.DomainSocialRelationships, d.DomainKey)
		assert.Equal(t, "Social Relationships", d.Label)
		assert.Equal(t, "Watch", d.Criticality.Label)
		assert.Empty(t, d.TopEnabler)
		assert.Empty(t, d.TopBarrier)
	})

	// Test top enabler/barrier per domain come from that domain's rows only
	t.Run("TestTopSelectionsPerDomain", func(t *testing.T) {
		averages := map[string]float64{
			models.DomainHappinessSatisfaction: 5.0,
			models.DomainFinancialStability:    5.0,
		}
		selections := []models.EnablerBarrierSelection{
			{SessionID: "s1", DomainKey: models.DomainHappinessSatisfaction,
				Enablers: []string{"Friends"}, Barriers: []string{"Stress"}},
			{SessionID: "s2", DomainKey: models.DomainHappinessSatisfaction,
				Enablers: []string{"Friends", "Sleep"}},
			{SessionID: "s1", DomainKey: models.DomainFinancialStability,
				Enablers: []string{"Budgeting"}, Barriers: []string{"Tuition"}},
		}

		pathway := computeActionPathway(averages, selections, 2)
		require.Len(t, pathway.Domains, 2)

		byKey := map[string]models.PathwayDomain{}
		for _, d := range pathway.Domains {
			byKey[d.DomainKey] = d
		}
		assert.Equal(t, "Friends", byKey[models.DomainHappinessSatisfaction].TopEnabler)
		assert.Equal(t, "Stress", byKey[models.DomainHappinessSatisfaction].TopBarrier)
		assert.Equal(t, "Budgeting", byKey[models.DomainFinancialStability].TopEnabler)
		assert.Equal(t, "Tuition", byKey[models.DomainFinancialStability].TopBarrier)
	})
}

func TestMostFrequent(t *testing.T) {
	t.Run("TestHighestCountWins", func(t *testing.T) {
		assert.Equal(t, "b", mostFrequent(map[string]int{"a": 1, "b": 3, "c": 2}))
	})

	t.Run("TestTieBreaksAlphabetically", func(t *testing.T) {
		assert.Equal(t, "a", mostFrequent(map[string]int{"b": 2, "a": 2}))
	})

	t.Run("TestEmpty", func(t *testing.T) {
		assert.Equal(t, "", mostFrequent(nil))
	})
}
