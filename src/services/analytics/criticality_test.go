package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	// Test critical band
	t.Run("TestCriticalBand", func(t *testing.T) {
		assert.Equal(t, 4, Classify(0).Level)
		assert.Equal(t, 4, Classify(4.9999).Level)
		assert.Equal(t, "Critical", Classify(3.2).Label)
		assert.Equal(t, "#dc2626", Classify(3.2).Color)
	})

	// Test priority band - boundaries are half-open so 5.0 is Priority, not Critical
	t.Run("TestPriorityBand", func(t *testing.T) {
		assert.Equal(t, 3, Classify(5.0).Level)
		assert.Equal(t, 3, Classify(6.4999).Level)
		assert.Equal(t, "Priority", Classify(5.0).Label)
		assert.Equal(t, "#ea580c", Classify(6.0).Color)
	})

	// Test watch band - exactly 6.5 must be Watch, not Priority
	t.Run("TestWatchBand", func(t *testing.T) {
		assert.Equal(t, 2, Classify(6.5).Level)
		assert.Equal(t, 2, Classify(7.9999).Level)
		assert.Equal(t, "Watch", Classify(6.5).Label)
		assert.Equal(t, "#eab308", Classify(7.0).Color)
	})

	// Test informational band
	t.Run("TestInformationalBand", func(t *testing.T) {
		assert.Equal(t, 1, Classify(8.0).Level)
		assert.Equal(t, 1, Classify(10).Level)
		assert.Equal(t, "Informational", Classify(8.0).Label)
		assert.Equal(t, "#16a34a", Classify(9.5).Color)
	})
}
