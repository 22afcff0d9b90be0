package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResultsEmailHTML(t *testing.T) {
	t.Run("TestRendersRows", func(t *testing.T) {
		html, err := RenderResultsEmailHTML(ResultsEmailData{
			Rows: []ResultRow{
				{Domain: "Happiness & Life Satisfaction", Score: 6.5, Label: "Watch", Color: "#eab308"},
				{Domain: "Financial Stability", Score: 4.26, Label: "Critical", Color: "#dc2626"},
			},
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Happiness &amp; Life Satisfaction")
		assert.Contains(t, html, "6.5")
		assert.Contains(t, html, "4.3") // formatScore rounds to one decimal
		assert.Contains(t, html, "#dc2626")
	})

	t.Run("TestEmptyRows", func(t *testing.T) {
		html, err := RenderResultsEmailHTML(ResultsEmailData{})
		require.NoError(t, err)
		assert.NotEmpty(t, html)
	})
}

func TestNewSurveyResultsTask(t *testing.T) {
	task, err := NewSurveyResultsTask("sess-1", "student@example.edu")
	require.NoError(t, err)
	assert.Equal(t, TypeSurveyResults, task.Type())
	assert.Contains(t, string(task.Payload()), "sess-1")
	assert.Contains(t, string(task.Payload()), "student@example.edu")
}
