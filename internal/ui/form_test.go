package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("completed field renders collapsed with value", func(t *testing.T) {
		fields := []Field{{Label: "Search", Value: "venus"}}
		output := stripANSI(RenderSummary("Browse gallery", fields, -1))

		assert.Contains(t, output, "◇ Search · venus")
	})

	t.Run("active field renders with diamond and no value", func(t *testing.T) {
		fields := []Field{{Label: "Category"}}
		output := stripANSI(RenderSummary("Browse gallery", fields, 0))

		assert.Contains(t, output, "◆ Category")
		assert.NotContains(t, output, separator)
	})

	t.Run("optional active field renders with optional suffix", func(t *testing.T) {
		fields := []Field{{Label: "Search", Optional: true}}
		output := stripANSI(RenderSummary("Browse gallery", fields, 0))

		assert.Contains(t, output, "◆ Search (optional)")
	})

	t.Run("title renders after top border", func(t *testing.T) {
		fields := []Field{{Label: "Sort", Value: "Best Match"}}
		output := stripANSI(RenderSummary("Browse gallery", fields, -1))

		assert.Contains(t, output, "┌ Browse gallery")
		assert.Contains(t, output, "└")
	})

	t.Run("empty-value non-active field produces no output line", func(t *testing.T) {
		fields := []Field{
			{Label: "Category", Value: "Baroque"},
			{Label: "Search"},
		}
		output := stripANSI(RenderSummary("Browse gallery", fields, -1))

		assert.NotContains(t, output, "Search")
	})
}

func TestRenderConfirmation(t *testing.T) {
	t.Run("lists headline detail and checks", func(t *testing.T) {
		output := stripANSI(RenderConfirmation("Submitted Water Lilies", "id 42", []string{"Queued for review"}))

		assert.Contains(t, output, "┌ ◆ Submitted Water Lilies")
		assert.Contains(t, output, "│ id 42")
		assert.Contains(t, output, "│ ✓ Queued for review")
	})

	t.Run("omits empty detail line", func(t *testing.T) {
		output := stripANSI(RenderConfirmation("Done", "", nil))

		assert.Equal(t, "┌ ◆ Done\n│\n└\n", output)
	})
}

func TestFormTheme(t *testing.T) {
	theme := FormTheme()

	require.NotNil(t, theme)
	assert.Equal(t, "✗", theme.Focused.ErrorMessage.Value())
}
