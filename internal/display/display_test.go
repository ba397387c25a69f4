package display

import (
	"bytes"
	"math"
	"testing"

	"github.com/harrison/searchbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningDisplay(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Speedup unbounded",
		Message:    "zero time",
		Sizes:      []int{10, 10_000},
		Suggestion: "Use larger sizes",
	}.Display(&buf)

	out := buf.String()
	assert.Contains(t, out, "Warning: Speedup unbounded\n")
	assert.Contains(t, out, "    zero time\n")
	assert.Contains(t, out, "    Affected sizes:\n      1. N=10\n      2. N=10,000\n")
	assert.Contains(t, out, "    Suggestion:\n    Use larger sizes\n")
}

func TestWarningDisplay_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Single", Sizes: []int{5}}.Display(&buf)

	assert.Contains(t, buf.String(), "Affected size:\n")
	assert.NotContains(t, buf.String(), "Suggestion")
}

func TestWarnUnbounded(t *testing.T) {
	rep := &models.Report{Records: []models.Record{
		{Size: 10, Speedup: math.Inf(1)},
		{Size: 100, Speedup: 4},
	}}

	w := WarnUnbounded(rep)
	require.NotNil(t, w)
	assert.Equal(t, []int{10}, w.Sizes)

	rep.Records = rep.Records[1:]
	assert.Nil(t, WarnUnbounded(rep))
}

func TestWarnLargeSizes(t *testing.T) {
	assert.Nil(t, WarnLargeSizes([]int{10_000, 10_000_000}))

	w := WarnLargeSizes([]int{10, 200_000_000})
	require.NotNil(t, w)
	assert.Equal(t, []int{200_000_000}, w.Sizes)
	assert.Contains(t, w.Message, "N=200,000,000")
	assert.Contains(t, w.Message, "GiB")
}

func TestProgressIndicator(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 2)

	p.Step("Visualization")
	p.Step("Benchmark")
	p.Complete()

	assert.Equal(t, "[1/2] Visualization\n[2/2] Benchmark\n✓ Done\n", buf.String())
}
