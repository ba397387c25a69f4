package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/searchbench/internal/models"
)

// MemoryWarningSize is the sequence length above which a run is flagged as
// memory hungry (one int per element).
const MemoryWarningSize = 100_000_000

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Sizes      []int  // Affected input sizes (optional)
	Suggestion string // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    " + w.Message + "\n")
	}

	if len(w.Sizes) > 0 {
		if len(w.Sizes) == 1 {
			b.WriteString("    Affected size:\n")
		} else {
			b.WriteString("    Affected sizes:\n")
		}
		for i, n := range w.Sizes {
			fmt.Fprintf(&b, "      %d. N=%s\n", i+1, humanize.Comma(int64(n)))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    " + w.Suggestion + "\n")
	}

	color.New(color.FgYellow).Fprint(out, b.String())
}

// WarnUnbounded returns a warning for records whose binary mean time was zero,
// or nil if there are none.
func WarnUnbounded(report *models.Report) *Warning {
	var sizes []int
	for _, r := range report.Records {
		if r.Unbounded() {
			sizes = append(sizes, r.Size)
		}
	}
	if len(sizes) == 0 {
		return nil
	}
	return &Warning{
		Title:      "Speedup unbounded",
		Message:    "Binary search time measured as zero; the speedup is reported as infinite.",
		Sizes:      sizes,
		Suggestion: "Use larger sizes or more repetitions for a finite ratio.",
	}
}

// WarnLargeSizes returns a warning for sizes above MemoryWarningSize, or nil.
func WarnLargeSizes(sizes []int) *Warning {
	var large []int
	for _, n := range sizes {
		if n > MemoryWarningSize {
			large = append(large, n)
		}
	}
	if len(large) == 0 {
		return nil
	}
	return &Warning{
		Title:   "Large input sizes",
		Message: fmt.Sprintf("Each size allocates its full sequence; N=%s needs about %s.", humanize.Comma(int64(large[0])), humanize.IBytes(uint64(large[0])*8)),
		Sizes:   large,
	}
}
