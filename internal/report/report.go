// Package report renders benchmark reports for humans.
//
// Three formats are supported: the fixed-width text table printed by the CLI,
// a GitHub-flavored markdown table, and HTML produced by running that markdown
// through goldmark.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/searchbench/internal/models"
)

// Format selects a renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// TableWidth is the length of the rule lines framing the text table.
const TableWidth = 115

// ErrUnknownFormat is returned for a format name that has no renderer.
var ErrUnknownFormat = errors.New("unknown report format")

var columns = []string{"List Size (N)", "Lin. Time(s)", "Lin. Steps", "Bin. Time(s)", "Bin. Steps", "Speedup"}

// ParseFormat converts a user-supplied name into a Format.
// The comparison is case-insensitive; "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w %q, must be one of: text, markdown, html", ErrUnknownFormat, name)
	}
}

// Options controls rendering details.
type Options struct {
	Color bool // colorize the speedup column (text format only)
}

// Write renders rep in the given format.
func Write(w io.Writer, rep *models.Report, format Format, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, rep, opts)
	case FormatMarkdown:
		return WriteMarkdown(w, rep)
	case FormatHTML:
		return WriteHTML(w, rep)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Title returns the heading line for rep.
func Title(rep *models.Report) string {
	return fmt.Sprintf("PERFORMANCE COMPARISON (Average of %d searches)", rep.Repetitions)
}

// WriteText renders the fixed-width comparison table.
func WriteText(w io.Writer, rep *models.Report, opts Options) error {
	var b strings.Builder
	heavy := strings.Repeat("=", TableWidth)

	b.WriteString(heavy + "\n")
	b.WriteString(Title(rep) + "\n")
	b.WriteString(heavy + "\n")
	fmt.Fprintf(&b, "%-15s %-15s %-15s %-15s %-15s %s\n",
		columns[0], columns[1], columns[2], columns[3], columns[4], columns[5])
	b.WriteString(strings.Repeat("-", TableWidth) + "\n")

	for _, rec := range rep.Records {
		fmt.Fprintf(&b, "%-15s %-15.6f %-15.0f %-15.6f %-15.0f %s\n",
			FormatSize(rec.Size),
			rec.LinearTime.Seconds(),
			rec.LinearSteps,
			rec.BinaryTime.Seconds(),
			rec.BinarySteps,
			speedupCell(rec, opts.Color),
		)
	}
	b.WriteString(heavy + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func speedupCell(rec models.Record, colored bool) string {
	s := FormatSpeedup(rec.Speedup)
	if !colored {
		return s
	}
	if rec.Unbounded() {
		return color.New(color.FgYellow).Sprint(s)
	}
	return color.New(color.FgGreen).Sprint(s)
}

// FormatSize renders n with thousands separators, e.g. "10,000".
func FormatSize(n int) string {
	return humanize.Comma(int64(n))
}

// FormatSpeedup renders a speedup multiplier rounded to an integer with
// thousands separators and an "x" suffix. Infinite values render as "∞x".
func FormatSpeedup(v float64) string {
	if math.IsInf(v, 1) {
		return "∞x"
	}
	if math.IsNaN(v) {
		return "n/a"
	}
	return humanize.Comma(int64(math.Round(v))) + "x"
}

// Markdown returns rep as a markdown document with a single table.
func Markdown(rep *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", Title(rep))
	if rep.RunID != "" {
		fmt.Fprintf(&b, "Run `%s`, seed %d.\n\n", rep.RunID, rep.Seed)
	}

	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|\n")
	for _, rec := range rep.Records {
		fmt.Fprintf(&b, "| %s | %.6f | %.0f | %.6f | %.0f | %s |\n",
			FormatSize(rec.Size),
			rec.LinearTime.Seconds(),
			rec.LinearSteps,
			rec.BinaryTime.Seconds(),
			rec.BinarySteps,
			FormatSpeedup(rec.Speedup),
		)
	}
	return b.String()
}

// WriteMarkdown renders rep as markdown.
func WriteMarkdown(w io.Writer, rep *models.Report) error {
	_, err := io.WriteString(w, Markdown(rep))
	return err
}

// WriteHTML renders rep as an HTML fragment.
func WriteHTML(w io.Writer, rep *models.Report) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(rep)), &buf); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
