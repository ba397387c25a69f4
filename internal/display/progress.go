package display

import (
	"io"

	"github.com/fatih/color"
)

// ProgressIndicator announces the stages of a multi-step command
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		total:  total,
	}
}

// Step displays the next stage: [N/Total] name (cyan)
func (p *ProgressIndicator) Step(name string) {
	p.current++
	color.New(color.FgCyan).Fprintf(p.writer, "[%d/%d] %s\n", p.current, p.total, name)
}

// Complete displays a success line with a green checkmark
func (p *ProgressIndicator) Complete() {
	color.New(color.FgGreen).Fprint(p.writer, "✓")
	io.WriteString(p.writer, " Done\n")
}
