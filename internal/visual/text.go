package visual

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/searchbench/internal/search"
)

// Text draws each step as a row of cells: [v] for the midpoint, (v) for
// active elements and dots for eliminated ones, followed by a caret under
// the midpoint.
type Text struct {
	Color bool
}

func (t *Text) Begin(w io.Writer, values []int, target int) error {
	_, err := fmt.Fprintf(w, "Binary search for %d in %d value(s)\n", target, len(values))
	return err
}

func (t *Text) Step(w io.Writer, values []int, p search.Probe) error {
	width := cellWidth(values)
	mid := color.New(color.FgGreen, color.Bold)
	gone := color.New(color.FgHiBlack)

	var cells, marker strings.Builder
	for i, v := range values {
		var cell string
		switch Classify(i, p) {
		case Midpoint:
			cell = fmt.Sprintf("[%*d]", width, v)
			if t.Color {
				cell = mid.Sprint(cell)
			}
			marker.WriteString(" " + centered("^", width) + " ")
		case Eliminated:
			cell = " " + centered(".", width) + " "
			if t.Color {
				cell = gone.Sprint(cell)
			}
			marker.WriteString(strings.Repeat(" ", width+2))
		default:
			cell = fmt.Sprintf("(%*d)", width, v)
			marker.WriteString(strings.Repeat(" ", width+2))
		}
		cells.WriteString(cell)
		if i < len(values)-1 {
			cells.WriteString(" ")
			marker.WriteString(" ")
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n  %s\n  %s\n", Caption(values, p), cells.String(), strings.TrimRight(marker.String(), " "))
	return err
}

func (t *Text) End(w io.Writer, values []int, target int, res search.Result) error {
	var err error
	if res.Found() {
		_, err = fmt.Fprintf(w, "\nFound %d at index %d in %d step(s).\n", target, res.Index, res.Steps)
	} else {
		_, err = fmt.Fprintf(w, "\n%d not found after %d step(s).\n", target, res.Steps)
	}
	return err
}

func cellWidth(values []int) int {
	width := 1
	for _, v := range values {
		if n := len(strconv.Itoa(v)); n > width {
			width = n
		}
	}
	return width
}

// centered pads s to width, biased right like %*d.
func centered(s string, width int) string {
	if width <= 1 {
		return s
	}
	left := width - 1 - (width-1)/2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-1-left)
}
