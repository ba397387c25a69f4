package logger

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/searchbench/internal/models"
)

// colorScheme defines consistent colors for record fields.
// Green: binary search (the fast path)
// Red: linear search
// Yellow: unbounded speedup
// Cyan: labels
type colorScheme struct {
	binary *color.Color
	linear *color.Color
	warn   *color.Color
	label  *color.Color
	value  *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		binary: color.New(color.FgGreen),
		linear: color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
		label:  color.New(color.FgCyan),
		value:  color.New(color.FgWhite),
	}
}

// formatColorizedRecord is formatRecord with colored labels and values.
func formatColorizedRecord(r models.Record, scheme *colorScheme) string {
	n := color.New(color.Bold).Sprintf("N=%s", humanize.Comma(int64(r.Size)))

	linear := fmt.Sprintf("%s %s",
		scheme.label.Sprint("linear"),
		scheme.linear.Sprintf("%.6fs (%s steps)", r.LinearTime.Seconds(), humanize.Commaf(roundSteps(r.LinearSteps))))
	binary := fmt.Sprintf("%s %s",
		scheme.label.Sprint("binary"),
		scheme.binary.Sprintf("%.6fs (%s steps)", r.BinaryTime.Seconds(), humanize.Commaf(roundSteps(r.BinarySteps))))

	speedup := scheme.value.Sprint(formatSpeedup(r))
	if r.Unbounded() {
		speedup = scheme.warn.Sprint(formatSpeedup(r))
	}

	return fmt.Sprintf("%s complete: %s, %s, %s %s", n, linear, binary, scheme.label.Sprint("speedup"), speedup)
}
