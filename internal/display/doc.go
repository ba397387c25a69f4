// Package display provides user-facing terminal messages that are not part of
// a report: warnings about a run and the stage indicator of the demo command.
//
// Warnings are printed in yellow:
//
//	display.Warning{
//	    Title:      "Speedup unbounded",
//	    Message:    "Binary search time measured as zero for N=10",
//	    Sizes:      []int{10},
//	    Suggestion: "Increase --repetitions or use larger sizes",
//	}.Display(os.Stderr)
//
// Colors follow fatih/color, so NO_COLOR and non-TTY writers get plain text.
// All functions accept io.Writer for testability.
package display
