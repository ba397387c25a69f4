// Package visual renders the midpoint trace of a binary search as a sequence
// of diagrams, one per step.
//
// The trace comes from search.BinaryTrace; this package only draws it. Each
// diagram marks the elements eliminated from [low, high], the current midpoint,
// and the elements still active.
package visual

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/harrison/searchbench/internal/search"
)

// DemoTarget is searched for in DemoValues when no input is given.
const DemoTarget = 71

// ErrUnsorted is returned when the values to visualize are not ascending.
var ErrUnsorted = errors.New("values must be sorted in ascending order")

// DemoValues returns the default demonstration list.
func DemoValues() []int {
	return []int{14, 25, 31, 46, 52, 63, 71, 84, 96, 99}
}

// Cell is the role of one element within a step.
type Cell int

const (
	Active Cell = iota
	Midpoint
	Eliminated
)

// Classify returns the role of index i at probe p.
func Classify(i int, p search.Probe) Cell {
	switch {
	case i == p.Mid:
		return Midpoint
	case i < p.Low || i > p.High:
		return Eliminated
	default:
		return Active
	}
}

// Caption is the label printed under each diagram.
func Caption(values []int, p search.Probe) string {
	return fmt.Sprintf("Step %d: low=%d, high=%d, mid=%d (Value: %d)", p.Step, p.Low, p.High, p.Mid, values[p.Mid])
}

// Renderer draws a trace. Step is called once per midpoint evaluation.
type Renderer interface {
	Begin(w io.Writer, values []int, target int) error
	Step(w io.Writer, values []int, p search.Probe) error
	End(w io.Writer, values []int, target int, res search.Result) error
}

// Style names a built-in renderer.
type Style string

const (
	StyleTikZ Style = "tikz"
	StyleText Style = "text"
)

// ParseStyle converts a user-supplied name into a Style.
// The comparison is case-insensitive; latex and beamer select tikz, ascii selects text.
func ParseStyle(name string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case StyleTikZ, "latex", "beamer":
		return StyleTikZ, nil
	case StyleText, "", "ascii":
		return StyleText, nil
	default:
		return "", fmt.Errorf("unknown visualization style %q, must be one of: tikz, text", name)
	}
}

// NewRenderer returns the renderer for style. color only affects StyleText.
func NewRenderer(style string, color bool) (Renderer, error) {
	s, err := ParseStyle(style)
	if err != nil {
		return nil, err
	}
	if s == StyleTikZ {
		return &TikZ{}, nil
	}
	return &Text{Color: color}, nil
}

// Render replays binary search for target over values and draws every step
// with r. It stops after the step that finds the target or when the interval
// becomes empty.
func Render(w io.Writer, values []int, target int, r Renderer) (search.Result, error) {
	if !slices.IsSorted(values) {
		return search.Result{}, ErrUnsorted
	}

	if err := r.Begin(w, values, target); err != nil {
		return search.Result{}, err
	}

	var stepErr error
	res := search.BinaryTrace(values, target, func(p search.Probe) {
		if stepErr != nil || p.State == search.Exhausted {
			return
		}
		stepErr = r.Step(w, values, p)
	})
	if stepErr != nil {
		return res, stepErr
	}

	return res, r.End(w, values, target, res)
}
