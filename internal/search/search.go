package search

import "cmp"

// NotFound is the Result index reported when the target is absent.
const NotFound = -1

// State is the phase of a search loop.
type State int

const (
	Searching State = iota // interval [low, high] is non-empty
	Found                  // seq[mid] == target
	Exhausted              // low > high, target absent
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single search call.
type Result struct {
	Index int // matched index, or NotFound
	Steps int // comparisons performed
}

// Found reports whether the search located the target.
func (r Result) Found() bool {
	return r.Index != NotFound
}

// Probe describes one iteration of the binary search loop.
// For the terminal Exhausted probe Mid is NotFound and Step repeats the last
// iteration count.
type Probe struct {
	Step  int
	Low   int
	High  int
	Mid   int
	State State
}

// Binary searches the ascending slice seq for target.
// With duplicate values any index holding target may be returned.
func Binary[T cmp.Ordered](seq []T, target T) Result {
	return BinaryTrace(seq, target, nil)
}

// BinaryTrace is Binary with a visitor called for every midpoint evaluation and,
// when the target is absent, once more with an Exhausted probe.
// visit may be nil.
func BinaryTrace[T cmp.Ordered](seq []T, target T, visit func(Probe)) Result {
	low, high := 0, len(seq)-1
	steps := 0

	for low <= high {
		steps++
		mid := (low + high) / 2
		v := seq[mid]

		if v == target {
			if visit != nil {
				visit(Probe{Step: steps, Low: low, High: high, Mid: mid, State: Found})
			}
			return Result{Index: mid, Steps: steps}
		}
		if visit != nil {
			visit(Probe{Step: steps, Low: low, High: high, Mid: mid, State: Searching})
		}
		if target > v {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if visit != nil {
		visit(Probe{Step: steps, Low: low, High: high, Mid: NotFound, State: Exhausted})
	}
	return Result{Index: NotFound, Steps: steps}
}

// Linear scans seq from the front and returns the first matching index.
// Steps counts elements examined, including the match.
func Linear[T comparable](seq []T, target T) Result {
	for i, v := range seq {
		if v == target {
			return Result{Index: i, Steps: i + 1}
		}
	}
	return Result{Index: NotFound, Steps: len(seq)}
}

// Range returns the ascending sequence low..high inclusive.
// It returns an empty slice when low > high. Callers bound the length.
func Range(low, high int) []int {
	if low > high {
		return []int{}
	}
	seq := make([]int, high-low+1)
	for i := range seq {
		seq[i] = low + i
	}
	return seq
}
