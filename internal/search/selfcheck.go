package search

import (
	"errors"
	"fmt"
	"slices"
)

type check struct {
	name   string
	seq    []int
	target int
	want   []int // acceptable indices; empty means NotFound
}

var selfChecks = []check{
	{name: "empty list", seq: []int{}, target: 5},
	{name: "target at beginning", seq: []int{1, 2, 3, 4, 5}, target: 1, want: []int{0}},
	{name: "target at end", seq: []int{1, 2, 3, 4, 5}, target: 5, want: []int{4}},
	{name: "target absent", seq: []int{1, 2, 3, 4, 5}, target: 6},
	{name: "duplicates", seq: []int{1, 2, 2, 2, 3}, target: 2, want: []int{1, 2, 3}},
}

// SelfCheck runs the built-in edge-case suite against Binary and Linear.
// It returns every failure joined into one error, or nil.
func SelfCheck() error {
	var errs []error
	for _, c := range selfChecks {
		bin := Binary(c.seq, c.target)
		lin := Linear(c.seq, c.target)

		if len(c.want) == 0 {
			if bin.Found() {
				errs = append(errs, fmt.Errorf("%s: binary search returned index %d, want %d", c.name, bin.Index, NotFound))
			}
		} else if !slices.Contains(c.want, bin.Index) {
			errs = append(errs, fmt.Errorf("%s: binary search returned index %d, want one of %v", c.name, bin.Index, c.want))
		}

		if bin.Found() != lin.Found() {
			errs = append(errs, fmt.Errorf("%s: binary found=%v but linear found=%v", c.name, bin.Found(), lin.Found()))
		}
	}
	return errors.Join(errs...)
}
