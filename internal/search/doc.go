// Package search provides the step-counted search primitives compared by the
// benchmark harness.
//
// Binary runs classic iterative binary search over an ascending slice and
// Linear scans from the front. Both return a Result holding the matched index
// (NotFound when absent) and the number of comparisons performed, so the two
// algorithms can be compared on cost independent of wall-clock time.
//
// BinaryTrace exposes each midpoint evaluation as a Probe. The visualizer
// renders those probes rather than running its own loop:
//
//	res := search.BinaryTrace(values, 71, func(p search.Probe) {
//	    fmt.Printf("step %d: low=%d high=%d mid=%d\n", p.Step, p.Low, p.High, p.Mid)
//	})
package search
