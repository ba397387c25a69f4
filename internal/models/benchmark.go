package models

import (
	"math"
	"time"
)

// Record holds the aggregated measurements for one input size
type Record struct {
	Size        int           // Number of elements in the searched sequence
	LinearTime  time.Duration // Mean wall-clock time of one linear search
	LinearSteps float64       // Mean elements examined by linear search
	BinaryTime  time.Duration // Mean wall-clock time of one binary search
	BinarySteps float64       // Mean midpoint evaluations by binary search
	Speedup     float64       // Total linear time / total binary time, +Inf when binary time is zero
}

// Unbounded reports whether the binary mean time was too small to measure
func (r Record) Unbounded() bool {
	return math.IsInf(r.Speedup, 1)
}

// Report is the result of one benchmark run
type Report struct {
	RunID       string        // Unique identifier of the run
	StartedAt   time.Time     // Wall-clock start of the run
	Duration    time.Duration // Total time spent measuring
	Repetitions int           // Searches per size and algorithm
	Seed        uint64        // Seed of the target generator
	Records     []Record      // One record per size, in run order
}
