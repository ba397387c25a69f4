package search

import (
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary_EdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		seq       []int
		target    int
		wantIndex int
	}{
		{"empty list", []int{}, 5, NotFound},
		{"nil list", nil, 5, NotFound},
		{"target at beginning", []int{1, 2, 3, 4, 5}, 1, 0},
		{"target at end", []int{1, 2, 3, 4, 5}, 5, 4},
		{"target absent above", []int{1, 2, 3, 4, 5}, 6, NotFound},
		{"target absent below", []int{1, 2, 3, 4, 5}, 0, NotFound},
		{"target absent inside", []int{1, 3, 5, 7}, 4, NotFound},
		{"single element hit", []int{9}, 9, 0},
		{"single element miss", []int{9}, 8, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Binary(tt.seq, tt.target)
			assert.Equal(t, tt.wantIndex, res.Index)
		})
	}
}

func TestBinary_EmptyTakesNoSteps(t *testing.T) {
	assert.Equal(t, Result{Index: NotFound, Steps: 0}, Binary([]int{}, 42))
	assert.Equal(t, Result{Index: NotFound, Steps: 0}, Linear([]int{}, 42))
}

func TestBinary_FirstElementTakesAtLeastOneStep(t *testing.T) {
	res := Binary([]int{1, 2, 3, 4, 5}, 1)
	assert.Equal(t, 0, res.Index)
	assert.GreaterOrEqual(t, res.Steps, 1)
}

func TestBinary_Duplicates(t *testing.T) {
	res := Binary([]int{1, 2, 2, 2, 3}, 2)
	assert.Contains(t, []int{1, 2, 3}, res.Index)
}

func TestBinary_Strings(t *testing.T) {
	seq := []string{"apple", "banana", "cherry", "date"}
	assert.Equal(t, 2, Binary(seq, "cherry").Index)
	assert.Equal(t, NotFound, Binary(seq, "elderberry").Index)
}

func TestBinary_StepBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 100, 1000, 1023, 1024, 4097} {
		seq := Range(0, n-1)
		limit := bits.Len(uint(n)) // ceil(log2(n+1))
		for target := -1; target <= n; target++ {
			res := Binary(seq, target)
			require.LessOrEqual(t, res.Steps, limit, "n=%d target=%d", n, target)
		}
	}
}

func TestLinear(t *testing.T) {
	seq := []int{4, 8, 15, 16, 23, 42}

	assert.Equal(t, Result{Index: 0, Steps: 1}, Linear(seq, 4))
	assert.Equal(t, Result{Index: 3, Steps: 4}, Linear(seq, 16))
	assert.Equal(t, Result{Index: NotFound, Steps: 6}, Linear(seq, 99))
}

func TestLinear_ReturnsFirstDuplicate(t *testing.T) {
	assert.Equal(t, Result{Index: 1, Steps: 2}, Linear([]int{1, 2, 2, 2, 3}, 2))
}

func TestBinaryAndLinearAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 200; trial++ {
		n := rng.IntN(64)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.IntN(40)
		}
		slices.Sort(seq)

		for target := -2; target < 42; target++ {
			bin := Binary(seq, target)
			lin := Linear(seq, target)

			require.Equal(t, lin.Found(), bin.Found(), "seq=%v target=%d", seq, target)
			if bin.Found() {
				assert.Equal(t, target, seq[bin.Index])
				assert.Equal(t, target, seq[lin.Index])
			}
			assert.LessOrEqual(t, lin.Steps, n)
			assert.LessOrEqual(t, bin.Steps, bits.Len(uint(n)))
		}
	}
}

func TestBinary_Deterministic(t *testing.T) {
	seq := []int{1, 1, 2, 3, 5, 8, 13, 21, 21, 21, 34}
	for _, target := range []int{1, 21, 4, 34} {
		first := Binary(seq, target)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Binary(seq, target))
		}
	}
}

func TestBinaryTrace(t *testing.T) {
	seq := []int{14, 25, 31, 46, 52, 63, 71, 84, 96, 99}

	var probes []Probe
	res := BinaryTrace(seq, 71, func(p Probe) {
		probes = append(probes, p)
	})

	assert.Equal(t, Result{Index: 6, Steps: 4}, res)
	assert.Equal(t, []Probe{
		{Step: 1, Low: 0, High: 9, Mid: 4, State: Searching},
		{Step: 2, Low: 5, High: 9, Mid: 7, State: Searching},
		{Step: 3, Low: 5, High: 6, Mid: 5, State: Searching},
		{Step: 4, Low: 6, High: 6, Mid: 6, State: Found},
	}, probes)
}

func TestBinaryTrace_Exhausted(t *testing.T) {
	var probes []Probe
	res := BinaryTrace([]int{10, 20, 30}, 25, func(p Probe) {
		probes = append(probes, p)
	})

	assert.False(t, res.Found())
	require.Len(t, probes, res.Steps+1)

	last := probes[len(probes)-1]
	assert.Equal(t, Exhausted, last.State)
	assert.Equal(t, NotFound, last.Mid)
	assert.Greater(t, last.Low, last.High)
}

func TestBinaryTrace_EmptyEmitsOnlyExhausted(t *testing.T) {
	var probes []Probe
	BinaryTrace([]int{}, 1, func(p Probe) {
		probes = append(probes, p)
	})

	assert.Equal(t, []Probe{{Step: 0, Low: 0, High: -1, Mid: NotFound, State: Exhausted}}, probes)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, Range(3, 5))
	assert.Equal(t, []int{-1, 0, 1}, Range(-1, 1))
	assert.Equal(t, []int{7}, Range(7, 7))
	assert.Empty(t, Range(5, 3))
}

func TestSelfCheck(t *testing.T) {
	assert.NoError(t, SelfCheck())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "searching", Searching.String())
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "unknown", State(9).String())
}
