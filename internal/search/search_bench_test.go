package search

import "testing"

func benchSeq(n int) []int {
	return Range(0, n-1)
}

func BenchmarkBinary_1e6(b *testing.B) {
	seq := benchSeq(1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Binary(seq, i%len(seq))
	}
}

func BenchmarkLinear_1e4(b *testing.B) {
	seq := benchSeq(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Linear(seq, i%len(seq))
	}
}
