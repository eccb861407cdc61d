package transmission_test

import (
	"testing"

	"github.com/katalvlaran/outbreak/transmission"
)

// BenchmarkBuildTree_Binary builds a full binary tree of 8 generations (511 nodes).
func BenchmarkBuildTree_Binary(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = transmission.BuildTree(2, 8)
	}
}

// BenchmarkBuildTree_Polio builds Re = 6 for 5 generations (9331 nodes).
func BenchmarkBuildTree_Polio(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = transmission.BuildTree(6, 5)
	}
}
