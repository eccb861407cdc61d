package herd_test

import (
	"fmt"

	"github.com/katalvlaran/outbreak/herd"
)

// ExampleComputeMetrics shows measles with 95% vaccination coverage.
func ExampleComputeMetrics() {
	res, err := herd.ComputeMetrics(15, 0.95)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("threshold:", res.Threshold)
	fmt.Printf("Re: %.2f\n", res.Re)
	fmt.Println("controlled:", res.Controlled)
	// Output:
	// threshold: 93.3%
	// Re: 0.75
	// controlled: true
}

// ExampleThreshold_Value shows the "not applicable" state for R0 ≤ 1.
func ExampleThreshold_Value() {
	res, _ := herd.ComputeMetrics(0.8, 0)
	if _, ok := res.Threshold.Value(); !ok {
		fmt.Println("already below epidemic threshold")
	}
	// Output:
	// already below epidemic threshold
}
