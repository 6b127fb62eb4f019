package clusterest_test

import (
	"fmt"
	"log"

	"github.com/TrevorS/clusterest"
)

func ExampleEstimate() {
	candidates, err := clusterest.NewMatrix([][]int16{
		{1, 3, 4},
		{2, 5, 6},
		{75, 34, 12},
		{234, 42, 122},
		{4, 2, 1},
		{99, 12, 40},
		{57, 27, 11},
		{20, 30, 20},
	})
	if err != nil {
		log.Fatal(err)
	}

	centers, err := clusterest.Estimate(candidates, 2, 0.19, 0.2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(centers.ToSlices())
	// Output: [[1 3 4] [57 27 11] [75 34 12] [20 30 20]]
}

func ExampleEstimateWithConfig() {
	candidates, err := clusterest.NewMatrix([][]int16{{5, 5, 5}})
	if err != nil {
		log.Fatal(err)
	}

	cfg := clusterest.DefaultConfig()
	result, err := clusterest.EstimateWithConfig(candidates, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Centers.ToSlices(), result.Potentials, result.StopReason)
	// Output: [[5 5 5]] [1] no_peak
}
