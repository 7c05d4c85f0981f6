// Command timelinedemo renders a simulated live feed with the timeline chart.
//
// Samples arrive at random intervals as a random walk, the chart is
// recomputed after every sample and drawn on a simulated 60 Hz cadence.
// The final frame is written as PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
