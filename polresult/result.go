// SPDX-License-Identifier: MIT
package polresult

import "time"

// Result is the per-slice optimizer outcome: the quality trajectory
// across iterations, the final best membership vector, and the slice's
// row labels and timestamps.
type Result struct {
	MaxQArray []float64
	AvgQArray []float64
	SdQArray  []float64

	MaxQ        float64
	Memberships []int
	RowNames    []string

	EarlyConvergence bool

	Start    time.Time
	Midpoint time.Time
	End      time.Time
}

// Degenerate builds the degenerate result emitted for empty or
// too-small slices. An empty slice is not surfaced as an error to the
// caller.
func Degenerate(start, midpoint, end time.Time) Result {
	return Result{
		MaxQArray:        []float64{0},
		AvgQArray:        []float64{0},
		SdQArray:         []float64{0},
		MaxQ:             0,
		Memberships:      []int{},
		RowNames:         []string{},
		EarlyConvergence: true,
		Start:            start,
		Midpoint:         midpoint,
		End:              end,
	}
}

// TimeSeries is an ordered sequence of Result, one per slice, in
// chronological order.
type TimeSeries []Result
