// SPDX-License-Identifier: MIT
package timeslice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirenbz/dna/statement"
	"github.com/mirenbz/dna/timeslice"
)

func daySpanStore(t *testing.T, days int) *statement.Store {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stmts := make([]statement.Statement, 0, days)
	for d := 0; d < days; d++ {
		stmts = append(stmts, statement.New(
			"s", base.AddDate(0, 0, d),
			map[string]statement.Value{
				"variable1": statement.StringValue("actorA"),
				"variable2": statement.StringValue("topicX"),
			},
		))
	}
	return statement.NewStore(stmts)
}

func TestBuildWindowNoneEmptyYieldsOneSlice(t *testing.T) {
	store := statement.NewStore(nil)
	slices, err := timeslice.Build(context.Background(), store, timeslice.Config{
		TimeWindow: timeslice.WindowNone,
		Variable1:  "variable1",
		Variable2:  "variable2",
	})
	require.NoError(t, err)
	require.Len(t, slices, 1)
	require.Equal(t, 0, len(slices[0].Skeleton.Labels))
}

// TestBuildDaysIndented covers daily statements spanning 20 days (21
// statements, day 0 to day 20), windowSize=4, indentTime=true, uniform
// kernel: the indented range should yield 20-4+1 = 17 slices whose
// (start,end) straddle the midpoint by 2 days.
func TestBuildDaysIndented(t *testing.T) {
	store := daySpanStore(t, 21)
	cfg := timeslice.Config{
		TimeWindow: timeslice.WindowDays,
		WindowSize: 4,
		Kernel:     timeslice.KernelUniform,
		IndentTime: true,
		Variable1:  "variable1",
		Variable2:  "variable2",
	}
	slices, err := timeslice.Build(context.Background(), store, cfg)
	require.NoError(t, err)
	require.Len(t, slices, 17)

	for _, sl := range slices {
		gotLo := sl.Skeleton.Midpoint.Sub(sl.Skeleton.Start)
		gotHi := sl.Skeleton.End.Sub(sl.Skeleton.Midpoint)
		require.LessOrEqual(t, gotLo, 48*time.Hour)
		require.LessOrEqual(t, gotHi, 48*time.Hour)
	}
}

func TestBuildGaussianSharesGlobalLabels(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stmts := []statement.Statement{
		statement.New("1", base, map[string]statement.Value{
			"variable1": statement.StringValue("a"),
			"variable2": statement.StringValue("x"),
		}),
		statement.New("2", base.AddDate(0, 0, 5), map[string]statement.Value{
			"variable1": statement.StringValue("b"),
			"variable2": statement.StringValue("y"),
		}),
	}
	store := statement.NewStore(stmts)
	slices, err := timeslice.Build(context.Background(), store, timeslice.Config{
		TimeWindow: timeslice.WindowDays,
		WindowSize: 2,
		Kernel:     timeslice.KernelGaussian,
		Variable1:  "variable1",
		Variable2:  "variable2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, slices)
	for _, sl := range slices {
		require.Len(t, sl.Skeleton.Labels, 2)
	}
}

func TestBuildRejectsOddWindowSize(t *testing.T) {
	store := daySpanStore(t, 5)
	_, err := timeslice.Build(context.Background(), store, timeslice.Config{
		TimeWindow: timeslice.WindowDays,
		WindowSize: 3,
		Kernel:     timeslice.KernelUniform,
		Variable1:  "variable1",
		Variable2:  "variable2",
	})
	require.ErrorIs(t, err, timeslice.ErrInvalidWindowSize)
}
