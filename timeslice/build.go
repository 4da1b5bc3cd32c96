// SPDX-License-Identifier: MIT
package timeslice

import (
	"context"
	"time"

	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/statement"
)

// Build generates the sequence of slices for cfg over src's filtered
// statement stream. When cfg.TimeWindow == WindowNone, TimeSlicer is
// bypassed and exactly one slice spanning every filtered statement is
// returned.
func Build(ctx context.Context, src statement.Source, cfg Config) ([]Slice, error) {
	if cfg.TimeWindow == WindowNone {
		return buildSingle(ctx, src, cfg)
	}
	switch cfg.TimeWindow {
	case WindowMinutes, WindowHours, WindowDays, WindowWeeks, WindowMonths, WindowYears:
	default:
		return nil, ErrUnknownTimeWindow
	}
	if cfg.WindowSize <= 0 || cfg.WindowSize%2 != 0 {
		return nil, ErrInvalidWindowSize
	}
	switch cfg.Kernel {
	case KernelUniform, KernelTriangular, KernelEpanechnikov, KernelGaussian:
	default:
		return nil, ErrUnknownKernel
	}

	stmts, err := src.LoadAndFilter(ctx)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return []Slice{}, nil
	}

	first := stmts[0].Timestamp
	last := stmts[len(stmts)-1].Timestamp
	b := maxTime(cfg.Start, first)
	e := minTime(cfg.Stop, last)
	// Per-slice windows are clamped to the range before indentation, so
	// with IndentTime every window spans half units on both sides of γ.
	rangeStart, rangeEnd := b, e

	half := cfg.WindowSize / 2
	if cfg.IndentTime {
		b = addUnits(b, cfg.TimeWindow, half)
		e = addUnits(e, cfg.TimeWindow, -half)
	}
	if e.Before(b) {
		return []Slice{}, nil
	}

	var globalV1, globalV2, globalQ []string
	if cfg.Kernel == KernelGaussian {
		if globalV1, err = src.ExtractLabels(stmts, cfg.Variable1, cfg.Variable1IsDocumentAttr); err != nil {
			return nil, err
		}
		if globalV2, err = src.ExtractLabels(stmts, cfg.Variable2, cfg.Variable2IsDocumentAttr); err != nil {
			return nil, err
		}
		if globalQ, err = qualifierLabels(ctx, src, cfg, stmts); err != nil {
			return nil, err
		}
	}

	var slices []Slice
	for gamma := b; !gamma.After(e); gamma = addUnits(gamma, cfg.TimeWindow, 1) {
		var (
			windowStart, windowEnd time.Time
			v1, v2, q              []string
			bandStmts              []statement.Statement
		)

		if cfg.Kernel == KernelGaussian {
			windowStart, windowEnd = b, e
			v1, v2, q = globalV1, globalV2, globalQ
			bandStmts = stmts
		} else {
			lo := addUnits(gamma, cfg.TimeWindow, -half)
			hi := addUnits(gamma, cfg.TimeWindow, half)
			windowStart = maxTime(rangeStart, lo)
			windowEnd = minTime(rangeEnd, hi)
			// Band is open on both ends: statements exactly at the boundary
			// timestamps are excluded.
			bandStmts = filterOpenBand(stmts, windowStart, windowEnd)

			if v1, err = src.ExtractLabels(bandStmts, cfg.Variable1, cfg.Variable1IsDocumentAttr); err != nil {
				return nil, err
			}
			if v2, err = src.ExtractLabels(bandStmts, cfg.Variable2, cfg.Variable2IsDocumentAttr); err != nil {
				return nil, err
			}
			if q, err = qualifierLabels(ctx, src, cfg, bandStmts); err != nil {
				return nil, err
			}
		}

		buckets := pmatrix.NewBucketArray(v1, v2, q)
		for _, st := range bandStmts {
			// Labels were derived from bandStmts itself (or its Gaussian
			// superset), so every statement's own attribute value is
			// always a known label; a miss can only happen for a
			// statement missing the attribute entirely, which we skip.
			_ = buckets.Add(st.MustLabel(cfg.Variable1), st.MustLabel(cfg.Variable2), qualifierKey(st, cfg), st)
		}

		sk := pmatrix.Skeleton{Labels: v1, Start: windowStart, Midpoint: gamma, End: windowEnd}
		slices = append(slices, Slice{Skeleton: sk, Buckets: buckets})
	}
	return slices, nil
}

func filterOpenBand(stmts []statement.Statement, lo, hi time.Time) []statement.Statement {
	out := make([]statement.Statement, 0)
	for _, st := range stmts {
		if st.Timestamp.After(lo) && st.Timestamp.Before(hi) {
			out = append(out, st)
		}
	}
	return out
}

// buildSingle implements the WindowNone bypass: the Aggregator is
// effectively invoked once over all filtered statements.
func buildSingle(ctx context.Context, src statement.Source, cfg Config) ([]Slice, error) {
	stmts, err := src.LoadAndFilter(ctx)
	if err != nil {
		return nil, err
	}

	v1, err := src.ExtractLabels(stmts, cfg.Variable1, cfg.Variable1IsDocumentAttr)
	if err != nil {
		return nil, err
	}
	v2, err := src.ExtractLabels(stmts, cfg.Variable2, cfg.Variable2IsDocumentAttr)
	if err != nil {
		return nil, err
	}
	q, err := qualifierLabels(ctx, src, cfg, stmts)
	if err != nil {
		return nil, err
	}

	buckets := pmatrix.NewBucketArray(v1, v2, q)
	for _, st := range stmts {
		_ = buckets.Add(st.MustLabel(cfg.Variable1), st.MustLabel(cfg.Variable2), qualifierKey(st, cfg), st)
	}

	var start, mid, end time.Time
	if len(stmts) > 0 {
		start = stmts[0].Timestamp
		end = stmts[len(stmts)-1].Timestamp
		mid = end
	}

	sk := pmatrix.Skeleton{Labels: v1, Start: start, Midpoint: mid, End: end}
	return []Slice{{Skeleton: sk, Buckets: buckets}}, nil
}
