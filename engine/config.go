package engine

import (
	"time"

	"github.com/mirenbz/dna/timeslice"
)

// Algorithm selects the per-slice optimizer.
type Algorithm string

// The two supported optimizers.
const (
	AlgorithmGenetic Algorithm = "genetic"
	AlgorithmGreedy  Algorithm = "greedy"
)

// Config is the full PolarizationEngine configuration. Zero-value fields
// left unset are filled in by normalize() per its fallback table.
type Config struct {
	Algorithm     Algorithm
	NumClusters   int
	NumParents    int
	NumIterations int
	ElitePct      float64
	MutPct        float64
	Normalize     bool

	TimeWindow timeslice.TimeWindow
	WindowSize int
	Kernel     timeslice.Kernel
	IndentTime bool
	Start      time.Time
	Stop       time.Time

	Variable1               string
	Variable1IsDocumentAttr bool
	Variable2               string
	Variable2IsDocumentAttr bool
	Qualifier               string
	QualifierIsDocumentAttr bool

	// RandomSeed seeds the master RNG. Zero means nondeterministic: a
	// fresh seed is drawn from the wall clock at Compute time.
	RandomSeed int64
}

// normalize returns a validated copy of cfg, substituting defaults for
// out-of-range fields and reporting each substitution to sink. An invalid
// config is never fatal.
func (cfg Config) normalize(sink EventSink) Config {
	out := cfg

	switch out.Algorithm {
	case AlgorithmGenetic, AlgorithmGreedy:
	default:
		sink.Warning("engine: invalid algorithm %q, using %q", out.Algorithm, AlgorithmGreedy)
		out.Algorithm = AlgorithmGreedy
	}

	if out.NumClusters <= 1 {
		sink.Warning("engine: invalid numClusters %d, using 2", out.NumClusters)
		out.NumClusters = 2
	}
	if out.NumParents <= 0 {
		sink.Warning("engine: invalid numParents %d, using 50", out.NumParents)
		out.NumParents = 50
	}
	if out.NumIterations <= 0 {
		sink.Warning("engine: invalid numIterations %d, using 1000", out.NumIterations)
		out.NumIterations = 1000
	}
	if out.ElitePct < 0 || out.ElitePct > 1 {
		sink.Warning("engine: invalid elitePct %v, using 0.1", out.ElitePct)
		out.ElitePct = 0.1
	}
	if out.MutPct < 0 || out.MutPct > 1 {
		sink.Warning("engine: invalid mutPct %v, using 0.1", out.MutPct)
		out.MutPct = 0.1
	}

	switch out.TimeWindow {
	case timeslice.WindowNone, timeslice.WindowMinutes, timeslice.WindowHours,
		timeslice.WindowDays, timeslice.WindowWeeks, timeslice.WindowMonths, timeslice.WindowYears:
	default:
		sink.Warning("engine: invalid timeWindow %q, using %q", out.TimeWindow, timeslice.WindowNone)
		out.TimeWindow = timeslice.WindowNone
	}

	if out.TimeWindow == timeslice.WindowNone {
		if out.WindowSize != 0 {
			sink.Warning("engine: windowSize must be 0 when timeWindow is \"no\", using 0")
			out.WindowSize = 0
		}
	} else {
		if out.WindowSize <= 0 {
			sink.Warning("engine: invalid windowSize %d, using 10", out.WindowSize)
			out.WindowSize = 10
		} else if out.WindowSize%2 != 0 {
			sink.Warning("engine: odd windowSize %d, rounding up to %d", out.WindowSize, out.WindowSize+1)
			out.WindowSize++
		}

		switch out.Kernel {
		case timeslice.KernelUniform, timeslice.KernelTriangular, timeslice.KernelEpanechnikov, timeslice.KernelGaussian:
		default:
			sink.Warning("engine: invalid kernel %q, using %q", out.Kernel, timeslice.KernelUniform)
			out.Kernel = timeslice.KernelUniform
		}
	}

	return out
}
