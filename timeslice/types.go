// SPDX-License-Identifier: MIT
package timeslice

import (
	"errors"
	"time"

	"github.com/mirenbz/dna/pmatrix"
)

// Sentinel errors for the timeslice package.
var (
	// ErrInvalidWindowSize indicates WindowSize is not a positive even
	// number when TimeWindow != WindowNone. Build ignores WindowSize when
	// TimeWindow == WindowNone. Callers are expected to have already run
	// this through the engine's configuration fallback table; Build
	// itself treats a violation as a programmer error.
	ErrInvalidWindowSize = errors.New("timeslice: invalid window size")

	// ErrUnknownKernel indicates an unrecognized Kernel value.
	ErrUnknownKernel = errors.New("timeslice: unknown kernel")

	// ErrUnknownTimeWindow indicates an unrecognized TimeWindow value.
	ErrUnknownTimeWindow = errors.New("timeslice: unknown time window")
)

// TimeWindow selects the granularity of the sliding window, or WindowNone
// to bypass slicing entirely.
type TimeWindow string

// The supported sliding-window granularities.
const (
	WindowNone    TimeWindow = "no"
	WindowMinutes TimeWindow = "minutes"
	WindowHours   TimeWindow = "hours"
	WindowDays    TimeWindow = "days"
	WindowWeeks   TimeWindow = "weeks"
	WindowMonths  TimeWindow = "months"
	WindowYears   TimeWindow = "years"
)

// Kernel selects the weighting/banding rule used to assign statements to
// a slice centered at midpoint γ.
type Kernel string

// The four supported kernels. Only the Gaussian/non-Gaussian distinction
// affects BucketArray construction in this module; the kernel's weight
// function itself is the Aggregator collaborator's concern.
const (
	KernelUniform      Kernel = "uniform"
	KernelTriangular   Kernel = "triangular"
	KernelEpanechnikov Kernel = "epanechnikov"
	KernelGaussian     Kernel = "gaussian"
)

// Config configures slice generation.
type Config struct {
	TimeWindow TimeWindow
	WindowSize int // w; even, >= 2 when TimeWindow != WindowNone
	Kernel     Kernel
	IndentTime bool
	Start      time.Time // inclusive lower bound; zero means unbounded
	Stop       time.Time // inclusive upper bound; zero means unbounded

	Variable1               string
	Variable1IsDocumentAttr bool
	Variable2               string
	Variable2IsDocumentAttr bool
	Qualifier               string // "" means no qualifier
	QualifierIsDocumentAttr bool
}

// Slice pairs a Matrix Skeleton with the BucketArray built for it.
type Slice struct {
	Skeleton pmatrix.Skeleton
	Buckets  *pmatrix.BucketArray
}
