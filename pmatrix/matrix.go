// SPDX-License-Identifier: MIT
package pmatrix

import "time"

// Matrix is a named, dense N×N array of doubles with parallel row labels
// (equal to column labels, since congruence/conflict matrices are one-mode
// projections) and the three timestamps of the slice that produced it.
//
// Invariant: len(Labels) == N == the matrix dimension. The diagonal is
// zero once MatrixBuilder has processed the matrix.
type Matrix struct {
	Name     string
	Labels   []string
	Start    time.Time
	Midpoint time.Time
	End      time.Time

	n    int
	data []float64 // row-major, len == n*n
}

// New allocates an N×N Matrix of zeros, N = len(labels).
// Complexity: O(N²) time and memory.
func New(name string, labels []string, start, midpoint, end time.Time) (*Matrix, error) {
	n := len(labels)
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	lbl := make([]string, n)
	copy(lbl, labels)
	return &Matrix{
		Name:     name,
		Labels:   lbl,
		Start:    start,
		Midpoint: midpoint,
		End:      end,
		n:        n,
		data:     make([]float64, n*n),
	}, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int {
	if m == nil {
		return 0
	}
	return m.n
}

func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}
	return i*m.n + j, nil
}

// At returns the entry at (i, j).
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns the entry at (i, j).
func (m *Matrix) Set(i, j int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Raw returns the backing row-major flat buffer (read/write). Callers that
// need cache-friendly bulk access (matrixops, quality) use this instead of
// per-cell At/Set.
func (m *Matrix) Raw() []float64 {
	if m == nil {
		return nil
	}
	return m.data
}

// ZeroDiagonal sets every diagonal entry to zero. MatrixBuilder calls this
// once per role per slice; it is idempotent.
func (m *Matrix) ZeroDiagonal() {
	if m == nil {
		return
	}
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = 0
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := &Matrix{
		Name:     m.Name,
		Labels:   append([]string(nil), m.Labels...),
		Start:    m.Start,
		Midpoint: m.Midpoint,
		End:      m.End,
		n:        m.n,
		data:     append([]float64(nil), m.data...),
	}
	return cp
}

// Skeleton is the shape-and-metadata template the Aggregator collaborator
// fills with data: labels plus the three slice timestamps, no values.
type Skeleton struct {
	Labels   []string
	Start    time.Time
	Midpoint time.Time
	End      time.Time
}

// NewMatrix allocates a zero Matrix from this Skeleton, named name.
func (sk Skeleton) NewMatrix(name string) (*Matrix, error) {
	return New(name, sk.Labels, sk.Start, sk.Midpoint, sk.End)
}
