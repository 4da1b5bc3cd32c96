package aggregator

import (
	"github.com/mirenbz/dna/pmatrix"
)

// OneMode is a one-mode projection Aggregator. For every ordered pair of
// actors (i, j) in the skeleton's label set it walks the BucketArray's
// concept dimension and, per concept, compares the two actors' qualifier
// distributions:
//
//   - agreement on a concept is the overlap between the actors' counts at
//     matching qualifier indices (same stance);
//   - disagreement is the overlap between counts at differing qualifier
//     indices (opposing stance).
//
// The congruence role reports the agreement sum per concept; the conflict
// role reports the disagreement sum. Both are averaged over the concepts
// at least one of the two actors spoke about (isolates, concepts neither
// actor touched, do not enter the average).
type OneMode struct{}

// Build implements pmatrix.Aggregator.
func (OneMode) Build(skeleton pmatrix.Skeleton, buckets *pmatrix.BucketArray, role pmatrix.Role) (*pmatrix.Matrix, error) {
	m, err := skeleton.NewMatrix(string(role))
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		return m, nil
	}

	n1, n2, nq := buckets.Dims()
	if n1 != m.N() {
		return nil, pmatrix.ErrDimensionMismatch
	}

	countsI := make([]int, nq)
	countsJ := make([]int, nq)

	for i := 0; i < n1; i++ {
		for j := 0; j < n1; j++ {
			if i == j {
				continue
			}
			var sum float64
			var active int
			for c := 0; c < n2; c++ {
				var totalI, totalJ int
				for q := 0; q < nq; q++ {
					countsI[q] = len(buckets.At(i, c, q))
					countsJ[q] = len(buckets.At(j, c, q))
					totalI += countsI[q]
					totalJ += countsJ[q]
				}
				if totalI == 0 && totalJ == 0 {
					continue
				}
				active++
				switch role {
				case pmatrix.RoleCongruence:
					sum += agreement(countsI, countsJ)
				case pmatrix.RoleConflict:
					sum += disagreement(countsI, countsJ)
				default:
					return nil, pmatrix.ErrUnknownRole
				}
			}
			if active > 0 {
				if err := m.Set(i, j, sum/float64(active)); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

func agreement(a, b []int) float64 {
	var s float64
	for q := range a {
		s += float64(min(a[q], b[q]))
	}
	return s
}

func disagreement(a, b []int) float64 {
	var s float64
	for q1 := range a {
		for q2 := range b {
			if q1 == q2 {
				continue
			}
			s += float64(min(a[q1], b[q2]))
		}
	}
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
