package genetic

import "errors"

// Sentinel errors for the genetic package. ERROR PRIORITY: dimension and
// parameter checks run before any solution is touched, so a caller never
// observes a partially-mutated population on failure.
var (
	// ErrEmptyPopulation indicates Iterate was called with an empty
	// population.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrInvalidParams indicates a non-positive numParents/numIterations
	// or an elitePct/mutPct outside [0, 1].
	ErrInvalidParams = errors.New("genetic: invalid parameters")
)
