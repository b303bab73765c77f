package orbitsim

import (
	"math"

	"golang.org/x/exp/rand"
)

// keplerReseedOffset derives a reseed offset in [-2.5, 2.5] for a
// non-convergent Kepler-equation solve. It is a pure function of the solve's
// own inputs rather than of wall-clock time, using an explicitly seeded
// source (golang.org/x/exp/rand, not the global math/rand state) so that
// resolving the same (eccentricity, mean anomaly) pair after a previous
// non-convergence always perturbs the seed identically: the trajectory
// predictor's output must not depend on call ordering or on how many other
// solves happened earlier in the process.
func keplerReseedOffset(eccentricity, meanAnomaly float64, attempt int) float64 {
	seed := math.Float64bits(eccentricity) ^ (math.Float64bits(meanAnomaly) << 1) ^ (uint64(attempt) * 0x9e3779b97f4a7c15)
	src := rand.NewSource(seed)
	r := rand.New(src)
	return (r.Float64() - 0.5) * 5.0
}
