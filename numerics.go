package orbitsim

import "math"

const (
	derivativeDelta = 1.0e-2
	maxIterations   = 50
	bisectIterations = 20
)

// differentiate returns the first and second derivative of f at x via
// central finite differences with step derivativeDelta.
func differentiate(f func(float64) float64, x float64) (first, second float64) {
	f1 := f(x - derivativeDelta)
	f2 := f(x)
	f3 := f(x + derivativeDelta)
	fp1 := (f2 - f1) / derivativeDelta
	fp2 := (f3 - f2) / derivativeDelta
	first = (fp1 + fp2) / 2
	second = (fp2 - fp1) / derivativeDelta
	return
}

// newtonMinimize finds a local extremum of f near startingX via
// Newton-Raphson on the first derivative (i.e. root-finding f'). Returns
// (x, false) if it fails to converge within maxIterations -- callers treat
// that as "no event" per spec §7, never as an error.
func newtonMinimize(f func(float64) float64, startingX float64) (float64, bool) {
	x := startingX
	eps := orbitsimConfig().NewtonEpsilon
	for i := 0; i < maxIterations; i++ {
		first, second := differentiate(f, x)
		delta := -first / second
		if math.Abs(delta) < eps {
			return x, true
		}
		x += delta
	}
	return x, false
}

// newtonRoot finds a root of f near startingX via plain Newton-Raphson.
// Returns (x, false) on non-convergence, same contract as newtonMinimize.
func newtonRoot(f func(float64) float64, startingX float64) (float64, bool) {
	x := startingX
	eps := orbitsimConfig().NewtonEpsilon
	for i := 0; i < maxIterations; i++ {
		f1 := f(x)
		f2 := f(x + derivativeDelta)
		derivative := (f2 - f1) / derivativeDelta
		delta := -f1 / derivative
		if math.Abs(delta) < eps {
			return x, true
		}
		x += delta
	}
	return x, false
}

// bisectRoot brackets a sign change of f between lo and hi over a fixed
// number of iterations, narrowing toward whichever half still contains the
// sign flip. Despite the name inherited from the original implementation
// (soi_change_finder.rs calls this "find minimum"), it locates a root, not
// an extremum -- it's used to seed starting points for newtonRoot, not to
// replace it.
func bisectRoot(f func(float64) float64, lo, hi float64) float64 {
	low, high := lo, hi
	mid := (low + high) / 2
	for i := 0; i < bisectIterations; i++ {
		sameSignAsLow := (f(mid) >= 0) == (f(low) >= 0)
		if sameSignAsLow {
			low = mid
		} else {
			high = mid
		}
		mid = (low + high) / 2
	}
	return mid
}
