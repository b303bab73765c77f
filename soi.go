package orbitsim

import "math"

// SoiEventKind distinguishes the two sphere-of-influence transitions the
// finder looks for.
type SoiEventKind int

const (
	SoiExit SoiEventKind = iota
	SoiEntrance
)

// SoiEvent is the earliest upcoming SOI crossing found for a vessel: at
// Time, the vessel's parent becomes NewParent.
type SoiEvent struct {
	Time      float64
	Kind      SoiEventKind
	NewParent Entity
}

const thetaSampleCount = 100

// soiRadius returns R_soi(body) = a_body * (M_body/M_parent)^(2/5), the
// Design-level SOI formula, using body's own orbit around its parent. It
// returns false for a body with no parent (a root star has no SOI to
// exit).
func soiRadius(ctx Context, body Entity) (float64, bool) {
	parent, ok := ctx.Parent(body)
	if !ok {
		return 0, false
	}
	traj, ok := ctx.Trajectory(body)
	if !ok {
		return 0, false
	}
	seg := traj.FinalSegment()
	if seg == nil || seg.Kind() != SegmentOrbit {
		return 0, false
	}
	mass, _ := ctx.Mass(body)
	parentMass, _ := ctx.Mass(parent)
	a := seg.AsOrbit().Conic().SemiMajorAxis()
	return a * math.Pow(mass/parentMass, 2.0/5.0), true
}

func thetaAtTime(o *OrbitSegment, t float64) float64 {
	return o.Conic().ThetaFromTimeSincePeriapsis(t - o.PeriapsisTime())
}

func positionAtTime(o *OrbitSegment, t float64) Vec2 {
	return o.Conic().Position(thetaAtTime(o, t))
}

// sampleThetaDomain returns thetaSampleCount evenly spaced samples of true
// longitude across the conic's valid domain: all of [0, 2pi) for an
// ellipse, or the bounded range between the hyperbola's asymptote angles
// for a hyperbola (true anomaly is only defined in (-theta_inf, theta_inf)
// there).
func sampleThetaDomain(c *Conic) []float64 {
	thetas := make([]float64, thetaSampleCount)
	if c.Kind() == ConicEllipse {
		for i := range thetas {
			thetas[i] = float64(i) * twoPi / thetaSampleCount
		}
		return thetas
	}
	thetaInf := math.Acos(-1 / c.Eccentricity())
	margin := thetaInf * 0.01
	lo := -thetaInf + margin
	hi := thetaInf - margin
	for i := range thetas {
		trueAnomaly := lo + (hi-lo)*float64(i)/float64(thetaSampleCount-1)
		thetas[i] = c.ArgumentOfPeriapsis() + trueAnomaly
	}
	return thetas
}

// findEntranceCandidates returns Newton-refined candidate crossing times
// (unfiltered by window) for entity's final orbit O entering other's SOI.
// Grounded closely on soi_change_finder.rs::get_entity_entrance_time_estimates.
func findEntranceCandidates(ctx Context, O *OrbitSegment, other Entity) []float64 {
	otherTraj, ok := ctx.Trajectory(other)
	if !ok {
		return nil
	}
	otherSeg := otherTraj.FinalSegment()
	if otherSeg == nil || otherSeg.Kind() != SegmentOrbit {
		return nil
	}
	otherOrbit := otherSeg.AsOrbit()
	soi, ok := soiRadius(ctx, other)
	if !ok {
		return nil
	}

	signedDistance := func(theta float64) float64 {
		return otherOrbit.Conic().Position(theta).Norm() - O.Conic().Position(theta).Norm()
	}

	thetas := sampleThetaDomain(O.Conic())
	minX, minY := thetas[0], math.MaxFloat64
	maxX, maxY := thetas[0], -math.MaxFloat64
	for _, theta := range thetas {
		y := signedDistance(theta)
		if y < minY {
			minX, minY = theta, y
		}
		if y > maxY {
			maxX, maxY = theta, y
		}
	}

	refinedMinX, ok := newtonMinimize(signedDistance, minX)
	if !ok {
		return nil
	}
	refinedMinY := signedDistance(refinedMinX)
	if refinedMinY > soi {
		return nil
	}

	var startingThetas []float64
	if refinedMinY >= 0 {
		startingThetas = []float64{refinedMinX}
	} else {
		refinedMaxX, ok := newtonMinimize(signedDistance, maxX)
		if !ok {
			return nil
		}
		p1, p2 := math.Min(refinedMinX, refinedMaxX), math.Max(refinedMinX, refinedMaxX)
		p3 := p1 + twoPi
		startingThetas = []float64{
			bisectRoot(signedDistance, p1, p2),
			bisectRoot(signedDistance, p2, p3),
		}
	}

	var startingTimes []float64
	for _, theta := range startingThetas {
		t := O.Conic().TimeSincePeriapsis(theta) + O.PeriapsisTime()
		if period, isEllipse := O.Conic().Period(); isEllipse {
			if t < O.StartTime() {
				t += period
			}
		}
		startingTimes = append(startingTimes, t)
	}

	distanceFunctionTime := func(t float64) float64 {
		return positionAtTime(O, t).Sub(positionAtTime(otherOrbit, t)).Norm() - soi
	}

	var solutions []float64
	for _, t := range startingTimes {
		if root, ok := newtonRoot(distanceFunctionTime, t); ok {
			solutions = append(solutions, root)
		}
	}
	return solutions
}

// findExit searches for the time, after tNow and at or before horizon, at
// which the vessel's distance from parent first exceeds parent's own SOI
// radius. Coarse time-sampling brackets the crossing; Newton refines it --
// the same sample-then-refine idiom as the entrance finder, applied
// directly in the time domain per spec's "reduces to a 1-D root-find".
func findExit(ctx Context, O *OrbitSegment, parent Entity, tNow, horizon float64) (float64, bool) {
	soi, ok := soiRadius(ctx, parent)
	if !ok {
		return 0, false
	}
	f := func(t float64) float64 {
		r := positionAtTime(O, t).Norm()
		return r*r - soi*soi
	}
	const samples = 200
	span := horizon - tNow
	if span <= 0 {
		return 0, false
	}
	step := span / samples
	prev := f(tNow)
	for i := 1; i <= samples; i++ {
		t := tNow + step*float64(i)
		cur := f(t)
		if prev < 0 && cur >= 0 {
			root, ok := newtonRoot(f, t-step/2)
			if ok && root > tNow && root <= horizon {
				return root, true
			}
		}
		prev = cur
	}
	return 0, false
}

// siblings returns every child of parent recorded in ctx, other than
// entity itself.
func siblings(ctx Context, parent, entity Entity) []Entity {
	var result []Entity
	for _, child := range ctx.Children(parent) {
		if child == entity {
			continue
		}
		result = append(result, child)
	}
	return result
}

// FindSoiChange returns the earliest SOI crossing after tNow (up to
// horizon) for entity's final orbit segment, or false if none is found. On
// an exact tie, an entrance wins over an exit (spec tie-break rule).
func FindSoiChange(ctx Context, entity Entity, tNow, horizon float64) (SoiEvent, bool) {
	traj, ok := ctx.Trajectory(entity)
	if !ok {
		return SoiEvent{}, false
	}
	final := traj.FinalSegment()
	if final == nil || final.Kind() != SegmentOrbit {
		return SoiEvent{}, false
	}
	O := final.AsOrbit()
	parent := O.Parent()

	best, haveBest := SoiEvent{}, false

	if exitTime, ok := findExit(ctx, O, parent, tNow, horizon); ok {
		grandParent, ok := ctx.Parent(parent)
		if ok {
			best = SoiEvent{Time: exitTime, Kind: SoiExit, NewParent: grandParent}
			haveBest = true
		}
	}

	for _, other := range siblings(ctx, parent, entity) {
		for _, t := range findEntranceCandidates(ctx, O, other) {
			if t <= tNow || t > horizon {
				continue
			}
			if !haveBest || t < best.Time || (t == best.Time && best.Kind == SoiExit) {
				best = SoiEvent{Time: t, Kind: SoiEntrance, NewParent: other}
				haveBest = true
			}
		}
	}

	return best, haveBest
}
