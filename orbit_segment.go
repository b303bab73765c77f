package orbitsim

// OrbitSegment is a conic arc flown between a start point and an end point,
// with a current point somewhere between them (or at the start, for a
// still-unpredicted segment). The parent is referenced by Entity, never by
// pointer, per the Design Notes: frame changes at SOI transitions are made
// explicit rather than implied by a shared pointer graph.
type OrbitSegment struct {
	parent       Entity
	conic        *Conic
	startPoint   OrbitPoint
	endPoint     OrbitPoint
	currentPoint OrbitPoint
}

// NewOrbitSegment builds a conic around parent (of the given mass) passing
// through position/velocity at time, with start/end/current all pinned to
// that point.
func NewOrbitSegment(parent Entity, parentMass float64, position, velocity Vec2, time float64) (*OrbitSegment, error) {
	conic, err := NewConic(parentMass, position, velocity)
	if err != nil {
		return nil, err
	}
	start := NewOrbitPoint(conic, position, time)
	return &OrbitSegment{parent: parent, conic: conic, startPoint: start, endPoint: start, currentPoint: start}, nil
}

func (o *OrbitSegment) Parent() Entity         { return o.parent }
func (o *OrbitSegment) Conic() *Conic          { return o.conic }
func (o *OrbitSegment) StartPoint() OrbitPoint { return o.startPoint }
func (o *OrbitSegment) EndPoint() OrbitPoint   { return o.endPoint }
func (o *OrbitSegment) CurrentPoint() OrbitPoint {
	return o.currentPoint
}
func (o *OrbitSegment) StartTime() float64 { return o.startPoint.time }
func (o *OrbitSegment) EndTime() float64   { return o.endPoint.time }

// RemainingAngle returns how much true-longitude angle remains to be swept
// between the current point and the end point: if full orbits remain, this
// is always 2π (a full revolution's worth still needs covering before the
// partial final sweep matters).
func (o *OrbitSegment) RemainingAngle() float64 {
	if o.remainingOrbits() > 0 {
		return twoPi
	}
	remaining := o.endPoint.theta - o.currentPoint.theta
	if o.conic.Direction() == Clockwise {
		if remaining > 0 {
			remaining -= twoPi
		}
		return remaining
	}
	if remaining < 0 {
		remaining += twoPi
	}
	return remaining
}

func (o *OrbitSegment) remainingOrbits() int {
	return o.conic.RemainingOrbits(o.endPoint.time - o.currentPoint.time)
}

// IsFinished reports whether the current point has advanced past the end
// point.
func (o *OrbitSegment) IsFinished() bool {
	return o.currentPoint.IsAfter(o.endPoint)
}

// PeriapsisTime returns the simulation time at which periapsis passage last
// occurred, derived from the current point.
func (o *OrbitSegment) PeriapsisTime() float64 {
	return o.currentPoint.time - o.currentPoint.timeSincePeriapsis
}

// OvershotTime returns how far time has overshot the segment's end point.
func (o *OrbitSegment) OvershotTime(time float64) float64 {
	return time - o.endPoint.time
}

// TrimToEndAt re-derives the end point so the segment ends exactly at time,
// re-deriving theta from the closest periapsis passage rather than simply
// reusing the current point's angular rate (handles multi-orbit segments
// correctly).
func (o *OrbitSegment) TrimToEndAt(time float64) {
	timeSincePeriapsis := time - o.PeriapsisTime()
	theta := o.conic.ThetaFromTimeSincePeriapsis(timeSincePeriapsis)
	position := o.conic.Position(theta)
	o.endPoint = NewOrbitPoint(o.conic, position, time)
}

// Predict advances the end point by deltaTime (used by the predictor to
// extend the segment forward without touching "now").
func (o *OrbitSegment) Predict(deltaTime float64) {
	o.endPoint = o.endPoint.Next(o.conic, deltaTime)
}

// Update advances the current point by deltaTime (used once per frame to
// move the vessel forward in real time).
func (o *OrbitSegment) Update(deltaTime float64) {
	o.currentPoint = o.currentPoint.Next(o.conic, deltaTime)
}

// Reset rewinds the current point back to the start point.
func (o *OrbitSegment) Reset() {
	o.currentPoint = o.startPoint
}

// IsTimeWithin reports whether time falls strictly between the current and
// end points.
func (o *OrbitSegment) IsTimeWithin(time float64) bool {
	return time > o.currentPoint.time && time < o.endPoint.time
}

// ClosestPoint projects p onto the conic, in the orbit's own frame.
func (o *OrbitSegment) ClosestPoint(p Vec2) Vec2 {
	return o.conic.ClosestPoint(p)
}
