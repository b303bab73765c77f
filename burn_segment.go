package orbitsim

// BurnSegment is a finite, tabulated maneuver: a constant-magnitude thrust
// applied along a tangent direction frozen at creation time (adjust never
// re-derives it -- see SPEC_FULL.md). Its point table is recomputed
// eagerly any time deltaV changes, at the fixed BurnStep from config.
type BurnSegment struct {
	parent           Entity
	tangentDirection Vec2
	deltaV           Vec2 // relative to tangentDirection
	currentPoint     BurnPoint
	points           []BurnPoint
}

// NewBurnSegment starts a zero-deltaV burn at startTime, with the tangent
// direction fixed for the segment's lifetime.
func NewBurnSegment(parent Entity, parentMass float64, position, velocity, tangentDirection Vec2, startTime float64) *BurnSegment {
	start := NewBurnPoint(parentMass, position, velocity, startTime)
	b := &BurnSegment{parent: parent, tangentDirection: tangentDirection, currentPoint: start}
	b.recomputePoints(start)
	return b
}

func (b *BurnSegment) Parent() Entity             { return b.parent }
func (b *BurnSegment) StartPoint() BurnPoint      { return b.points[0] }
func (b *BurnSegment) EndPoint() BurnPoint        { return b.points[len(b.points)-1] }
func (b *BurnSegment) CurrentPoint() BurnPoint    { return b.currentPoint }
func (b *BurnSegment) TangentDirection() Vec2     { return b.tangentDirection }
func (b *BurnSegment) TotalDeltaV() float64       { return b.deltaV.Norm() }
func (b *BurnSegment) StartTime() float64         { return b.StartPoint().time }
func (b *BurnSegment) EndTime() float64           { return b.EndPoint().time }

// Duration is how long the burn takes to deliver its total deltaV at the
// configured constant acceleration magnitude.
func (b *BurnSegment) Duration() float64 {
	return b.TotalDeltaV() / orbitsimConfig().BurnAccelerationMag
}

func (b *BurnSegment) absoluteDeltaV() Vec2 {
	return RotateToTangentFrame(b.deltaV, b.tangentDirection)
}

func (b *BurnSegment) absoluteAcceleration() Vec2 {
	return b.absoluteDeltaV().Unit().Scale(orbitsimConfig().BurnAccelerationMag)
}

// Adjust adds adjustment to the burn's stored deltaV and recomputes the
// point table from the (unchanged) start point.
func (b *BurnSegment) Adjust(adjustment Vec2) {
	b.deltaV = b.deltaV.Add(adjustment)
	b.recomputePoints(b.StartPoint())
}

func (b *BurnSegment) recomputePoints(start BurnPoint) {
	step := orbitsimConfig().BurnStep
	threshold := start.time + b.Duration()
	points := []BurnPoint{start}
	current := start
	for {
		next := current.Next(step, b.absoluteAcceleration())
		if next.time > threshold {
			break
		}
		points = append(points, next)
		current = next
	}
	b.points = points
}

// PointAtTime returns the (possibly interpolated-by-one-step) burn point at
// time, extrapolating from the nearest tabulated point below it.
func (b *BurnSegment) PointAtTime(time float64) BurnPoint {
	step := orbitsimConfig().BurnStep
	timeAfterStart := time - b.StartPoint().time
	idx := int(timeAfterStart / step)
	if idx < 0 || idx >= len(b.points) {
		return b.EndPoint()
	}
	deltaTime := timeAfterStart - float64(idx)*step
	return b.points[idx].Next(deltaTime, b.absoluteAcceleration())
}

// IsTimeWithin reports whether time falls strictly within the burn's span.
func (b *BurnSegment) IsTimeWithin(time float64) bool {
	return time > b.StartPoint().time && time < b.EndPoint().time
}

// IsFinished reports whether the current point has advanced past the end
// of the tabulated burn.
func (b *BurnSegment) IsFinished() bool {
	return b.currentPoint.time > b.EndPoint().time
}

// OvershotTime returns how far time has overshot the burn's end.
func (b *BurnSegment) OvershotTime(time float64) float64 {
	return time - b.EndPoint().time
}

// Reset rewinds the current point back to the start of the burn.
func (b *BurnSegment) Reset() {
	b.currentPoint = b.StartPoint()
}

// Update advances the current point by deltaTime.
func (b *BurnSegment) Update(deltaTime float64) {
	b.currentPoint = b.currentPoint.Next(deltaTime, b.absoluteAcceleration())
}
