package orbitsim

import "math"

// OrbitPoint pins down a single instant along a Conic: the true longitude,
// the simulation time, the time since periapsis passage, and the resulting
// position/velocity. A Conic alone only describes the orbit's shape; an
// OrbitPoint is where an object actually sits on it.
type OrbitPoint struct {
	theta              float64
	time               float64
	timeSincePeriapsis float64
	position           Vec2
	velocity           Vec2
}

// NewOrbitPoint places a point on conic at the given simulation time and
// position (position must already lie on conic; this is typically called
// with a position taken from a previous OrbitPoint or from an entity's
// current Cartesian state).
func NewOrbitPoint(conic *Conic, position Vec2, time float64) OrbitPoint {
	theta := math.Atan2(position.Y, position.X)
	return OrbitPoint{
		theta:              theta,
		time:               time,
		timeSincePeriapsis: conic.TimeSincePeriapsis(theta),
		position:           position,
		velocity:           conic.Velocity(position, theta),
	}
}

// Next advances the point by deltaTime along conic.
func (p OrbitPoint) Next(conic *Conic, deltaTime float64) OrbitPoint {
	time := p.time + deltaTime
	timeSincePeriapsis := p.timeSincePeriapsis + deltaTime
	theta := conic.ThetaFromTimeSincePeriapsis(timeSincePeriapsis)
	position := conic.Position(theta)
	return OrbitPoint{
		theta:              theta,
		time:               time,
		timeSincePeriapsis: timeSincePeriapsis,
		position:           position,
		velocity:           conic.Velocity(position, theta),
	}
}

func (p OrbitPoint) Theta() float64              { return p.theta }
func (p OrbitPoint) Position() Vec2              { return p.position }
func (p OrbitPoint) Velocity() Vec2              { return p.velocity }
func (p OrbitPoint) Time() float64               { return p.time }
func (p OrbitPoint) TimeSincePeriapsis() float64 { return p.timeSincePeriapsis }

// IsAfter reports whether p comes strictly after other in simulation time.
func (p OrbitPoint) IsAfter(other OrbitPoint) bool {
	return p.time > other.time
}
