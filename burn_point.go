package orbitsim

// BurnPoint is a single sample of a tabulated burn: Cartesian position and
// velocity under combined gravity-plus-thrust acceleration, at a given
// simulation time.
type BurnPoint struct {
	parentMass float64
	time       float64
	position   Vec2
	velocity   Vec2
}

// NewBurnPoint starts a burn's point table from position/velocity at time,
// around a parent of the given mass.
func NewBurnPoint(parentMass float64, position, velocity Vec2, time float64) BurnPoint {
	return BurnPoint{parentMass: parentMass, time: time, position: position, velocity: velocity}
}

// Next advances the point by deltaTime under gravity (from parentMass) plus
// the given constant burn acceleration, using semi-implicit (symplectic)
// Euler: velocity is updated first, then position is advanced using the new
// velocity. This keeps bounded orbits from gaining energy over long burns,
// unlike plain explicit Euler.
func (p BurnPoint) Next(deltaTime float64, burnAcceleration Vec2) BurnPoint {
	distance := p.position.Norm()
	gravityAccel := p.position.Unit().Scale(-GravitationalConstant * p.parentMass / (distance * distance))
	totalAccel := gravityAccel.Add(burnAcceleration)
	velocity := p.velocity.Add(totalAccel.Scale(deltaTime))
	position := p.position.Add(velocity.Scale(deltaTime))
	return BurnPoint{parentMass: p.parentMass, time: p.time + deltaTime, position: position, velocity: velocity}
}

func (p BurnPoint) Time() float64     { return p.time }
func (p BurnPoint) Position() Vec2    { return p.position }
func (p BurnPoint) Velocity() Vec2    { return p.velocity }
func (p BurnPoint) ParentMass() float64 { return p.parentMass }
