package orbitsim

// RotateToTangentFrame rotates a vector expressed relative to a tangent
// direction into the inertial frame, the way the teacher's R1/R2/R3 family
// rotates a vector between reference frames. tangent must already be a
// unit vector; burn_segment.go uses this to turn a burn's stored
// (prograde, normal) Δv into inertial-frame Δv.
//
// Grounded on original_source burn.rs::get_absolute_delta_v: rotating by
// the tangent direction's angle is equivalent to the 2x2 rotation matrix
// built from tangent's own (cos, sin) pair.
func RotateToTangentFrame(v, tangent Vec2) Vec2 {
	return Vec2{
		v.X*tangent.X - v.Y*tangent.Y,
		v.X*tangent.Y + v.Y*tangent.X,
	}
}

// chainToParent walks an entity's parent chain, summing position and
// velocity, the way the teacher's ToXCentric walks from one CelestialObject
// frame to another by re-deriving the orbit at the target origin. Here
// frames are purely translational (no rotated reference frames in a 2D
// non-rotating inertial model), so the chain is a running vector sum
// rather than a matrix product.
func chainToParent(ctx Context, entity Entity, root Entity) (Vec2, Vec2, error) {
	pos, vel := Vec2{}, Vec2{}
	cur := entity
	for {
		p, v, ok := ctx.StateRelativeToParent(cur)
		if !ok {
			return Vec2{}, Vec2{}, ErrNoParent
		}
		pos = pos.Add(p)
		vel = vel.Add(v)
		parent, ok := ctx.Parent(cur)
		if !ok {
			return Vec2{}, Vec2{}, ErrNoParent
		}
		if parent == root {
			return pos, vel, nil
		}
		cur = parent
	}
}
