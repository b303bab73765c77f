package orbitsim

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
	twoPi   = 2 * math.Pi
)

// Vec2 is a 2D Cartesian vector: everything in this module lives in the
// orbital plane, so there is no third component to carry around.
type Vec2 struct {
	X, Y float64
}

// Norm returns the magnitude of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the unit vector of v, or the zero vector if v is (near) zero.
func (v Vec2) Unit() Vec2 {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Vec2{}
	}
	return Vec2{v.X / n, v.Y / n}
}

// Dot returns the inner product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar (z-component) cross product of v and w: in 2D
// this is what decides orbital direction (prograde/retrograde).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Angle returns the angle of v from the +X axis, in [0, 2π).
func (v Vec2) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += twoPi
	}
	return a
}

// FromPolar builds a Vec2 from a magnitude and an angle (radians).
func FromPolar(r, theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{r * c, r * s}
}

// rotate2D returns the 2x2 rotation matrix that rotates a vector by theta
// radians counterclockwise, built via gonum/mat the way the teacher builds
// its 3x3 R1/R2/R3 direction-cosine matrices in rotation.go.
func rotate2D(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// rotateVec rotates v by theta radians counterclockwise using rotate2D,
// mirroring the teacher's MxV33 matrix-times-vector idiom.
func rotateVec(v Vec2, theta float64) Vec2 {
	r := rotate2D(theta)
	in := mat.NewVecDense(2, []float64{v.X, v.Y})
	var out mat.VecDense
	out.MulVec(r, in)
	return Vec2{out.AtVec(0), out.AtVec(1)}
}

// sign returns the sign of v, treating values within 1e-12 of zero as
// positive (matches the teacher's Sign in math.go).
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// wrapTwoPi reduces theta into [0, 2π).
func wrapTwoPi(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}
