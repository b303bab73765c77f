package orbitsim

import "math"

// GravitationalConstant is G in m^3 kg^-1 s^-2.
const GravitationalConstant = 6.674e-11

// OrbitDirection records whether an orbit is traversed counterclockwise or
// clockwise as theta increases, derived once at conic construction from the
// sign of position cross velocity.
type OrbitDirection int

const (
	CounterClockwise OrbitDirection = iota
	Clockwise
)

func directionFromState(position, velocity Vec2) OrbitDirection {
	if sign(position.Cross(velocity)) < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// ConicKind tags which closed-form family a Conic follows. Per the Design
// Notes, conic dispatch is a tagged variant with a shared operation set
// rather than a virtual-method interface hierarchy: every Conic method
// switches on kind internally instead of forwarding to an Ellipse/Hyperbola
// implementation behind an interface.
type ConicKind int

const (
	ConicEllipse ConicKind = iota
	ConicHyperbola
)

// Conic describes the static shape and orientation of a two-body orbit: the
// semi-major axis, eccentricity, argument of periapsis, and specific
// angular momentum. It says nothing about where along the orbit an object
// currently sits (see OrbitPoint for that).
type Conic struct {
	kind                    ConicKind
	mu                      float64 // standard gravitational parameter, G*parentMass
	semiMajorAxis           float64
	eccentricity            float64
	direction               OrbitDirection
	argumentOfPeriapsis     float64
	specificAngularMomentum float64
	period                  float64 // only meaningful when kind == ConicEllipse
}

// transverseVelocity returns the component of velocity perpendicular to
// position: rotate velocity into the frame where position lies along +X,
// and take the resulting Y component.
func transverseVelocity(position, velocity Vec2) float64 {
	angle := -math.Atan2(position.Y, position.X)
	rotated := rotateVec(velocity, angle)
	return rotated.Y
}

func semiMajorAxisOf(position, velocity Vec2, mu float64) float64 {
	return 1 / ((2 / position.Norm()) - (velocity.Norm()*velocity.Norm())/mu)
}

func eccentricityOf(position, velocity Vec2, mu, sma float64) float64 {
	tv := transverseVelocity(position, velocity)
	rMag := position.Norm()
	radicand := 1 - (rMag*rMag*tv*tv)/(mu*sma)
	if radicand < 0 {
		// A circular orbit can round this just below zero.
		radicand = 0
	}
	return math.Sqrt(radicand)
}

// argumentOfPeriapsisOf uses the eccentricity-vector formula (the
// authoritative one per the Design Notes: it stays well-defined at any
// eccentricity, unlike formulas that divide by (1-e)).
func argumentOfPeriapsisOf(position, velocity Vec2, mu float64) float64 {
	vMagSq := velocity.Dot(velocity)
	rMag := position.Norm()
	eVec := position.Scale(vMagSq - mu/rMag).Sub(velocity.Scale(position.Dot(velocity))).Scale(1 / mu)
	return math.Atan2(eVec.Y, eVec.X)
}

func specificAngularMomentumOf(position, velocity Vec2) float64 {
	return position.Norm() * transverseVelocity(position, velocity)
}

func ellipsePeriod(mu, sma float64) float64 {
	return twoPi * math.Sqrt(sma*sma*sma/mu)
}

// NewConic builds the Conic (ellipse for e<=1, hyperbola otherwise) that a
// body of negligible mass at position/velocity around a parent of the given
// mass currently follows. It returns ErrDegenerateConic when the implied
// angular momentum is (numerically) zero, since no stable conic exists
// through the origin.
func NewConic(parentMass float64, position, velocity Vec2) (*Conic, error) {
	if parentMass <= 0 {
		return nil, ErrNonPositiveMass
	}
	if specificAngularMomentumOf(position, velocity) == 0 {
		return nil, ErrDegenerateConic
	}
	mu := GravitationalConstant * parentMass
	sma := semiMajorAxisOf(position, velocity, mu)
	ecc := eccentricityOf(position, velocity, mu, sma)
	direction := directionFromState(position, velocity)
	aop := argumentOfPeriapsisOf(position, velocity, mu)
	h := specificAngularMomentumOf(position, velocity)

	c := &Conic{
		mu:                      mu,
		semiMajorAxis:           sma,
		eccentricity:            ecc,
		direction:               direction,
		argumentOfPeriapsis:     aop,
		specificAngularMomentum: h,
	}
	if ecc <= 1 {
		c.kind = ConicEllipse
		c.period = ellipsePeriod(mu, sma)
	} else {
		c.kind = ConicHyperbola
	}
	return c, nil
}

func (c *Conic) Kind() ConicKind                  { return c.kind }
func (c *Conic) Eccentricity() float64            { return c.eccentricity }
func (c *Conic) SemiMajorAxis() float64           { return c.semiMajorAxis }
func (c *Conic) ArgumentOfPeriapsis() float64     { return c.argumentOfPeriapsis }
func (c *Conic) Direction() OrbitDirection        { return c.direction }
func (c *Conic) SpecificAngularMomentum() float64 { return c.specificAngularMomentum }
func (c *Conic) Mu() float64                      { return c.mu }

// Period returns the orbital period and true if the conic is an ellipse.
func (c *Conic) Period() (float64, bool) {
	if c.kind == ConicEllipse {
		return c.period, true
	}
	return 0, false
}

// SemiMinorAxis returns b: a*sqrt(1-e^2) for ellipses, a*sqrt(e^2-1) for
// hyperbolas (negative there, since a hyperbola's semi-major axis is
// negative).
func (c *Conic) SemiMinorAxis() float64 {
	a := c.semiMajorAxis
	e := c.eccentricity
	if c.kind == ConicEllipse {
		return a * math.Sqrt(1-e*e)
	}
	return a * math.Sqrt(e*e-1)
}

// ThetaFromTimeSincePeriapsis solves Kepler's equation for the true
// longitude (theta = true anomaly + argument of periapsis) at the given
// time since periapsis passage.
func (c *Conic) ThetaFromTimeSincePeriapsis(timeSincePeriapsis float64) float64 {
	var trueAnomaly float64
	switch c.kind {
	case ConicEllipse:
		meanAnomaly := (twoPi * timeSincePeriapsis) / c.period
		eccentricAnomaly := solveKeplerEllipse(c.eccentricity, meanAnomaly, 0)
		trueAnomaly = 2 * math.Atan(math.Sqrt((1+c.eccentricity)/(1-c.eccentricity))*math.Tan(eccentricAnomaly/2))
		if c.direction == Clockwise {
			trueAnomaly = -trueAnomaly
		}
	case ConicHyperbola:
		x := (c.mu * c.mu) / (c.specificAngularMomentum * c.specificAngularMomentum * c.specificAngularMomentum)
		meanAnomaly := x * timeSincePeriapsis * math.Pow(c.eccentricity*c.eccentricity-1, 1.5)
		eccentricAnomaly := solveKeplerHyperbola(c.eccentricity, meanAnomaly, 0)
		trueAnomaly = 2 * math.Atan(math.Sqrt((c.eccentricity+1)/(c.eccentricity-1))*math.Tanh(eccentricAnomaly/2))
	}
	return wrapTwoPi(trueAnomaly + c.argumentOfPeriapsis)
}

// TimeSincePeriapsis inverts ThetaFromTimeSincePeriapsis.
func (c *Conic) TimeSincePeriapsis(theta float64) float64 {
	trueAnomaly := theta - c.argumentOfPeriapsis
	switch c.kind {
	case ConicEllipse:
		eccentricAnomaly := 2 * math.Atan(math.Sqrt((1-c.eccentricity)/(1+c.eccentricity))*math.Tan(trueAnomaly/2))
		meanAnomaly := eccentricAnomaly - c.eccentricity*math.Sin(eccentricAnomaly)
		if c.direction == Clockwise {
			meanAnomaly = -meanAnomaly
		}
		return meanAnomaly * c.period / twoPi
	default: // ConicHyperbola
		eccentricAnomaly := 2 * math.Atanh(math.Sqrt((c.eccentricity-1)/(c.eccentricity+1))*math.Tan(trueAnomaly/2))
		meanAnomaly := c.eccentricity*math.Sinh(eccentricAnomaly) - eccentricAnomaly
		x := (c.specificAngularMomentum * c.specificAngularMomentum * c.specificAngularMomentum) / (c.mu * c.mu)
		return meanAnomaly * x / math.Pow(c.eccentricity*c.eccentricity-1, 1.5)
	}
}

// Position returns the position at true longitude theta. The closed form is
// identical for ellipse and hyperbola once expressed in terms of true
// anomaly, so there is only one implementation.
func (c *Conic) Position(theta float64) Vec2 {
	trueAnomaly := theta - c.argumentOfPeriapsis
	radius := (c.semiMajorAxis * (1 - c.eccentricity*c.eccentricity)) / (1 + c.eccentricity*math.Cos(trueAnomaly))
	return FromPolar(radius, theta)
}

// Velocity returns the velocity at the given position/theta pair (position
// must be Position(theta); passed in rather than recomputed since callers
// usually already have it).
func (c *Conic) Velocity(position Vec2, theta float64) Vec2 {
	trueAnomaly := theta - c.argumentOfPeriapsis
	radius := position.Norm()
	e := c.eccentricity
	dRdTheta := c.semiMajorAxis * e * (1 - e*e) * math.Sin(trueAnomaly) / math.Pow(e*math.Cos(trueAnomaly)+1, 2)
	s, cs := math.Sincos(theta)
	dPosdTheta := Vec2{
		dRdTheta*cs - radius*s,
		dRdTheta*s + radius*cs,
	}
	angularSpeed := c.specificAngularMomentum / (radius * radius)
	return dPosdTheta.Scale(angularSpeed)
}

// RemainingOrbits returns how many full revolutions fit in remainingTime.
// Hyperbolas never complete one, so they always return 0 (grounded on
// hyperbola.rs::get_remaining_orbits); a negative remainingTime also
// returns 0 rather than a negative count (see DESIGN.md).
func (c *Conic) RemainingOrbits(remainingTime float64) int {
	if c.kind == ConicHyperbola || remainingTime <= 0 {
		return 0
	}
	return int(remainingTime / c.period)
}

// ClosestPoint projects p onto the conic using the iterative
// Levi-Civita-style method from the original implementation. It is exact
// for ellipses and only approximate for hyperbolas (accurate near the
// asymptote line, degrading farther out) -- an inherited limitation, not a
// bug introduced here.
func (c *Conic) ClosestPoint(p Vec2) Vec2 {
	iterations := orbitsimConfig().ClosestPointIterations
	a := c.semiMajorAxis
	b := c.SemiMinorAxis()
	px, py := math.Abs(p.X), math.Abs(p.Y)

	if c.kind == ConicEllipse {
		t := math.Pi / 4
		for i := 0; i < iterations; i++ {
			x := a * math.Cos(t)
			y := b * math.Sin(t)
			ex := (a*a - b*b) * math.Pow(math.Cos(t), 3) / a
			ey := (b*b - a*a) * math.Pow(math.Sin(t), 3) / b
			rx, ry := x-ex, y-ey
			qx, qy := px-ex, py-ey
			r := Vec2{ry, rx}.Norm()
			q := Vec2{qy, qx}.Norm()
			deltaC := r * math.Asin((rx*qy-ry*qx)/(r*q))
			deltaT := deltaC / math.Sqrt(a*a*math.Sin(t)*math.Sin(t)+b*b*math.Cos(t)*math.Cos(t))
			t += deltaT
			t = math.Min(math.Pi/2, math.Max(0, t))
		}
		return Vec2{math.Copysign(a*math.Cos(t), p.X), math.Copysign(b*math.Sin(t), p.Y)}
	}

	t := -0.05
	for i := 0; i < iterations; i++ {
		x := -a * math.Cosh(t)
		y := -b * math.Sinh(t)
		ex := (a*a + b*b) * math.Pow(math.Cosh(t), 3) / a
		ey := -(b*b + a*a) * math.Pow(math.Sinh(t), 3) / b
		rx, ry := x-ex, y-ey
		qx, qy := px-ex, py-ey
		r := Vec2{ry, rx}.Norm()
		q := Vec2{qy, qx}.Norm()
		deltaC := r * math.Asinh((rx*qy-ry*qx)/(r*q))
		deltaT := deltaC / math.Sqrt(a*a*math.Sinh(t)*math.Sinh(t)+b*b*math.Cosh(t)*math.Cosh(t))
		t += deltaT
	}
	return Vec2{math.Copysign(a*math.Cosh(t), p.X), math.Copysign(b*math.Sinh(t), p.Y)}
}

// solveKeplerEllipse solves E - e*sin(E) = M via Newton-Raphson, seeded by
// the Mikkola/Markley approximation (see Conway 1986), retrying once from a
// deterministically reseeded offset if it fails to converge within 500
// iterations and panicking if the retry fails as well. Tolerance matches
// spec.md's Kepler-ellipse epsilon.
func solveKeplerEllipse(eccentricity, meanAnomaly, startOffset float64) float64 {
	eps := orbitsimConfig().KeplerEllipseEpsilon
	maxDeltaSq := eps * eps
	const maxAttempts = 500
	e := eccentricity
	M := meanAnomaly
	eccentricAnomaly := M + startOffset +
		(0.999999*4*e*M*(math.Pi-M))/(8*e*M+4*e*(e-math.Pi)+math.Pi*math.Pi)
	for attempts := 0; ; attempts++ {
		delta := -(eccentricAnomaly - e*math.Sin(eccentricAnomaly) - M) / (1 - e*math.Cos(eccentricAnomaly))
		if delta*delta < maxDeltaSq {
			return eccentricAnomaly
		}
		if attempts > maxAttempts {
			if startOffset != 0 {
				panic("orbitsim: Kepler ellipse solver did not converge after reseeding")
			}
			return solveKeplerEllipse(e, M, keplerReseedOffset(e, M, attempts))
		}
		eccentricAnomaly += delta
	}
}

// solveKeplerHyperbola solves e*sinh(H) - H = M via Newton-Raphson, the
// hyperbolic analogue of solveKeplerEllipse, with the same single reseeded
// retry followed by a panic. Tolerance matches spec.md's
// Kepler-hyperbola epsilon, looser than the ellipse case because the
// hyperbolic sine grows much faster.
func solveKeplerHyperbola(eccentricity, meanAnomaly, startOffset float64) float64 {
	eps := orbitsimConfig().KeplerHyperbolaEpsilon
	maxDeltaSq := eps * eps
	const maxAttempts = 500
	e := eccentricity
	M := meanAnomaly
	eccentricAnomaly := M + startOffset
	for attempts := 0; attempts < 1000; attempts++ {
		delta := -(e*math.Sinh(eccentricAnomaly) - eccentricAnomaly - M) / (e*math.Cosh(eccentricAnomaly) - 1)
		if delta*delta < maxDeltaSq {
			return eccentricAnomaly
		}
		if attempts > maxAttempts {
			if startOffset != 0 {
				panic("orbitsim: Kepler hyperbola solver did not converge after reseeding")
			}
			return solveKeplerHyperbola(e, M, keplerReseedOffset(e, M, attempts))
		}
		eccentricAnomaly += delta
	}
	return eccentricAnomaly
}
