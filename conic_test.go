package orbitsim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestNewConicEarthAroundSunPeriod(t *testing.T) {
	position := Vec2{1.52100e11, 0.0}
	velocity := Vec2{0.0, 2.929e4}
	c, err := NewConic(1.9895e30, position, velocity)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c.Kind() != ConicEllipse {
		t.Fatal("expected an ellipse")
	}
	period, ok := c.Period()
	if !ok {
		t.Fatal("ellipse should report a period")
	}
	days := period / (60 * 60 * 24)
	if !floats.EqualWithinAbs(days, 364.9, 0.1) {
		t.Fatalf("expected ~364.9 day period, got %f", days)
	}
}

func TestNewConicMercuryLikeEccentricity(t *testing.T) {
	position := FromPolar(6.9818e10, -math.Pi/6)
	velocity := FromPolar(3.886e4, -math.Pi/6+math.Pi/2)
	c, err := NewConic(1.989e30, position, velocity)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !floats.EqualWithinAbs(c.Eccentricity(), 0.2056, 0.001) {
		t.Fatalf("expected eccentricity ~0.2056, got %f", c.Eccentricity())
	}
}

func TestNewConicHyperbolicFlyby(t *testing.T) {
	position := FromPolar(6678100.0, -math.Pi/6)
	velocity := FromPolar(15000.0, -math.Pi/6+math.Pi/2)
	c, err := NewConic(5.972e24, position, velocity)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c.Kind() != ConicHyperbola {
		t.Fatal("expected a hyperbola")
	}
	if !floats.EqualWithinAbs(c.Eccentricity(), 2.7696, 0.001) {
		t.Fatalf("expected eccentricity ~2.7696, got %f", c.Eccentricity())
	}
	if c.RemainingOrbits(1e9) != 0 {
		t.Fatal("hyperbola should never report remaining orbits")
	}
}

func TestConicPositionVelocityRoundTrip(t *testing.T) {
	position := Vec2{321699434.0757532, 238177462.81333557}
	velocity := Vec2{-448.8853759438255, 386.13875843572083}
	c, err := NewConic(5.9722e24, position, velocity)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	theta := 0.6373110791759163
	got := c.Position(theta)
	if !floats.EqualWithinAbs(got.X, position.X, 0.01) || !floats.EqualWithinAbs(got.Y, position.Y, 0.01) {
		t.Fatalf("position mismatch: got %+v want %+v", got, position)
	}
}

func TestConicThetaTimeRoundTrip(t *testing.T) {
	position := Vec2{-83760632.16012573, -305649596.3836937}
	velocity := Vec2{-929.2507297680404, 1168.0344669650149}
	c, err := NewConic(5.9722e24, position, velocity)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectedTheta := math.Atan2(position.Y, position.X)
	timeSince := c.TimeSincePeriapsis(expectedTheta)
	theta := c.ThetaFromTimeSincePeriapsis(timeSince)
	if !floats.EqualWithinAbs(theta, wrapTwoPi(expectedTheta), 0.01) {
		t.Fatalf("theta round trip mismatch: got %f want %f", theta, expectedTheta)
	}
}

func TestNewConicDegenerateRejected(t *testing.T) {
	// Purely radial velocity: zero angular momentum.
	position := Vec2{1e7, 0}
	velocity := Vec2{100, 0}
	if _, err := NewConic(5.972e24, position, velocity); err != ErrDegenerateConic {
		t.Fatalf("expected ErrDegenerateConic, got %v", err)
	}
}

func TestNewConicRejectsNonPositiveMass(t *testing.T) {
	if _, err := NewConic(0, Vec2{1, 0}, Vec2{0, 1}); err != ErrNonPositiveMass {
		t.Fatalf("expected ErrNonPositiveMass, got %v", err)
	}
}
