package orbitsim

import (
	"math"
	"testing"
)

func TestRotateToTangentFrameAlongTangent(t *testing.T) {
	tangent := Vec2{0, 1}
	v := Vec2{2, 0} // "prograde" component, relative to tangent
	got := RotateToTangentFrame(v, tangent)
	want := Vec2{0, 2}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRotateToTangentFramePreservesLength(t *testing.T) {
	tangent := Vec2{math.Sqrt2 / 2, math.Sqrt2 / 2}
	v := Vec2{3, -4}
	got := RotateToTangentFrame(v, tangent)
	if math.Abs(got.Norm()-v.Norm()) > 1e-9 {
		t.Fatalf("expected rotation to preserve length, got %f want %f", got.Norm(), v.Norm())
	}
}

func TestChainToParentSumsAcrossLevels(t *testing.T) {
	store := NewStore()
	sun := store.Spawn(1.989e30, Entity{}, false)
	earth := store.Spawn(5.972e24, sun, true)
	earthTraj, err := NewTrajectory(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewTrajectory(earth): %v", err)
	}
	store.SetTrajectory(earth, earthTraj)

	moon := store.Spawn(7.342e22, earth, true)
	moonTraj, err := NewTrajectory(earth, 5.972e24, Vec2{3.844e8, 0}, Vec2{0, 1022}, 0)
	if err != nil {
		t.Fatalf("NewTrajectory(moon): %v", err)
	}
	store.SetTrajectory(moon, moonTraj)

	pos, vel, err := chainToParent(store, moon, sun)
	if err != nil {
		t.Fatalf("chainToParent: %v", err)
	}
	wantPos := Vec2{1.496e11 + 3.844e8, 0}
	wantVel := Vec2{0, 29780 + 1022}
	if math.Abs(pos.X-wantPos.X) > 1 || math.Abs(pos.Y-wantPos.Y) > 1 {
		t.Fatalf("expected position %+v, got %+v", wantPos, pos)
	}
	if math.Abs(vel.X-wantVel.X) > 1e-6 || math.Abs(vel.Y-wantVel.Y) > 1e-6 {
		t.Fatalf("expected velocity %+v, got %+v", wantVel, vel)
	}
}

func TestChainToParentUnknownEntityErrors(t *testing.T) {
	store := NewStore()
	sun := store.Spawn(1.989e30, Entity{}, false)
	ghost := NewEntity(99, 0)
	if _, _, err := chainToParent(store, ghost, sun); err == nil {
		t.Fatal("expected an error chaining from an entity with no recorded state")
	}
}
