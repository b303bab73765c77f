package orbitsim

import (
	"math"
	"testing"
)

func TestSeedSolarSystemParentsBeforeChildren(t *testing.T) {
	store := NewStore()
	entities, err := SeedSolarSystem(store, SolarSystemBodies, 0)
	if err != nil {
		t.Fatalf("SeedSolarSystem: %v", err)
	}
	for _, name := range []string{"Sun", "Earth", "Moon"} {
		if _, ok := entities[name]; !ok {
			t.Fatalf("expected %s to be seeded", name)
		}
	}

	sun := entities["Sun"]
	earth := entities["Earth"]
	moon := entities["Moon"]

	if parent, ok := store.Parent(earth); !ok || parent != sun {
		t.Fatalf("expected Earth's parent to be Sun")
	}
	if parent, ok := store.Parent(moon); !ok || parent != earth {
		t.Fatalf("expected Moon's parent to be Earth")
	}
	if _, ok := store.Parent(sun); ok {
		t.Fatalf("expected Sun to have no parent")
	}
}

func TestSeedSolarSystemCircularOrbitSpeed(t *testing.T) {
	store := NewStore()
	entities, err := SeedSolarSystem(store, SolarSystemBodies, 0)
	if err != nil {
		t.Fatalf("SeedSolarSystem: %v", err)
	}
	earth := entities["Earth"]
	sun := entities["Sun"]
	pos, vel, ok := store.StateRelativeToParent(earth)
	if !ok {
		t.Fatal("expected Earth to have a state relative to its parent")
	}
	sunMass, _ := store.Mass(sun)
	expectedSpeed := circularVelocity(sunMass, pos.Norm())
	if math.Abs(vel.Norm()-expectedSpeed) > 1e-6 {
		t.Fatalf("expected circular speed %f, got %f", expectedSpeed, vel.Norm())
	}
}

func TestSeedSolarSystemUnknownParentErrors(t *testing.T) {
	store := NewStore()
	_, err := SeedSolarSystem(store, []BodyDef{{Name: "Ghost", Mass: 1, ParentBodyName: "Nowhere"}}, 0)
	if err == nil {
		t.Fatal("expected an error for a body referencing an unknown parent")
	}
}
