package orbitsim

import "testing"

func TestStoreSpawnLinksChildren(t *testing.T) {
	store := NewStore()
	sun := store.Spawn(1.989e30, Entity{}, false)
	earth := store.Spawn(5.972e24, sun, true)

	children := store.Children(sun)
	if len(children) != 1 || children[0] != earth {
		t.Fatalf("expected Sun's children to be [Earth], got %+v", children)
	}
	parent, ok := store.Parent(earth)
	if !ok || parent != sun {
		t.Fatal("expected Earth's parent to be Sun")
	}
	if _, ok := store.Parent(sun); ok {
		t.Fatal("expected Sun to have no parent")
	}
}

func TestStoreStateRelativeToParentReadsCurrentPoint(t *testing.T) {
	store := NewStore()
	sun := store.Spawn(1.989e30, Entity{}, false)
	earth := store.Spawn(5.972e24, sun, true)
	traj, err := NewTrajectory(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}
	store.SetTrajectory(earth, traj)

	pos, _, ok := store.StateRelativeToParent(earth)
	if !ok {
		t.Fatal("expected a state once a trajectory is set")
	}
	if pos.X != 1.496e11 {
		t.Fatalf("expected the initial position to be returned verbatim, got %+v", pos)
	}
}

func TestStoreStateRelativeToParentMissingTrajectory(t *testing.T) {
	store := NewStore()
	ghost := store.Spawn(1, Entity{}, false)
	if _, _, ok := store.StateRelativeToParent(ghost); ok {
		t.Fatal("expected no state for an entity with no trajectory set")
	}
}
