package orbitsim

import "testing"

func TestSegmentAsBurnPanicsOnOrbit(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	s := NewOrbitSegmentWrapped(o)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected AsBurn to panic on an orbit segment")
		}
	}()
	s.AsBurn()
}

func TestSegmentAsOrbitPanicsOnBurn(t *testing.T) {
	sun := NewEntity(0, 0)
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, Vec2{0, 1}, 0)
	s := NewBurnSegmentWrapped(b)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected AsOrbit to panic on a burn segment")
		}
	}()
	s.AsOrbit()
}

func TestSegmentPredictPanicsOnBurn(t *testing.T) {
	sun := NewEntity(0, 0)
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, Vec2{0, 1}, 0)
	s := NewBurnSegmentWrapped(b)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Predict to panic on a burn segment")
		}
	}()
	s.Predict(10)
}

func TestSegmentKindDispatchesParentAndTimes(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 5)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	o.TrimToEndAt(50)
	s := NewOrbitSegmentWrapped(o)
	if s.Parent() != sun {
		t.Fatal("expected Parent() to dispatch to the wrapped orbit")
	}
	if s.StartTime() != 5 || s.EndTime() != 50 {
		t.Fatalf("expected StartTime/EndTime to dispatch, got %f/%f", s.StartTime(), s.EndTime())
	}
}
