package orbitsim

import (
	"math"
	"testing"
)

func TestOrbitSegmentTrimToEndAtSetsEndTime(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	o.TrimToEndAt(1e6)
	if math.Abs(o.EndTime()-1e6) > 1e-6 {
		t.Fatalf("expected end time 1e6, got %f", o.EndTime())
	}
}

func TestOrbitSegmentIsFinishedAfterUpdatePastEnd(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	o.TrimToEndAt(100)
	if o.IsFinished() {
		t.Fatal("expected a fresh segment not to be finished")
	}
	o.Update(200)
	if !o.IsFinished() {
		t.Fatal("expected the segment to be finished after updating past its end")
	}
}

func TestOrbitSegmentResetRewindsToStart(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	o.Update(1000)
	o.Reset()
	if o.CurrentPoint().Time() != o.StartPoint().Time() {
		t.Fatalf("expected Reset to rewind to the start point")
	}
}

func TestOrbitSegmentRemainingAngleWrapsForwardOnly(t *testing.T) {
	sun := NewEntity(0, 0)
	o, err := NewOrbitSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, 0)
	if err != nil {
		t.Fatalf("NewOrbitSegment: %v", err)
	}
	o.TrimToEndAt(1000)
	remaining := o.RemainingAngle()
	if remaining < 0 || remaining > twoPi {
		t.Fatalf("expected remaining angle within [0, 2pi], got %f", remaining)
	}
}
