package orbitsim

import (
	"math"
	"testing"
)

func TestBurnSegmentZeroDeltaVStaysAtStart(t *testing.T) {
	sun := NewEntity(0, 0)
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, Vec2{0, 1}, 0)
	if b.TotalDeltaV() != 0 {
		t.Fatalf("expected a fresh burn to have zero deltaV, got %f", b.TotalDeltaV())
	}
	if b.Duration() != 0 {
		t.Fatalf("expected a fresh burn to have zero duration, got %f", b.Duration())
	}
}

func TestBurnSegmentAdjustGrowsDuration(t *testing.T) {
	sun := NewEntity(0, 0)
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, Vec2{0, 1}, 0)
	b.Adjust(Vec2{100, 0})
	wantDuration := 100.0 / orbitsimConfig().BurnAccelerationMag
	if math.Abs(b.Duration()-wantDuration) > 1e-9 {
		t.Fatalf("expected duration %f, got %f", wantDuration, b.Duration())
	}
	if b.EndTime() <= b.StartTime() {
		t.Fatal("expected EndTime to advance past StartTime after a nonzero burn")
	}
}

func TestBurnSegmentTangentFrozenAtCreation(t *testing.T) {
	sun := NewEntity(0, 0)
	tangent := Vec2{0, 1}
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, tangent, 0)
	b.Adjust(Vec2{50, 0})
	if b.TangentDirection() != tangent {
		t.Fatalf("expected tangent direction to stay frozen at %+v, got %+v", tangent, b.TangentDirection())
	}
}

func TestBurnSegmentPointAtTimeMatchesEndAtEnd(t *testing.T) {
	sun := NewEntity(0, 0)
	b := NewBurnSegment(sun, 1.989e30, Vec2{1.496e11, 0}, Vec2{0, 29780}, Vec2{0, 1}, 0)
	b.Adjust(Vec2{30, 0})
	atEnd := b.PointAtTime(b.EndTime() + 1)
	if atEnd.Time() != b.EndPoint().Time() {
		t.Fatalf("expected PointAtTime past the end to clamp to EndPoint")
	}
}
