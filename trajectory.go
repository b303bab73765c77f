package orbitsim

// Trajectory is a double-ended ordered sequence of Segments for one vessel:
// segments before "now" are historical, those after are predicted, with
// exactly one current position in time (spec invariant). Segments are
// contiguous: segment[i].EndTime() == segment[i+1].StartTime() within
// numerical tolerance, maintained by the editing operations below rather
// than checked on every access.
type Trajectory struct {
	logger   logFn
	segments []Segment
}

type logFn func(keyvals ...interface{})

// NewTrajectory starts a trajectory with a single orbit segment through
// position/velocity at time, around parent (of the given mass).
func NewTrajectory(parent Entity, parentMass float64, position, velocity Vec2, time float64) (*Trajectory, error) {
	o, err := NewOrbitSegment(parent, parentMass, position, velocity, time)
	if err != nil {
		return nil, err
	}
	return &Trajectory{segments: []Segment{NewOrbitSegmentWrapped(o)}}, nil
}

// SetLogger attaches a go-kit logfmt sink (see logging.go); nil is valid
// and silences logging.
func (t *Trajectory) SetLogger(f func(keyvals ...interface{})) {
	t.logger = f
}

func (t *Trajectory) log(keyvals ...interface{}) {
	if t.logger != nil {
		t.logger(keyvals...)
	}
}

// Add appends segment with no continuity check: the caller is responsible
// for handing it a correct seam (spec §4.3).
func (t *Trajectory) Add(s Segment) {
	t.segments = append(t.segments, s)
	if s.Kind() == SegmentOrbit {
		t.log("level", "debug", "event", "segment_added", "kind", "orbit", "start", s.StartTime(),
			"jd", julianDate(s.StartTime()), "argument_of_periapsis_deg", degrees(s.AsOrbit().Conic().ArgumentOfPeriapsis()))
		return
	}
	t.log("level", "debug", "event", "segment_added", "kind", "burn", "start", s.StartTime(), "jd", julianDate(s.StartTime()))
}

// RemoveAfter walks from the back, popping orbit segments whose start time
// is > cutoff and burn segments whose start time is >= cutoff. The burn
// threshold is inclusive so that deleting a burn by truncating exactly at
// its start time actually removes it, rather than leaving a zero-duration
// burn behind; the orbit threshold stays exclusive so a freshly created
// trajectory's sole segment (whose start equals cutoff at creation time)
// survives. If the resulting back segment is a burn and cutoff falls
// strictly inside it, RemoveAfter panics: burns are atomic and cannot be
// partially truncated. If the back segment is an orbit and cutoff lies
// inside it, the orbit is trimmed to end exactly at cutoff.
func (t *Trajectory) RemoveAfter(cutoff float64) error {
	if len(t.segments) == 0 {
		return ErrEmptyTrajectory
	}
	for len(t.segments) > 0 {
		back := t.segments[len(t.segments)-1]
		popThreshold := back.StartTime() > cutoff
		if back.Kind() == SegmentBurn && back.StartTime() >= cutoff {
			popThreshold = true
		}
		if popThreshold {
			t.segments = t.segments[:len(t.segments)-1]
			continue
		}
		if back.Kind() == SegmentBurn && back.IsTimeWithin(cutoff) {
			panic("orbitsim: cannot truncate inside a burn segment")
		}
		if back.Kind() == SegmentOrbit && back.IsTimeWithin(cutoff) {
			back.AsOrbit().TrimToEndAt(cutoff)
		}
		break
	}
	if len(t.segments) == 0 {
		return ErrEmptyTrajectory
	}
	t.log("level", "debug", "event", "trajectory_truncated", "cutoff", cutoff)
	return nil
}

// RemoveAfterSegment pops every segment strictly after s (matched by
// identity, not value), returning ErrUnknownSegment if s isn't present.
func (t *Trajectory) RemoveAfterSegment(s Segment) error {
	idx := t.indexOf(s)
	if idx < 0 {
		return ErrUnknownSegment
	}
	t.segments = t.segments[:idx+1]
	return nil
}

func (t *Trajectory) indexOf(s Segment) int {
	for i, seg := range t.segments {
		if seg.kind == s.kind && seg.orbit == s.orbit && seg.burn == s.burn {
			return i
		}
	}
	return -1
}

// Update advances the current (front) segment by deltaTime. If the front
// segment's current point passes its end, the overshoot is computed as
// now - end.time, the front segment is popped, and the overshoot is fed
// into the new front segment so no time is lost across the seam.
func (t *Trajectory) Update(deltaTime, now float64) {
	if len(t.segments) == 0 {
		return
	}
	front := t.segments[0]
	front.Update(deltaTime)
	if front.IsFinished() && len(t.segments) > 1 {
		overshoot := now - front.EndTime()
		t.segments = t.segments[1:]
		t.segments[0].Update(overshoot)
	}
}

// Predict extends the final segment's end point by deltaTime (only valid
// on an orbit segment; see Segment.Predict).
func (t *Trajectory) Predict(deltaTime float64) {
	if len(t.segments) == 0 {
		return
	}
	t.segments[len(t.segments)-1].Predict(deltaTime)
}

// CurrentSegment returns the front (earliest) segment, or nil if empty.
func (t *Trajectory) CurrentSegment() *Segment {
	if len(t.segments) == 0 {
		return nil
	}
	return &t.segments[0]
}

// FinalSegment returns the back (latest) segment, or nil if empty.
func (t *Trajectory) FinalSegment() *Segment {
	if len(t.segments) == 0 {
		return nil
	}
	return &t.segments[len(t.segments)-1]
}

// Segments returns the trajectory's segments in order. The returned slice
// is a read-only view: callers must not mutate it directly.
func (t *Trajectory) Segments() []Segment {
	return t.segments
}
