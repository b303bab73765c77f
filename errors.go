package orbitsim

import "errors"

// Construction-time errors (spec §7: "Construction errors return Err").
var (
	ErrDegenerateConic = errors.New("orbitsim: conic is degenerate (zero angular momentum)")
	ErrNonPositiveMass = errors.New("orbitsim: mass must be strictly positive")
	ErrUnknownSegment  = errors.New("orbitsim: segment not present in trajectory")
	ErrEmptyTrajectory = errors.New("orbitsim: trajectory has no segments")
	ErrNoParent        = errors.New("orbitsim: entity has no parent, cannot compute relative state")
)
