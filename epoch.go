package orbitsim

import (
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/unit"
)

// referenceEpoch is the Julian Date corresponding to simulation time zero.
// The core trajectory math never touches calendar time -- this exists
// purely so logs and cmd/orbitdemo can print a human epoch instead of a
// raw float of seconds, the way the teacher's mission.go carries a
// time.Time start epoch alongside its otherwise unitless propagation.
var referenceEpoch = julian.TimeToJD(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))

// julianDate converts a simulation time (seconds since referenceEpoch) to
// a Julian Date for display.
func julianDate(simTime float64) float64 {
	return referenceEpoch + simTime/86400
}

// degrees formats a radian angle for logging using unit.Angle's conversion
// rather than a hand-rolled multiply-by-180/pi, the way the teacher favors
// meeus/unit types over raw float math wherever an angle crosses a log or
// report boundary.
func degrees(radians float64) float64 {
	return unit.Angle(radians).Deg()
}
