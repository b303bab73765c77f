package orbitsim

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// NewLogger returns a logfmt logger scoped to subject (a vessel or
// celestial body name). Trajectory.SetLogger takes a plain
// func(...interface{}) rather than a kitlog.Logger directly, so a nil
// logger (no call to SetLogger) silently skips logging -- see
// Trajectory.log.
func NewLogger(subject string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "subject", subject)
}
