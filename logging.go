package slam

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// but may be replaced by SetLogger. Its only use is SLAM.Update's notice
// that a degenerate scan (no valid beams) skipped map integration; that case
// is not reported as an error, and the logger is never used for control
// flow.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, useful for quiet test output.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
