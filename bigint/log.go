package bigint

import "go.uber.org/zap"

// logger traces storage growth (each grow that reallocates) at Debug
// level. It defaults to a no-op logger: the kernel runs on the hot path
// of callers who never configured zap, and a library must not write to
// stderr on their behalf.
var logger = zap.NewNop()

// SetLogger installs l as the package logger. Passing nil restores the
// no-op logger. cmd/bigcalc calls this at startup with a real logger
// when verbose output is enabled; tests generally leave the default in place.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
