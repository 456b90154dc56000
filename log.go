package xmlavro

import "go.uber.org/zap"

// logger is the package-level structured logger used for translation and
// datum-build diagnostics. It defaults to a no-op logger so importing this
// package never forces a logging configuration on the caller; SetLogger
// lets a host application (the cmd/xmlavro CLI, or any other caller) wire
// in its own *zap.Logger.
var logger = zap.NewNop()

// SetLogger replaces the package-level logger used for diagnostic
// messages emitted while translating a schema or building a datum. Passing
// nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
