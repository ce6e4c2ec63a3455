package logger

import "go.uber.org/zap"

// Diagnostics forwards reconciler messages to a zap logger.
// Informational messages are logged at info level, problems at warn level
// because they never stop a run.
type Diagnostics struct {
	l *zap.Logger
}

// NewDiagnostics wraps l, tagging every entry with the component name.
func NewDiagnostics(l *zap.Logger, component string) *Diagnostics {
	return &Diagnostics{l: l.With(zap.String("component", component))}
}

// Log emits an informational message.
func (d *Diagnostics) Log(msg string) {
	d.l.Info(msg)
}

// Error emits a non-fatal problem.
func (d *Diagnostics) Error(msg string) {
	d.l.Warn(msg)
}
