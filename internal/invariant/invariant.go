// Package invariant provides contract assertions for the engine's
// internal state machinery (the planner, execution frame, and step
// implementations).
//
// These assertions guard against bugs in the engine itself — a
// malformed program emitted by the planner, a step that mismanages the
// operand stack — never against bad user input or bad CEL programs.
// Bad input produces a CEL error value (see package value) or a plain
// Go error; it never reaches these functions. All functions here panic
// on violation.
package invariant

import (
	"fmt"
	"log/slog"
	"runtime"
)

// logger receives a structured record of every violation immediately
// before the panic that follows it, so a host that installs its own
// slog handler (e.g. shipping to a log aggregator) captures the
// violation even though the panic itself unwinds the stack. Discarded
// by default; SetLogger attaches a real one.
var logger = slog.New(slog.DiscardHandler)

// SetLogger replaces the logger invariant violations are reported
// through before panicking.
func SetLogger(l *slog.Logger) { logger = l }

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks an internal consistency condition.
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// ExpectNoError panics if err is non-nil. Used for operations the
// engine's own construction guarantees cannot fail.
func ExpectNoError(err error, msg string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", msg, err)
	}
}

func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
		logger.Error("invariant violation", "kind", kind, "message", msg, "file", frame.File, "line", frame.Line)
	} else {
		logger.Error("invariant violation", "kind", kind, "message", msg)
	}
	panic(msg)
}
