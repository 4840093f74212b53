package model

// Reporter receives incremental progress from long-running operations
// (file sync, hook execution). It is passed explicitly into each operation
// so the core never writes to the process's stdout on its own.
type Reporter interface {
	// Progress reports a step that is about to run.
	Progress(format string, args ...any)

	// Success reports a completed step.
	Success(format string, args ...any)

	// Warning reports a non-fatal condition.
	Warning(format string, args ...any)

	// Failure reports a failed step.
	Failure(format string, args ...any)

	// Detail reports an indented diagnostic line belonging to the previous message.
	Detail(format string, args ...any)
}

// NopReporter discards every message.
type NopReporter struct{}

func (NopReporter) Progress(string, ...any) {}
func (NopReporter) Success(string, ...any)  {}
func (NopReporter) Warning(string, ...any)  {}
func (NopReporter) Failure(string, ...any)  {}
func (NopReporter) Detail(string, ...any)   {}
