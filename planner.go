package memplan

// MemoryPlanner resolves the arena offset of every buffer used by an
// execution graph.
type MemoryPlanner interface {
	// AddBuffer registers a buffer with its size in bytes and the first and
	// last execution steps that use it.
	AddBuffer(r ErrorReporter, size, firstUsed, lastUsed int) error

	// MaximumMemorySize returns the largest contiguous block of memory needed
	// to hold the layout, or 0 when the planner cannot tell.
	MaximumMemorySize() int

	// BufferCount returns how many buffers the planner knows about.
	BufferCount() int

	// OffsetForBuffer returns the byte offset of a buffer within the arena.
	OffsetForBuffer(r ErrorReporter, index int) (int, error)
}

// ErrorReporter receives formatted diagnostics. Implementations must not
// retain args after Report returns.
type ErrorReporter interface {
	Report(format string, args ...any)
}

// ReporterFunc adapts a plain function to ErrorReporter.
type ReporterFunc func(format string, args ...any)

// Report calls f.
func (f ReporterFunc) Report(format string, args ...any) {
	f(format, args...)
}

// Memory is the arena region as exposed by the embedding runtime.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	Size() uint32
}
