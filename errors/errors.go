package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhasePlan   Phase = "plan"   // planner construction and mutation
	PhaseLookup Phase = "lookup" // offset queries
	PhaseDecode Phase = "decode" // plan bytes to entries
	PhaseEncode Phase = "encode" // entries to plan bytes
	PhaseArena  Phase = "arena"  // arena address resolution
	PhaseLoad   Phase = "load"   // reading plan files
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported   Kind = "unsupported"
	KindOutOfRange    Kind = "out_of_range"
	KindMalformedPlan Kind = "malformed_plan"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInvalidInput  Kind = "invalid_input"
	KindNilPointer    Kind = "nil_pointer"
)

// Error is the structured error type used throughout the library.
// Index and Count are meaningful only when HasIndex is set.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Index    int
	Count    int
	HasIndex bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasIndex {
		fmt.Fprintf(&b, " at buffer %d", e.Index)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// An empty Phase in target matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Index sets the offending buffer index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	b.err.HasIndex = true
	return b
}

// Count sets the bound the index was checked against
func (b *Builder) Count(n int) *Builder {
	b.err.Count = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfRange creates an error for a buffer index outside [0, count).
func OutOfRange(phase Phase, index, count int) *Error {
	return New(phase, KindOutOfRange).
		Index(index).
		Count(count).
		Value(index).
		Detail("buffer index %d is outside range 0 to %d", index, count).
		Build()
}

// MalformedPlan creates an error for plan bytes that do not split evenly into entries.
func MalformedPlan(length, entrySize int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedPlan,
		Detail: fmt.Sprintf("plan length %d is not a multiple of entry size %d (%d trailing bytes)", length, entrySize, length%entrySize),
		Value:  length,
	}
}

// OutOfBounds creates an error for a buffer that falls outside its arena.
func OutOfBounds(phase Phase, index, offset int, size uint32) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfBounds,
		Index:    index,
		HasIndex: true,
		Detail:   fmt.Sprintf("offset %d outside arena of %d bytes", offset, size),
		Value:    offset,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NilPointer creates a nil pointer error for a required collaborator.
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: what + " is nil",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a plan loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}
