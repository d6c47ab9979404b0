package report

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/memplan"
)

// Discard drops every diagnostic.
var Discard memplan.ErrorReporter = memplan.ReporterFunc(func(string, ...any) {})

type zapReporter struct {
	sugar *zap.SugaredLogger
}

// Zap returns a reporter that logs diagnostics at error level.
// A nil logger yields Discard.
func Zap(l *zap.Logger) memplan.ErrorReporter {
	if l == nil {
		return Discard
	}
	return &zapReporter{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (z *zapReporter) Report(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

// Capture records formatted diagnostics. It is safe for concurrent use.
type Capture struct {
	messages []string
	mu       sync.Mutex
}

// NewCapture creates an empty capture.
func NewCapture() *Capture {
	return &Capture{}
}

// Report formats and stores a diagnostic.
func (c *Capture) Report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
}

// Messages returns a copy of the recorded diagnostics in report order.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of recorded diagnostics.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Last returns the most recent diagnostic, or "" if none.
func (c *Capture) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return ""
	}
	return c.messages[len(c.messages)-1]
}

// Reset drops all recorded diagnostics.
func (c *Capture) Reset() {
	c.mu.Lock()
	c.messages = c.messages[:0]
	c.mu.Unlock()
}

type multi []memplan.ErrorReporter

// Multi returns a reporter that forwards to every non-nil reporter in rs.
func Multi(rs ...memplan.ErrorReporter) memplan.ErrorReporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multi) Report(format string, args ...any) {
	for _, r := range m {
		r.Report(format, args...)
	}
}
