// Package report provides memplan.ErrorReporter implementations.
//
// Planners never print. Every diagnostic goes through a reporter passed at
// the call site, so callers pick where messages end up:
//
//	report.Zap(logger)   - log at error level through zap
//	report.NewCapture()  - keep messages in memory (tests, TUIs)
//	report.Discard       - drop everything
//	report.Multi(a, b)   - fan out to several reporters
package report
