// Package memplan resolves precomputed buffer layouts for neural-network
// execution graphs on memory-constrained targets.
//
// An offline planning tool decides, ahead of deployment, where every
// intermediate buffer lives inside a single contiguous arena. It emits that
// decision as a flat table of offsets. At inference time this library
// validates the table and answers offset lookups without allocating and
// without recomputing anything.
//
// # Architecture Overview
//
//	memplan/             Root package with MemoryPlanner, ErrorReporter and Memory
//	├── offline/         Read-only resolver over a serialized offline plan
//	├── arena/           Binds a planner to a caller-owned arena (bytes or wazero memory)
//	├── report/          ErrorReporter implementations (zap, capture, discard)
//	├── errors/          Structured error types
//	└── cmd/planinspect/ CLI and TUI for inspecting plan files
//
// # Quick Start
//
//	p := offline.New(planBytes)
//
//	off, err := p.OffsetForBuffer(report.Zap(logger), 1)
//	if err != nil {
//	    return err
//	}
//	tensor := arenaBase + off
//
// # Plan Format
//
// A plan is a densely packed array of little-endian signed 32-bit offsets.
// There is no header and no explicit count:
//
//	┌──────────┬──────────┬──────────┬─────┐
//	│ offset 0 │ offset 1 │ offset 2 │ ... │   4 bytes each
//	└──────────┴──────────┴──────────┴─────┘
//
// Record i is the offset of buffer index i.
//
// # Ownership
//
// Planners borrow the plan bytes. The caller keeps them alive and unmodified
// for as long as any planner built over them is in use.
//
// # Thread Safety
//
// A planner is immutable after construction. Concurrent lookups are safe as
// long as the underlying bytes are never written.
package memplan
