// Package offline resolves buffer offsets from a precomputed memory plan.
//
// The plan is produced ahead of deployment by a separate planning tool and
// shipped as an opaque byte blob. A Planner is a read-only view over that
// blob: it never copies the bytes, never allocates on lookup and never
// recomputes a layout.
//
// # Entry Layout
//
//	Field     Size    Encoding
//	──────────────────────────────────────
//	offset    4       signed 32-bit, little endian by default
//
// The entry count is len(plan) / EntrySize. There is no header.
//
// # Usage
//
//	p := offline.New(plan)
//	for i := 0; i < p.BufferCount(); i++ {
//	    off, err := p.OffsetForBuffer(reporter, i)
//	    ...
//	}
//
// Trailing bytes that do not form a whole entry are ignored by New. Use
// NewWithConfig with Strict set to reject them instead:
//
//	p, err := offline.NewWithConfig(plan, &offline.Config{Strict: true})
//
// # Mutation
//
// The buffer set was frozen when the plan was generated. AddBuffer always
// fails with an unsupported error; a runtime that calls it is executing a
// graph the plan was not generated for.
package offline
