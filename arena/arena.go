package arena

import (
	"github.com/wippyai/memplan"
	"github.com/wippyai/memplan/errors"
)

// Arena resolves buffer indices to addresses inside [base, base+size) of mem.
type Arena struct {
	planner memplan.MemoryPlanner
	mem     memplan.Memory
	base    uint32
	size    uint32
}

// New binds planner to the size bytes of mem that start at base.
// The region must lie entirely within mem.
func New(planner memplan.MemoryPlanner, mem memplan.Memory, base, size uint32) (*Arena, error) {
	if planner == nil {
		return nil, errors.NilPointer(errors.PhaseArena, "planner")
	}
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseArena, "memory")
	}
	if uint64(base)+uint64(size) > uint64(mem.Size()) {
		return nil, errors.New(errors.PhaseArena, errors.KindOutOfBounds).
			Value(base).
			Detail("arena [%d, %d) exceeds memory of %d bytes", base, uint64(base)+uint64(size), mem.Size()).
			Build()
	}
	return &Arena{planner: planner, mem: mem, base: base, size: size}, nil
}

// Base returns the address of the first arena byte.
func (a *Arena) Base() uint32 { return a.base }

// Size returns the arena size in bytes.
func (a *Arena) Size() uint32 { return a.size }

// Planner returns the planner the arena resolves through.
func (a *Arena) Planner() memplan.MemoryPlanner { return a.planner }

// Address returns the absolute address of buffer index.
// The offset must name a byte inside the arena.
func (a *Arena) Address(r memplan.ErrorReporter, index int) (uint32, error) {
	return a.span(r, index, 1)
}

// Buffer returns length bytes of buffer index.
// For memories that support it the slice aliases the arena.
func (a *Arena) Buffer(r memplan.ErrorReporter, index int, length uint32) ([]byte, error) {
	addr, err := a.span(r, index, length)
	if err != nil {
		return nil, err
	}
	data, err := a.mem.Read(addr, length)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseArena, errors.KindOutOfBounds, err, "read buffer")
	}
	return data, nil
}

// Write copies data into buffer index.
func (a *Arena) Write(r memplan.ErrorReporter, index int, data []byte) error {
	addr, err := a.span(r, index, uint32(len(data)))
	if err != nil {
		return err
	}
	if err := a.mem.Write(addr, data); err != nil {
		return errors.Wrap(errors.PhaseArena, errors.KindOutOfBounds, err, "write buffer")
	}
	return nil
}

// span checks that [offset, offset+length) of buffer index fits the arena
// and returns the absolute start address.
func (a *Arena) span(r memplan.ErrorReporter, index int, length uint32) (uint32, error) {
	off, err := a.planner.OffsetForBuffer(r, index)
	if err != nil {
		return 0, err
	}
	if off < 0 || uint64(off)+uint64(length) > uint64(a.size) {
		if r != nil {
			r.Report("buffer %d at offset %d (length %d) is outside arena of %d bytes", index, off, length, a.size)
		}
		return 0, errors.OutOfBounds(errors.PhaseArena, index, off, a.size)
	}
	return a.base + uint32(off), nil
}
