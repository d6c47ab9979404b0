package offline

import (
	"encoding/binary"
	"iter"

	"go.uber.org/zap"

	"github.com/wippyai/memplan"
	"github.com/wippyai/memplan/errors"
)

// EntrySize is the encoded size of one plan entry in bytes.
const EntrySize = 4

var _ memplan.MemoryPlanner = (*Planner)(nil)

// Config holds configuration for planner construction
type Config struct {
	// ByteOrder decodes entry offsets. nil means little endian.
	ByteOrder binary.ByteOrder

	// Strict rejects plans whose length is not a multiple of EntrySize.
	// Without it the partial trailing entry is silently dropped.
	Strict bool
}

// Planner serves offsets from a serialized offline plan.
//
// The Planner borrows plan: the caller must keep the bytes alive and must not
// modify them while the Planner is in use.
type Planner struct {
	order binary.ByteOrder
	plan  []byte
	count int
}

// New creates a planner over plan with default configuration.
func New(plan []byte) *Planner {
	p, _ := NewWithConfig(plan, nil)
	return p
}

// NewWithConfig creates a planner with custom configuration.
// It only fails when cfg.Strict is set and plan has trailing bytes.
func NewWithConfig(plan []byte, cfg *Config) (*Planner, error) {
	var order binary.ByteOrder = binary.LittleEndian
	strict := false
	if cfg != nil {
		if cfg.ByteOrder != nil {
			order = cfg.ByteOrder
		}
		strict = cfg.Strict
	}

	if rem := len(plan) % EntrySize; rem != 0 {
		if strict {
			return nil, errors.MalformedPlan(len(plan), EntrySize)
		}
		if ce := Logger().Check(zap.WarnLevel, "plan has partial trailing entry"); ce != nil {
			ce.Write(zap.Int("length", len(plan)), zap.Int("trailing", rem))
		}
	}

	p := &Planner{
		order: order,
		plan:  plan,
		count: len(plan) / EntrySize,
	}

	if ce := Logger().Check(zap.DebugLevel, "offline plan loaded"); ce != nil {
		ce.Write(zap.Int("buffers", p.count), zap.Bool("strict", strict))
	}
	return p, nil
}

// AddBuffer always fails: the buffer set of an offline plan is fixed.
func (p *Planner) AddBuffer(r memplan.ErrorReporter, size, firstUsed, lastUsed int) error {
	reportf(r, "Unsupported operation")
	err := errors.Unsupported(errors.PhasePlan, "offline plan cannot add buffers")
	err.Value = [3]int{size, firstUsed, lastUsed}
	return err
}

// MaximumMemorySize returns 0. The plan stores offsets only, so the arena
// size has to come from the same pipeline that produced the plan.
func (p *Planner) MaximumMemorySize() int {
	return 0
}

// BufferCount returns the number of entries in the plan.
func (p *Planner) BufferCount() int {
	return p.count
}

// OffsetForBuffer returns the stored offset of buffer index.
// On failure the returned offset is 0 and a diagnostic is sent to r.
func (p *Planner) OffsetForBuffer(r memplan.ErrorReporter, index int) (int, error) {
	if index < 0 || index >= p.count {
		reportf(r, "buffer index %d is outside range 0 to %d", index, p.count)
		return 0, errors.OutOfRange(errors.PhaseLookup, index, p.count)
	}
	return p.offset(index), nil
}

// All yields every (index, offset) pair in plan order.
func (p *Planner) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < p.count; i++ {
			if !yield(i, p.offset(i)) {
				return
			}
		}
	}
}

// Bytes returns the borrowed plan bytes, including any ignored trailing bytes.
func (p *Planner) Bytes() []byte {
	return p.plan
}

func (p *Planner) offset(i int) int {
	at := i * EntrySize
	return int(int32(p.order.Uint32(p.plan[at : at+EntrySize])))
}

func reportf(r memplan.ErrorReporter, format string, args ...any) {
	if r != nil {
		r.Report(format, args...)
	}
}
