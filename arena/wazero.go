package arena

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/memplan"
)

// WrapMemory wraps a wazero api.Memory to implement memplan.Memory.
func WrapMemory(mem api.Memory) memplan.Memory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the memplan.Memory interface.
type Wrapper struct {
	Mem api.Memory
}

// Read returns a view of linear memory. The view is invalidated if the
// guest grows its memory.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// Size returns the current size of linear memory in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}
