package arena

import (
	"fmt"

	"github.com/wippyai/memplan"
)

var _ memplan.Memory = (Bytes)(nil)

// Bytes is a memplan.Memory backed by a Go byte slice.
type Bytes []byte

// NewBytes allocates a zeroed memory of size bytes.
func NewBytes(size uint32) Bytes {
	return make(Bytes, size)
}

// Read returns a view of length bytes at offset. The view aliases b.
func (b Bytes) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(b)) {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return b[offset:end:end], nil
}

// Write copies data to offset.
func (b Bytes) Write(offset uint32, data []byte) error {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(b)) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	copy(b[offset:end], data)
	return nil
}

// Size returns len(b).
func (b Bytes) Size() uint32 {
	return uint32(len(b))
}

var _ memplan.Memory = Extent(0)

// Extent is a memplan.Memory with a size and no storage. It lets an Arena
// check offsets without reserving the region. Reads and writes always fail.
type Extent uint32

// Read always fails.
func (e Extent) Read(offset uint32, length uint32) ([]byte, error) {
	return nil, fmt.Errorf("extent has no storage: offset=%d, length=%d", offset, length)
}

// Write always fails.
func (e Extent) Write(offset uint32, data []byte) error {
	return fmt.Errorf("extent has no storage: offset=%d, length=%d", offset, len(data))
}

// Size returns e.
func (e Extent) Size() uint32 {
	return uint32(e)
}
