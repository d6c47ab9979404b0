package offline

import "encoding/binary"

// Encode serializes offsets into a little-endian plan.
func Encode(offsets ...int32) []byte {
	return AppendEntries(make([]byte, 0, len(offsets)*EntrySize), binary.LittleEndian, offsets...)
}

// AppendEntries appends one encoded entry per offset to dst.
// A nil order means little endian.
func AppendEntries(dst []byte, order binary.AppendByteOrder, offsets ...int32) []byte {
	if order == nil {
		order = binary.LittleEndian
	}
	for _, off := range offsets {
		dst = order.AppendUint32(dst, uint32(off))
	}
	return dst
}
