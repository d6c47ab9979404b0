// Package arena binds a memory plan to the contiguous region it describes.
//
// The embedding runtime owns and sizes the arena. A planner only knows
// offsets, so the runtime supplies the region and its size; this package
// turns buffer indices into absolute addresses and bounded byte views.
//
//	mem := arena.NewBytes(64 * 1024)
//	a, err := arena.New(planner, mem, 0, 64*1024)
//	buf, err := a.Buffer(reporter, 3, 256)
//
// Extent checks offsets against a size without reserving any memory:
//
//	a, err := arena.New(planner, arena.Extent(size), 0, size)
//
// # WebAssembly Linear Memory
//
// WrapMemory adapts a wazero api.Memory so an arena can live inside a guest
// instance's linear memory:
//
//	mem := arena.WrapMemory(mod.ExportedMemory("memory"))
//	a, err := arena.New(planner, mem, heapBase, arenaSize)
package arena
