package cpu

import (
	"iter"
)

// Memory is a sparse, word-addressed memory. Cells exist once written, and
// iterate in the order they were first written.
type Memory struct {
	cell  map[uint32]int32
	order []uint32
}

// Read returns the value at an address.
func (mem *Memory) Read(addr uint32) (value int32, err error) {
	value, ok := mem.cell[addr]
	if !ok {
		err = ErrUninitialized(addr)
	}
	return
}

// Write sets the value at an address, creating the cell if needed.
func (mem *Memory) Write(addr uint32, value int32) {
	if mem.cell == nil {
		mem.cell = make(map[uint32]int32, 16)
	}

	_, ok := mem.cell[addr]
	if !ok {
		mem.order = append(mem.order, addr)
	}
	mem.cell[addr] = value
}

// Len returns the number of written cells.
func (mem *Memory) Len() int {
	return len(mem.order)
}

// All iterates over the written cells in insertion order.
func (mem *Memory) All() iter.Seq2[uint32, int32] {
	return func(yield func(addr uint32, value int32) bool) {
		for _, addr := range mem.order {
			if !yield(addr, mem.cell[addr]) {
				return
			}
		}
	}
}

// Reset discards all cells.
func (mem *Memory) Reset() {
	clear(mem.cell)
	mem.order = mem.order[:0]
}
