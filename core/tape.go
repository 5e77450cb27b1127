package core

const defaultTapeCapacity = 1000

// Tape is the machine memory. It is unbounded to the right: cells that were
// never written read as 0, and writes past the end grow the tape first.
// The tape never shrinks.
type Tape struct {
	cells []int32
}

// NewTape creates an empty tape.
func NewTape() Tape {
	return Tape{cells: make([]int32, 0, defaultTapeCapacity)}
}

// Len returns the number of addressable cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Get returns the value at addr, or 0 if addr is past the end. It never
// grows the tape.
func (t *Tape) Get(addr uint) int32 {
	if addr >= uint(len(t.cells)) {
		return 0
	}

	return t.cells[addr]
}

// Set stores v at addr, growing the tape if needed.
func (t *Tape) Set(addr uint, v int32) {
	t.ensure(addr)
	t.cells[addr] = v
}

// Add adds delta to the cell at addr, growing the tape if needed. Overflow
// wraps around.
func (t *Tape) Add(addr uint, delta int32) {
	t.ensure(addr)
	t.cells[addr] += delta
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []int32 {
	out := make([]int32, len(t.cells))
	copy(out, t.cells)

	return out
}

// ensure makes addr a real cell, zero-filling everything in between.
func (t *Tape) ensure(addr uint) {
	if addr < uint(len(t.cells)) {
		return
	}

	oldLen := len(t.cells)
	t.cells = append(t.cells, make([]int32, int(addr)+1-oldLen)...)

	Trace("Tape",
		"Behavior", "Grow",
		"From", oldLen,
		"To", len(t.cells),
	)
}
