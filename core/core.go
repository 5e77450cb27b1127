// Package core implements the execution engine of the tape machine.
package core

import (
	"github.com/sarchlab/tapevm/program"
)

// Snapshot is a copy of the interpreter state.
type Snapshot struct {
	Tape        []int32
	DataPointer uint
	InstPointer uint
}

// Cell returns the value of a cell, or 0 if the tape never reached it.
func (s Snapshot) Cell(addr uint) int32 {
	if addr >= uint(len(s.Tape)) {
		return 0
	}

	return s.Tape[addr]
}

// Core runs one program against one tape.
type Core struct {
	name string

	state coreState
	emu   instEmulator
	code  program.Program
}

// Name returns the name given to the core at build time.
func (c *Core) Name() string {
	return c.name
}

// MapProgram sets the program that the core runs.
func (c *Core) MapProgram(prog program.Program) {
	c.code = prog
}

// Run executes the mapped program from the current instruction pointer until
// the instruction pointer passes the end of the program. The only fatal
// conditions are data pointer underflow and console failure.
func (c *Core) Run() error {
	Trace("Core",
		"Behavior", "Start",
		"Name", c.name,
		"Length", len(c.code),
	)

	for c.state.IP < uint(len(c.code)) {
		if err := c.emu.RunInst(c.code, &c.state); err != nil {
			LogState(&c.state)
			return err
		}
		c.state.IP++
	}

	Trace("Core",
		"Behavior", "Done",
		"Name", c.name,
		"TapeLen", c.state.Tape.Len(),
	)
	LogState(&c.state)

	return nil
}

// Execute runs prog from the beginning on a fresh tape. Use MapProgram and
// Run to continue from the current state instead.
func (c *Core) Execute(prog program.Program) error {
	c.state = newCoreState()
	c.MapProgram(prog)
	return c.Run()
}

// Snapshot returns a copy of the current state.
func (c *Core) Snapshot() Snapshot {
	return Snapshot{
		Tape:        c.state.Tape.Cells(),
		DataPointer: c.state.DP,
		InstPointer: c.state.IP,
	}
}
