package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sarchlab/tapevm/program"
)

var (
	// ErrPointerUnderflow is returned when a program moves the data pointer
	// left of cell 0.
	ErrPointerUnderflow = errors.New("data pointer underflow")

	// ErrConsole is returned when the console fails to read or write.
	ErrConsole = errors.New("console failure")
)

type coreState struct {
	Tape Tape
	DP   uint
	IP   uint
}

func newCoreState() coreState {
	return coreState{Tape: NewTape()}
}

type instEmulator struct {
	console Console
}

// RunInst executes the instruction at state.IP. It does not advance the
// instruction pointer; loop instructions may move it onto the matching
// bracket.
func (i instEmulator) RunInst(prog program.Program, state *coreState) error {
	inst := prog[state.IP]

	switch inst {
	case program.MovePointerForward:
		state.DP++
	case program.MovePointerBackward:
		return i.runMoveBackward(state)
	case program.IncrementCell:
		state.Tape.Add(state.DP, 1)
	case program.DecrementCell:
		state.Tape.Add(state.DP, -1)
	case program.OutputCell:
		return i.runOutput(state)
	case program.InputCell:
		return i.runInput(state)
	case program.LoopStart:
		i.runLoopStart(prog, state)
	case program.LoopEnd:
		i.runLoopEnd(prog, state)
	case program.NoOp:
	default:
		panic(fmt.Sprintf("unknown instruction '%s' at IP %d", inst, state.IP))
	}

	return nil
}

func (i instEmulator) runMoveBackward(state *coreState) error {
	if state.DP == 0 {
		return fmt.Errorf("%w at IP %d", ErrPointerUnderflow, state.IP)
	}

	state.DP--

	return nil
}

func (i instEmulator) runOutput(state *coreState) error {
	r := rune(state.Tape.Get(state.DP))
	if !utf8.ValidRune(r) {
		r = 0
	}

	if err := i.console.WriteRune(r); err != nil {
		return fmt.Errorf("%w: write at IP %d: %v", ErrConsole, state.IP, err)
	}

	return nil
}

func (i instEmulator) runInput(state *coreState) error {
	state.Tape.ensure(state.DP)

	line, err := i.console.ReadLine()
	if err != nil {
		return fmt.Errorf("%w: read at IP %d: %v", ErrConsole, state.IP, err)
	}

	state.Tape.Set(state.DP, parseCell(line))

	return nil
}

// parseCell reads a signed 32-bit decimal. Anything else is 0.
func parseCell(line string) int32 {
	text := strings.TrimSpace(line)

	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		Trace("Input",
			"Behavior", "ParseFallback",
			"Text", text,
		)

		return 0
	}

	return int32(v)
}

func (i instEmulator) runLoopStart(prog program.Program, state *coreState) {
	if state.Tape.Get(state.DP) > 0 {
		return
	}

	from := state.IP
	i.breakLoop(prog, state)

	Trace("Loop",
		"Behavior", "Skip",
		"From", from,
		"To", state.IP,
	)
}

func (i instEmulator) runLoopEnd(prog program.Program, state *coreState) {
	if state.Tape.Get(state.DP) <= 0 {
		return
	}

	from := state.IP
	i.rewindLoop(prog, state)

	Trace("Loop",
		"Behavior", "Rewind",
		"From", from,
		"To", state.IP,
	)
}

// breakLoop moves IP from a LoopStart to its matching LoopEnd. The scan
// counts the LoopStart itself, so depth is back to 0 exactly at the match.
// IP is left alone if there is no match.
func (i instEmulator) breakLoop(prog program.Program, state *coreState) {
	depth := 0

	for pos := state.IP; pos < uint(len(prog)); pos++ {
		switch prog[pos] {
		case program.LoopStart:
			depth++
		case program.LoopEnd:
			depth--
		}

		if depth == 0 {
			state.IP = pos
			return
		}
	}
}

// rewindLoop moves IP from a LoopEnd back to its matching LoopStart. The
// LoopEnd at IP already counts as depth 1. IP is left alone if there is no
// match.
func (i instEmulator) rewindLoop(prog program.Program, state *coreState) {
	depth := 1

	for pos := state.IP; pos > 0; pos-- {
		switch prog[pos-1] {
		case program.LoopEnd:
			depth++
		case program.LoopStart:
			depth--
		}

		if depth == 0 {
			state.IP = pos - 1
			return
		}
	}
}
