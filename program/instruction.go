// Package program defines the instruction set of the tape machine and turns
// program text into an instruction sequence.
package program

import (
	"fmt"
	"strings"
)

// Instruction is one decoded program symbol.
type Instruction uint8

const (
	MovePointerForward Instruction = iota + 1
	MovePointerBackward
	IncrementCell
	DecrementCell
	OutputCell
	InputCell
	LoopStart
	LoopEnd
	NoOp
)

var instNames = map[Instruction]string{
	MovePointerForward:  "MovePointerForward",
	MovePointerBackward: "MovePointerBackward",
	IncrementCell:       "IncrementCell",
	DecrementCell:       "DecrementCell",
	OutputCell:          "OutputCell",
	InputCell:           "InputCell",
	LoopStart:           "LoopStart",
	LoopEnd:             "LoopEnd",
	NoOp:                "NoOp",
}

func (i Instruction) String() string {
	if name, ok := instNames[i]; ok {
		return name
	}

	return fmt.Sprintf("Instruction(%d)", uint8(i))
}

// Symbol returns the source byte the instruction is written as. NoOp has no
// canonical symbol and returns 0.
func (i Instruction) Symbol() byte {
	return defaultISA.symbolOf(i)
}

// Valid reports whether i is one of the nine defined instructions.
func (i Instruction) Valid() bool {
	_, ok := instNames[i]
	return ok
}

// Program is a tokenized program. It is never modified after tokenization.
type Program []Instruction

// String renders the program back into canonical source text. NoOp
// instructions are dropped.
func (p Program) String() string {
	var sb strings.Builder

	for _, inst := range p {
		if sym := inst.Symbol(); sym != 0 {
			sb.WriteByte(sym)
		}
	}

	return sb.String()
}
