package program

// ISA maps source bytes to instructions.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from source byte to instruction.
	symbolToInst map[byte]Instruction
	// reverse of symbolToInst.
	instToSymbol map[Instruction]byte
}

// NewISA creates an empty ISA. Every byte decodes to NoOp until registered.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		symbolToInst: make(map[byte]Instruction),
		instToSymbol: make(map[Instruction]byte),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register a new instruction to the ISA.
func (isa *ISA) registerNewInst(symbol byte, inst Instruction) {
	isa.symbolToInst[symbol] = inst
	isa.instToSymbol[inst] = symbol
}

// Decode returns the instruction for a source byte.
func (isa *ISA) Decode(b byte) Instruction {
	if inst, ok := isa.symbolToInst[b]; ok {
		return inst
	}

	return NoOp
}

func (isa *ISA) symbolOf(inst Instruction) byte {
	return isa.instToSymbol[inst]
}

var defaultISA = newDefaultISA()

func newDefaultISA() *ISA {
	isa := NewISA("Tape Machine ISA")

	isa.registerNewInst('>', MovePointerForward)
	isa.registerNewInst('<', MovePointerBackward)
	isa.registerNewInst('+', IncrementCell)
	isa.registerNewInst('-', DecrementCell)
	isa.registerNewInst('.', OutputCell)
	isa.registerNewInst(',', InputCell)
	isa.registerNewInst('[', LoopStart)
	isa.registerNewInst(']', LoopEnd)

	return isa
}

// DefaultISA returns the instruction set used by Tokenize.
func DefaultISA() *ISA {
	return defaultISA
}
