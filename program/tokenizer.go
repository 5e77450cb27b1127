package program

// Decode maps a single source byte to its instruction. Bytes with no
// meaning decode to NoOp.
func Decode(b byte) Instruction {
	return defaultISA.Decode(b)
}

// Tokenize converts program text into one instruction per byte.
func Tokenize(source string) Program {
	prog := make(Program, len(source))
	for i := 0; i < len(source); i++ {
		prog[i] = Decode(source[i])
	}

	return prog
}

// TokenizeBytes is Tokenize over raw bytes.
func TokenizeBytes(src []byte) Program {
	prog := make(Program, len(src))
	for i, b := range src {
		prog[i] = Decode(b)
	}

	return prog
}
