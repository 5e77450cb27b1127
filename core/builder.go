package core

import (
	"io"
	"os"
)

// Builder can create new cores.
type Builder struct {
	console Console
	in      io.Reader
	out     io.Writer
}

// NewBuilder creates a builder that talks to stdin and stdout.
func NewBuilder() Builder {
	return Builder{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// WithConsole sets the console directly. It takes precedence over
// WithInput and WithOutput.
func (b Builder) WithConsole(console Console) Builder {
	b.console = console
	return b
}

// WithInput sets where InputCell reads lines from.
func (b Builder) WithInput(in io.Reader) Builder {
	b.in = in
	return b
}

// WithOutput sets where OutputCell writes characters to.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// Build creates a core with a fresh state.
func (b Builder) Build(name string) *Core {
	console := b.console
	if console == nil {
		in, out := b.in, b.out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		console = NewConsole(in, out)
	}

	return &Core{
		name:  name,
		state: newCoreState(),
		emu:   instEmulator{console: console},
	}
}
