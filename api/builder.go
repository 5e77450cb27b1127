package api

import (
	"io"

	"github.com/sarchlab/tapevm/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	coreBuilder core.Builder
	strict      bool
}

// NewDriverBuilder creates a builder wired to stdin and stdout.
func NewDriverBuilder() DriverBuilder {
	return DriverBuilder{coreBuilder: core.NewBuilder()}
}

// WithConsole sets the console every run talks to.
func (b DriverBuilder) WithConsole(console core.Console) DriverBuilder {
	b.coreBuilder = b.coreBuilder.WithConsole(console)
	return b
}

// WithInput sets where input lines are read from.
func (b DriverBuilder) WithInput(in io.Reader) DriverBuilder {
	b.coreBuilder = b.coreBuilder.WithInput(in)
	return b
}

// WithOutput sets where output characters are written to.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.coreBuilder = b.coreBuilder.WithOutput(out)
	return b
}

// WithStrict makes the driver reject programs with unbalanced brackets
// before running them.
func (b DriverBuilder) WithStrict(strict bool) DriverBuilder {
	b.strict = strict
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	return &driverImpl{
		name:        name,
		coreBuilder: b.coreBuilder,
		strict:      b.strict,
	}
}
