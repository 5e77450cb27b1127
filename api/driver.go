// Package api defines the driver API for the tape machine.
package api

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarchlab/tapevm/core"
	"github.com/sarchlab/tapevm/program"
	"github.com/sarchlab/tapevm/verify"
)

// ErrMalformedProgram is returned in strict mode when the program has
// unbalanced loop brackets.
var ErrMalformedProgram = errors.New("malformed program")

// Driver turns program text into a run of the execution engine.
type Driver interface {
	// Run tokenizes source and executes it on a fresh core. It returns when
	// the program finishes or a fatal error occurs.
	Run(source string) error

	// Snapshot returns the state of the most recent run.
	Snapshot() core.Snapshot
}

type driverImpl struct {
	name        string
	coreBuilder core.Builder
	strict      bool

	last *core.Core
}

func (d *driverImpl) Run(source string) error {
	runID := uuid.New().String()
	prog := program.Tokenize(source)

	core.Trace("Driver",
		"Behavior", "Load",
		"Name", d.name,
		"RunID", runID,
		"Length", len(prog),
		"Strict", d.strict,
	)

	if d.strict {
		if issues := verify.RunLint(prog); len(issues) > 0 {
			core.Trace("Driver",
				"Behavior", "Reject",
				"RunID", runID,
				"Issues", len(issues),
			)

			return fmt.Errorf("%w: %s", ErrMalformedProgram, issues[0])
		}
	}

	d.last = d.coreBuilder.Build(fmt.Sprintf("%s.Core[%s]", d.name, runID))
	err := d.last.Execute(prog)

	core.Trace("Driver",
		"Behavior", "Finish",
		"RunID", runID,
		"Err", err,
	)

	return err
}

func (d *driverImpl) Snapshot() core.Snapshot {
	if d.last == nil {
		return core.Snapshot{}
	}

	return d.last.Snapshot()
}
