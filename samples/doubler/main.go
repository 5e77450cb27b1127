package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/tapevm/api"
	"github.com/sarchlab/tapevm/config"
	"github.com/sarchlab/tapevm/core"
	"github.com/tebeka/atexit"
)

//go:embed doubler.tape
var doublerProgram string

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	driver := api.NewDriverBuilder().
		WithInput(os.Stdin).
		WithOutput(os.Stdout).
		Build("Driver")

	if err := driver.Run(doublerProgram); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Println()
	core.PrintState(os.Stdout, driver.Snapshot())

	atexit.Exit(0)
}
