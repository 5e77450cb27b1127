package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tapevm/cmd/tapevm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintError(err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
