package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/tapevm/api"
	"github.com/sarchlab/tapevm/config"
	"github.com/tebeka/atexit"
)

//go:embed helloworld.tape
var helloWorldProgram string

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	driver := api.NewDriverBuilder().
		WithStrict(true).
		Build("Driver")

	if err := driver.Run(helloWorldProgram); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
