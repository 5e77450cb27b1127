package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tapevm/api"
	"github.com/sarchlab/tapevm/config"
	"github.com/sarchlab/tapevm/core"
	"github.com/sarchlab/tapevm/program"
	"github.com/sarchlab/tapevm/verify"
)

// registerExitHook queues a function to run when the process exits through
// atexit.
var registerExitHook = atexit.Register

// NewRootCmd creates the tapevm command. programName is echoed in the usage
// line.
func NewRootCmd(programName string) *cobra.Command {
	return &cobra.Command{
		Use:   programName + " [program-text]",
		Short: "Run a tape machine program",
		Long: `Runs the program given on the command line on a tape machine.

All arguments are joined without separators into the program text, so they
are never read as flags. Set TAPEVM_CONFIG to a TOML or YAML file to change
logging, enable strict bracket checking or dump the tape on exit.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, programName, args)
		},
	}
}

// Execute runs the command against os.Args.
func Execute() error {
	return NewRootCmd(os.Args[0]).Execute()
}

func run(cmd *cobra.Command, programName string, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s [program-text]\n", programName)
		return nil
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(cmd.ErrOrStderr()))

	source := strings.Join(args, "")

	driver := api.NewDriverBuilder().
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout()).
		WithStrict(cfg.Run.Strict).
		Build("Driver")

	if cfg.Run.DumpState {
		stderr := cmd.ErrOrStderr()
		registerExitHook(func() {
			core.PrintState(stderr, driver.Snapshot())
		})
	}

	err = driver.Run(source)

	if errors.Is(err, api.ErrMalformedProgram) {
		verify.GenerateReport(program.Tokenize(source)).WriteReport(cmd.ErrOrStderr())
	}

	return err
}

// PrintError reports a fatal run error on stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
