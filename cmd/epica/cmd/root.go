package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lenticularis39/epica/internal/driver"
)

// debugLevel is read from EPICA_DEBUG and threaded into the lexer as a
// trace-verbosity level.
var debugLevel int

func init() {
	if v := os.Getenv("EPICA_DEBUG"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			debugLevel = n
		}
	}
}

var rootCmd = &cobra.Command{
	Use:           "epica <source-file>",
	Short:         "Ahead-of-time compiler for the epica toy language",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: epica <source-file>")
			return errSilent
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return compileFile(args[0])
	},
}

// errSilent signals that the failure has already been reported to
// stderr; Execute must still treat it as a nonzero-exit condition.
var errSilent = fmt.Errorf("")

func compileFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "epica: %s\n", err)
		return err
	}

	ir, err := driver.Compile(string(source), path, debugLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Println(ir)
	return nil
}

// Execute runs the root command, exiting 1 on any usage, parse, semantic
// or code-generation error and 0 on successful emission.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
