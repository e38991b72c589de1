// Command llpc is a playground and worked-example driver for the llpc
// combinator library: it evaluates arithmetic expressions, parses JSON or
// DOT files and prints their result trees, and serves a small HTTP+WebSocket
// playground for the same grammars.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	noColor bool
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "llpc",
		Short: "llpc is a playground for the llpc parser combinator library",
		Long: `llpc exercises the combinator engine and lexer generator through
three worked grammars (calc, json, dot): a one-shot expression evaluator,
an interactive REPL, a file parser with tree output, and an HTTP+WebSocket
playground.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./llpc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose structured logging")

	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newReplCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newServeCommand())

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(exitCodeFor(err))
	}
}

// reportError prints a colorized one-line rendering of err to stderr,
// using Pretty() when the error is one of the engine's own error types.
func reportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		red.DisableColor()
	}
	if pretty, ok := err.(interface{ Pretty() string }); ok {
		red.Fprintln(os.Stderr, pretty.Pretty())
		return
	}
	red.Fprintln(os.Stderr, err.Error())
}
