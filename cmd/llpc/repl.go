package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wrenfield/llpc/examples/calc"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator REPL",
		Long: `Start an interactive read-eval-print loop over the calc example
grammar. Enter an empty line or Ctrl-D to exit.`,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed)
	if noColor {
		green.DisableColor()
		red.DisableColor()
	}

	for {
		var line string
		prompt := &survey.Input{Message: "llpc>"}
		if err := survey.AskOne(prompt, &line); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		if line == "" {
			return nil
		}

		tree, err := calc.Parse(line)
		if err != nil {
			red.Fprintln(cmd.OutOrStdout(), err.Error())
			continue
		}
		green.Fprintf(cmd.OutOrStdout(), "%g\n", calc.Eval(tree))
	}
}
