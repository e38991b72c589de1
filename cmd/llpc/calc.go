package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wrenfield/llpc/examples/calc"
	"go.uber.org/zap"
)

func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [expression]",
		Short: "Evaluate a single arithmetic expression",
		Long: `Evaluate an arithmetic expression built from + - * / ** and
parentheses, using the calc example grammar.

Examples:
  llpc calc "2 + 3 * 4"
  llpc calc "2 ** 10"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCalc,
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	expr := strings.Join(args, " ")
	tree, err := calc.Parse(expr)
	if err != nil {
		logger.Error("calc parse failed", zap.Error(err))
		return err
	}

	result := calc.Eval(tree)
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	green.Fprintf(cmd.OutOrStdout(), "%g\n", result)
	return nil
}
