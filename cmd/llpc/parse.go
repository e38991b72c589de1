package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wrenfield/llpc/examples/dot"
	"github.com/wrenfield/llpc/examples/json"
	"github.com/wrenfield/llpc/tree"
	"go.uber.org/zap"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [grammar] <file>",
		Short: "Parse a file with the json or dot example grammar and print its tree",
		Long: `Lex and parse a file using one of the example grammars (json, dot) and
print the result as a Unicode tree via the tree package. grammar defaults to
the "default_grammar" set in llpc.yaml when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	grammarName, path := config.DefaultGrammar, args[0]
	if len(args) == 2 {
		grammarName, path = args[0], args[1]
	}

	logger := newLogger()
	defer logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch grammarName {
	case "json":
		v, err := json.Parse(string(data))
		if err != nil {
			logger.Error("json parse failed", zap.String("file", path), zap.Error(err))
			return err
		}
		return printJSONTree(cmd, v)
	case "dot":
		g, err := dot.Parse(string(data))
		if err != nil {
			logger.Error("dot parse failed", zap.String("file", path), zap.Error(err))
			return err
		}
		return printDotTree(cmd, g)
	default:
		return fmt.Errorf("unknown grammar %q, want one of: json, dot", grammarName)
	}
}

func printJSONTree(cmd *cobra.Command, root any) error {
	children := func(n tree.Node) []tree.Node {
		switch v := n.(type) {
		case map[string]any:
			out := make([]tree.Node, 0, len(v))
			for k, child := range v {
				out = append(out, jsonMember{key: k, value: child})
			}
			return out
		case jsonMember:
			return []tree.Node{v.value}
		case []any:
			out := make([]tree.Node, len(v))
			for i, child := range v {
				out[i] = child
			}
			return out
		default:
			return nil
		}
	}
	show := func(n tree.Node) string {
		switch v := n.(type) {
		case map[string]any:
			return fmt.Sprintf("object (%d members)", len(v))
		case jsonMember:
			return v.key
		case []any:
			return fmt.Sprintf("array (%d elements)", len(v))
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return tree.Print(cmd.OutOrStdout(), root, children, show)
}

type jsonMember struct {
	key   string
	value any
}

func printDotTree(cmd *cobra.Command, g dot.Graph) error {
	children := func(n tree.Node) []tree.Node {
		switch v := n.(type) {
		case dot.Graph:
			out := make([]tree.Node, len(v.Stmts))
			copy(out, v.Stmts)
			return out
		case dot.SubGraph:
			out := make([]tree.Node, len(v.Stmts))
			copy(out, v.Stmts)
			return out
		case dot.Edge:
			out := make([]tree.Node, len(v.Nodes))
			copy(out, v.Nodes)
			return out
		default:
			return nil
		}
	}
	show := func(n tree.Node) string {
		switch v := n.(type) {
		case dot.Graph:
			return fmt.Sprintf("Graph [id=%s strict=%v type=%s]", v.ID, v.Strict, v.Type)
		case dot.SubGraph:
			return fmt.Sprintf("SubGraph [id=%s]", v.ID)
		case dot.Node:
			return fmt.Sprintf("Node [id=%s]", v.ID)
		case dot.Edge:
			return "Edge"
		case dot.DefAttrs:
			return fmt.Sprintf("DefAttrs [object=%s]", v.Object)
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}

	cyan := color.New(color.FgCyan)
	if noColor {
		cyan.DisableColor()
	}
	cyan.Fprintln(cmd.OutOrStdout(), "parsed graph:")
	return tree.Print(cmd.OutOrStdout(), tree.Node(g), children, show)
}
