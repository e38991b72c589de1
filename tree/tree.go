// Package tree draws a Unicode box-drawing picture of an arbitrary tree.
// It is a peripheral utility, not part of the combinator engine: callers
// who want to eyeball a parse result pass it a root value plus two
// callbacks, children and show, and get a readable dump back. The walk
// itself takes a plain children(node) []node callback rather than a fixed
// grammar-node type, since llpc.Seq results aren't a single concrete AST
// type.
package tree

import (
	"fmt"
	"io"
)

// Node is the value type walked by Print. It is an alias for any, since the
// caller's children/show callbacks — not the package — know how to
// traverse a given grammar's result shape.
type Node = any

// Print writes a tree drawing of root to w. children returns a node's
// direct children in display order; show renders a single node's label.
func Print(w io.Writer, root Node, children func(Node) []Node, show func(Node) string) error {
	if _, err := io.WriteString(w, show(root)+"\n"); err != nil {
		return err
	}
	return printChildren(w, children(root), children, show, "")
}

func printChildren(w io.Writer, nodes []Node, children func(Node) []Node, show func(Node) string, prefix string) error {
	for i, n := range nodes {
		last := i == len(nodes)-1
		branch := "├── "
		cont := "│   "
		if last {
			branch = "└── "
			cont = "    "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, show(n)); err != nil {
			return err
		}
		if err := printChildren(w, children(n), children, show, prefix+cont); err != nil {
			return err
		}
	}
	return nil
}
