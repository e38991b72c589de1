package main

import (
	"github.com/wrenfield/llpc"
	"github.com/wrenfield/llpc/lexer"
)

// exitCodeFor maps a failure from the engine to a process exit code,
// reserving distinct low codes for distinct fatal classes: 2 for a lexer
// failure, 3 for a parser failure, 4 for a grammar bug, 1 for anything else
// (a bad flag, a missing file).
func exitCodeFor(err error) int {
	switch err.(type) {
	case *lexer.LexerError:
		return 2
	case *llpc.ParserError:
		return 3
	case *llpc.GrammarError:
		return 4
	default:
		return 1
	}
}
