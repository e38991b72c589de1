/*
Package llpc is a library for building recursive-descent LL(*) parsers from
small, composable combinators.

A grammar is an expression that builds a Parser value out of primitives
(Any, Satisfy, Equals, Match, Pure, Finished, ForwardDecl) and combinators
(Then, Or, Map, Skip, Many, OnePlus, Maybe, Bind). Calling Parser.Parse on a
token sequence yields either a typed result or a *ParserError reporting the
furthest point reached in the input.

Subpackages:
  - lexer: compiles an ordered rule list into a tokenizer that yields
    Tokens carrying exact source positions.
  - tree: a peripheral Unicode tree pretty-printer for inspecting parse
    results.
  - examples/calc, examples/json, examples/dot: grammars built on top of
    this package and lexer, exercising the whole combinator surface.
  - cmd/llpc: a CLI/playground that drives the example grammars.

Parser values are immutable once built (aside from a one-time Define on a
ForwardDecl) and safe to share across goroutines; the only per-run state is
stack-local to a single Parse call.
*/
package llpc
