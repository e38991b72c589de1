package llpc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wrenfield/llpc/lexer"
)

// eofName is the internal expected-name used by Finished so a failure there
// renders as the spec's bespoke "should have reached <EOF>" message instead
// of the generic "expected: ..." form.
const eofName = "<EOF>"

// ParserError reports that no parse path reached the end of a successful
// derivation; it points at the furthest token any branch reached and lists
// what was expected there.
type ParserError struct {
	Pos      lexer.Position
	Token    *lexer.Token
	Expected []string
}

func (e *ParserError) Error() string {
	if len(e.Expected) == 1 && e.Expected[0] == eofName {
		if e.Token == nil {
			return "should have reached <EOF>: end of input"
		}
		return fmt.Sprintf("should have reached <EOF>: %s", e.Token.Value)
	}

	exp := strings.Join(e.Expected, " or ")
	if e.Token == nil {
		return fmt.Sprintf("got unexpected end of input, expected: %s", exp)
	}
	return fmt.Sprintf("got unexpected token: %s, expected: %s", e.Token.Value, exp)
}

// Pretty renders a one-line "position: message" form, for callers that want
// the failing position alongside Error()'s message without re-deriving it.
func (e *ParserError) Pretty() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Error())
}

// GrammarError reports a bug in the grammar itself, not in the input: Many
// or OnePlus applied to a parser that may succeed without consuming a
// token, or use of a ForwardDecl before it was Defined. GrammarError is
// never recovered by Or or Maybe; it only surfaces at the top of Parse.
type GrammarError struct {
	Message string
}

func (e *GrammarError) Error() string {
	return e.Message
}

func undefinedForwardDeclError(name string) *GrammarError {
	return &GrammarError{Message: fmt.Sprintf("forward declaration %q used before Define", name)}
}

func nonHaltingRepeatError(combinator, sub string) *GrammarError {
	return &GrammarError{Message: fmt.Sprintf(
		"%s applied to %q, which may succeed without consuming a token", combinator, sub)}
}

// runCtx is the per-Parse-call state threaded through every combinator: it
// tracks the furthest token index any branch reached (max) and the set of
// primitive names that were attempted there (expected). Only primitives
// call note; combinators just propagate the per-call "reached" value they
// get back from running their sub-parsers.
type runCtx struct {
	max      int
	expected map[string]struct{}
}

func (c *runCtx) note(name string, at int) {
	if at > c.max {
		c.max = at
		c.expected = map[string]struct{}{name: {}}
		return
	}
	if at == c.max {
		if c.expected == nil {
			c.expected = map[string]struct{}{}
		}
		c.expected[name] = struct{}{}
	}
}

func (c *runCtx) names() []string {
	names := make([]string, 0, len(c.expected))
	for n := range c.expected {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func buildParserError(toks []lexer.Token, ctx *runCtx) *ParserError {
	names := ctx.names()
	if ctx.max < len(toks) {
		t := toks[ctx.max]
		return &ParserError{Pos: t.Start, Token: &t, Expected: names}
	}

	var pos lexer.Position
	if len(toks) > 0 {
		pos = toks[len(toks)-1].End
	}
	return &ParserError{Pos: pos, Token: nil, Expected: names}
}
