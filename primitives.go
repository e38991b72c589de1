package llpc

import (
	"fmt"

	"github.com/wrenfield/llpc/lexer"
)

// Any consumes and returns the next token unconditionally; it fails only on
// empty input.
func Any() Parser {
	return newParser("any", true, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		if pos >= len(toks) {
			ctx.note(self.name, pos)
			return nil, 0, pos, false
		}
		return toks[pos], pos + 1, pos + 1, true
	})
}

// Satisfy consumes the next token and returns it if pred reports true; it
// fails on empty input or a false predicate. The default name is "(some)";
// callers normally override it with Named for readable error messages.
func Satisfy(pred func(lexer.Token) bool) Parser {
	return newParser("(some)", true, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		if pos >= len(toks) {
			ctx.note(self.name, pos)
			return nil, 0, pos, false
		}
		t := toks[pos]
		if pred(t) {
			return t, pos + 1, pos + 1, true
		}
		ctx.note(self.name, pos)
		return nil, 0, pos, false
	})
}

// Equals matches a token equal to tok under lexer.Token.Equal
// ((type, value) only); its auto-derived name is the token's value in Go
// quoted form (%q).
func Equals(tok lexer.Token) Parser {
	return Satisfy(func(t lexer.Token) bool { return t.Equal(tok) }).Named(fmt.Sprintf("%q", tok.Value))
}

// Match matches a token by type, and optionally by an exact value too.
// match(type) is named after the type; match(type, value) is named after
// the value.
func Match(typ string, value ...string) Parser {
	if len(value) > 0 {
		v := value[0]
		return Satisfy(func(t lexer.Token) bool { return t.Type == typ && t.Value == v }).Named(fmt.Sprintf("%q", v))
	}
	return Satisfy(func(t lexer.Token) bool { return t.Type == typ }).Named(typ)
}

// Pure consumes nothing and always succeeds with v.
func Pure(v any) Parser {
	return newParser(fmt.Sprintf("(pure %v)", v), false, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		return v, pos, pos, true
	})
}

// Finished succeeds with Unit iff pos is at the end of the token sequence;
// a failure here renders as the bespoke "should have reached <EOF>"
// message rather than the generic "expected: ..." form.
func Finished() Parser {
	return newParser(eofName, false, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		if pos >= len(toks) {
			return Unit{}, pos, pos, true
		}
		ctx.note(self.name, pos)
		return nil, 0, pos, false
	})
}

// ForwardDecl returns a placeholder parser for recursive grammars. Using it
// before Define panics with a *GrammarError, recovered only at the top of
// Parse. Once Defined, it behaves exactly like its definition, including
// for MayHalt-dependent checks in Many/OnePlus.
func ForwardDecl() Parser {
	impl := &parserImpl{name: "<forward decl>"}
	impl.runBody = func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		panic(undefinedForwardDeclError(self.name))
	}
	return Parser{impl: impl}
}

// Define supplies the body of a forward declaration. Every combinator that
// already captured p (by its shared impl pointer) observes the definition
// from this point on. Define must run before any Parse call on a grammar
// that uses p; treat the grammar as frozen thereafter.
func (p Parser) Define(q Parser) {
	if p.impl.name == "<forward decl>" {
		p.impl.name = q.impl.name
	}
	p.impl.mayHalt = q.impl.mayHalt
	p.impl.defined = true
	p.impl.runBody = func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		return q.impl.runBody(q.impl, toks, pos, ctx)
	}
}
