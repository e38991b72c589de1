package llpc

import "github.com/wrenfield/llpc/lexer"

// Unit is the result of a parser that consumes no meaningful value: Finished
// and a Skip'd parser used outside a sequence both produce Unit.
type Unit struct{}

// Seq is the flattened result of one or more Then calls: (a.Then(b)).Then(c)
// and a.Then(b.Then(c)) both produce a 3-element Seq in source order, never
// a nested pair. Callers destructure it by index after a type assertion, or
// convert to a named struct via Map.
type Seq []any

// ignored marks a value produced by Skip so Then can drop it from the
// flattened tuple instead of recursing into it.
type ignored struct{ v any }

// runFunc is a parser's body. self is the owning parserImpl at call time
// (so Named/Define can change what a primitive reports about itself without
// rebuilding its closure). On success ok is true and newPos is the position
// just past what was consumed. On failure ok is false and reached is the
// furthest index this specific call looked at — used by Or to decide
// whether the failure committed (reached > pos) and therefore shouldn't be
// recovered by trying the other branch.
type runFunc func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (value any, newPos int, reached int, ok bool)

type parserImpl struct {
	name    string
	runBody runFunc
	mayHalt bool
	defined bool
}

// Parser is an opaque handle to a parse function, a human-readable name,
// and a "may_halt" flag used to reject Many/OnePlus over a sub-parser that
// could succeed without consuming input. Parser values are cheap to copy —
// they carry a pointer to a shared implementation record, which is what
// lets a ForwardDecl be captured by other combinators before it is Defined.
type Parser struct {
	impl *parserImpl
}

func newParser(name string, mayHalt bool, run runFunc) Parser {
	return Parser{impl: &parserImpl{name: name, runBody: run, mayHalt: mayHalt, defined: true}}
}

// Name returns the parser's name, either set explicitly via Named or
// auto-derived from its structure.
func (p Parser) Name() string {
	return p.impl.name
}

// Named returns a parser identical in behavior to p but reporting name in
// error messages and in other parsers' auto-derived names.
func (p Parser) Named(name string) Parser {
	return Parser{impl: &parserImpl{name: name, runBody: p.impl.runBody, mayHalt: p.impl.mayHalt, defined: p.impl.defined}}
}

func (p Parser) run(toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
	return p.impl.runBody(p.impl, toks, pos, ctx)
}

// Parse runs p over toks from the start and returns its result, or a
// *ParserError / *GrammarError describing why no derivation reached a
// success. The remainder of toks past what p consumed is discarded; callers
// who need full consumption write p.Then(Finished().Skip()) or equivalent.
func (p Parser) Parse(toks []lexer.Token) (result any, err error) {
	ctx := &runCtx{}

	defer func() {
		if r := recover(); r != nil {
			if ge, ok := r.(*GrammarError); ok {
				result, err = nil, ge
				return
			}
			panic(r)
		}
	}()

	v, _, _, ok := p.run(toks, 0, ctx)
	if !ok {
		return nil, buildParserError(toks, ctx)
	}
	return unwrap(v), nil
}

func unwrap(v any) any {
	if _, ok := v.(ignored); ok {
		return Unit{}
	}
	return v
}

func flatten(v any) []any {
	if s, ok := v.(Seq); ok {
		return []any(s)
	}
	return []any{v}
}

// combine implements the flat-tuple rule for Then: ignored values are
// dropped, and any Seq on either side is spliced rather than nested, so
// (a.Then(b)).Then(c) and a.Then(b.Then(c)) both yield a 3-element Seq.
func combine(v1, v2 any) any {
	_, ig1 := v1.(ignored)
	_, ig2 := v2.(ignored)

	var parts []any
	if !ig1 {
		parts = append(parts, flatten(v1)...)
	}
	if !ig2 {
		parts = append(parts, flatten(v2)...)
	}

	switch len(parts) {
	case 0:
		return ignored{}
	case 1:
		return parts[0]
	default:
		return Seq(parts)
	}
}
