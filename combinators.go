package llpc

import (
	"fmt"

	"github.com/wrenfield/llpc/lexer"
)

// Then is the sequence combinator ("p + q" in the source notation): it runs
// p, then q on what's left, and returns their results merged under the
// flat-tuple rule (see Seq). It halts on every success iff either side
// provably does.
func (p Parser) Then(q Parser) Parser {
	name := fmt.Sprintf("(%s , %s)", p.Name(), q.Name())
	mayHalt := p.impl.mayHalt || q.impl.mayHalt
	return newParser(name, mayHalt, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v1, pos2, reached, ok := p.run(toks, pos, ctx)
		if !ok {
			return nil, 0, reached, false
		}
		v2, pos3, reached2, ok := q.run(toks, pos2, ctx)
		if !ok {
			return nil, 0, reached2, false
		}
		return combine(v1, v2), pos3, pos3, true
	})
}

// Or is the alternation combinator ("p | q"): it tries p, and only falls
// back to q if p failed without consuming anything from this call's
// starting position. A p that commits (consumes ≥ 1 token) and then fails
// makes the whole alternation fail — there is no backtracking past a
// committed prefix. It halts on every success iff both sides do.
func (p Parser) Or(q Parser) Parser {
	name := fmt.Sprintf("%s or %s", p.Name(), q.Name())
	mayHalt := p.impl.mayHalt && q.impl.mayHalt
	return newParser(name, mayHalt, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v, newPos, reached, ok := p.run(toks, pos, ctx)
		if ok {
			return v, newPos, reached, true
		}
		if reached > pos {
			return nil, 0, reached, false
		}
		return q.run(toks, pos, ctx)
	})
}

// Map is the transform combinator ("p >> f"): it runs p and applies f to
// its result. If p's result was produced by Skip, f receives Unit.
func (p Parser) Map(f func(any) any) Parser {
	name := fmt.Sprintf("(%s)", p.Name())
	return newParser(name, p.impl.mayHalt, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v, newPos, reached, ok := p.run(toks, pos, ctx)
		if !ok {
			return nil, 0, reached, false
		}
		return f(unwrap(v)), newPos, reached, true
	})
}

// Bind is the monadic composition primitive ("p.bind(f)"): it runs p, then
// computes and runs f(result) on what's left. All other combinators can be
// derived from Bind and Pure but are implemented directly for performance.
// Because the continuation is only known after p succeeds, Bind
// conservatively reports mayHalt = false regardless of p or the
// continuation's own halting behavior — Many/OnePlus over a Bind therefore
// always raise a GrammarError. Named keeps the mayHalt flag of the parser it
// wraps, so wrapping a Bind in Named does not change this.
func (p Parser) Bind(f func(any) Parser) Parser {
	name := fmt.Sprintf("(%s >>=)", p.Name())
	return newParser(name, false, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v, newPos, reached, ok := p.run(toks, pos, ctx)
		if !ok {
			return nil, 0, reached, false
		}
		q := f(unwrap(v))
		return q.run(toks, newPos, ctx)
	})
}

// Skip runs p and marks its result ignored: within a Then chain the result
// is dropped from the flattened tuple; run on its own (or via Parse), it
// surfaces as Unit.
func Skip(p Parser) Parser {
	return newParser(p.Name(), p.impl.mayHalt, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v, newPos, reached, ok := p.run(toks, pos, ctx)
		if !ok {
			return nil, 0, reached, false
		}
		return ignored{v}, newPos, reached, true
	})
}

// Skip is a method form of the package-level Skip, for chaining:
// Match(",").Skip() reads the same direction as the rest of a grammar built
// with method chains.
func (p Parser) Skip() Parser {
	return Skip(p)
}

// Many repeatedly runs p until it fails without having consumed anything,
// and returns the ([]any wrapped as Seq-free) slice of results gathered —
// possibly empty. A failure of p that did consume tokens propagates rather
// than silently ending the repetition. Many never halts on its own
// (may_halt = false): construct it over a p that provably halts
// (MayHalt-checked below), or a GrammarError is raised the first time this
// parser actually runs — including the deferred check for a ForwardDecl
// whose MayHalt is unknown until Define.
func Many(p Parser) Parser {
	name := fmt.Sprintf("{ %s }", p.Name())
	return newParser(name, false, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		if !p.impl.defined {
			panic(undefinedForwardDeclError(p.impl.name))
		}
		if !p.impl.mayHalt {
			panic(nonHaltingRepeatError("many", p.Name()))
		}

		var results []any
		cur := pos
		for {
			v, newPos, reached, ok := p.run(toks, cur, ctx)
			if !ok {
				if reached > cur {
					return nil, 0, reached, false
				}
				return results, cur, reached, true
			}
			results = append(results, v)
			cur = newPos
		}
	})
}

// OnePlus runs p one or more times, equivalent to p.Then(Many(p)) but
// returning a plain non-empty []any instead of a 2-element Seq. It halts on
// every success iff p does, and raises the same GrammarError as Many the
// first time it runs over a p that can't halt — checked up front, before the
// first run of p, so the guard fires regardless of whether that run would
// have succeeded or failed.
func OnePlus(p Parser) Parser {
	name := fmt.Sprintf("(%s , { %s })", p.Name(), p.Name())
	rest := Many(p)
	return newParser(name, p.impl.mayHalt, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		if !p.impl.defined {
			panic(undefinedForwardDeclError(p.impl.name))
		}
		if !p.impl.mayHalt {
			panic(nonHaltingRepeatError("oneplus", p.Name()))
		}

		v1, pos2, reached, ok := p.run(toks, pos, ctx)
		if !ok {
			return nil, 0, reached, false
		}
		v2, pos3, reached2, ok := rest.run(toks, pos2, ctx)
		if !ok {
			return nil, 0, reached2, false
		}
		results := append([]any{v1}, v2.([]any)...)
		return results, pos3, pos3, true
	})
}

// Maybe tries p; on a non-committing failure it returns nil instead of
// failing, on a committing failure it propagates, and on success it
// returns p's value. Maybe never halts on its own (may_halt = false).
func Maybe(p Parser) Parser {
	name := fmt.Sprintf("[ %s ]", p.Name())
	return newParser(name, false, func(self *parserImpl, toks []lexer.Token, pos int, ctx *runCtx) (any, int, int, bool) {
		v, newPos, reached, ok := p.run(toks, pos, ctx)
		if ok {
			return v, newPos, reached, true
		}
		if reached > pos {
			return nil, 0, reached, false
		}
		return nil, pos, reached, true
	})
}
