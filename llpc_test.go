package llpc

import (
	"errors"
	"testing"

	"github.com/wrenfield/llpc/lexer"
)

func tok(value string) lexer.Token {
	return lexer.Token{Type: "op", Value: value}
}

func toks(values ...string) []lexer.Token {
	ts := make([]lexer.Token, len(values))
	for i, v := range values {
		ts[i] = tok(v)
	}
	return ts
}

func TestPrimitiveEquals(t *testing.T) {
	p := Equals(tok("x"))
	v, err := p.Parse(toks("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.(lexer.Token)
	if got.Value != "x" {
		t.Fatalf("got %q, want x", got.Value)
	}
}

func TestSequenceSkip(t *testing.T) {
	p := Skip(Equals(tok("("))).Then(Equals(tok("a"))).Then(Skip(Equals(tok(")"))))
	v, err := p.Parse(toks("(", "a", ")"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.(lexer.Token)
	if got.Value != "a" {
		t.Fatalf("got %q, want a", got.Value)
	}
}

// Or tries the left branch first and only falls through to the right when
// the left branch misses without consuming anything.
func TestAlternationPrefersFirstSuccess(t *testing.T) {
	p := Equals(tok("a")).Then(Equals(tok("b"))).Or(Equals(tok("c")))

	v, err := p.Parse(toks("a", "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := v.(Seq)
	if len(seq) != 2 || seq[0].(lexer.Token).Value != "a" || seq[1].(lexer.Token).Value != "b" {
		t.Fatalf("got %v, want (a, b)", v)
	}

	v, err = p.Parse(toks("c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(lexer.Token).Value != "c" {
		t.Fatalf("got %v, want c", v)
	}
}

// A recursive grammar built with ForwardDecl: balanced, arbitrarily nested
// brace groups.
type braceTree struct {
	children []*braceTree
}

func TestNestedBracketsForwardDecl(t *testing.T) {
	nested := ForwardDecl()
	nested.Define(Skip(Equals(tok("{"))).
		Then(Many(nested)).
		Then(Skip(Equals(tok("}")))).
		Map(func(v any) any {
			var kids []*braceTree
			for _, c := range v.([]any) {
				kids = append(kids, c.(*braceTree))
			}
			return &braceTree{children: kids}
		}))

	v, err := nested.Parse(toks("{", "{", "}", "{", "}", "}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := v.(*braceTree)
	if len(root.children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.children))
	}
	for i, c := range root.children {
		if len(c.children) != 0 {
			t.Fatalf("child %d: got %d grandchildren, want 0", i, len(c.children))
		}
	}
}

// A failed parse reports the furthest token any branch reached, not the
// position of the first failure.
func TestFurthestErrorReached(t *testing.T) {
	p := Equals(tok("a")).Then(Equals(tok("b"))).Then(Equals(tok("c")))
	_, err := p.Parse(toks("a", "b", "x"))
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *ParserError", err)
	}
	if perr.Token == nil || perr.Token.Value != "x" {
		t.Fatalf("error token = %v, want x", perr.Token)
	}
	found := false
	for _, e := range perr.Expected {
		if e == `"c"` {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %v to contain \"c\"", perr.Expected)
	}
}

// Many over a sub-parser that can succeed without consuming a token raises
// a GrammarError instead of looping forever.
func TestGrammarGuardOnNonHaltingRepeat(t *testing.T) {
	p := Many(Maybe(Equals(tok("a"))))
	_, err := p.Parse(toks("a"))
	if err == nil {
		t.Fatal("expected error")
	}
	var gerr *GrammarError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %T, want *GrammarError", err)
	}
}

// Alternation commit: a committed failure in the left branch must not be
// recovered by the right branch.
func TestAlternationCommitNoBacktrack(t *testing.T) {
	p := Equals(tok("a")).Then(Equals(tok("b"))).Or(Equals(tok("a")).Then(Equals(tok("c"))))
	_, err := p.Parse(toks("a", "x"))
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *ParserError", err)
	}
	for _, e := range perr.Expected {
		if e == `"c"` {
			t.Fatalf("alternation should not have retried the right branch, got expected=%v", perr.Expected)
		}
	}
}

// Round-trip with Map.
func TestPureMapRoundTrip(t *testing.T) {
	f := func(v any) any { return v.(int) + 1 }
	v, err := Pure(41).Map(f).Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(int) != 42 {
		t.Fatalf("got %v, want 42", v)
	}
}

// Determinism.
func TestDeterminism(t *testing.T) {
	p := Equals(tok("a")).Then(Equals(tok("b")))
	ts := toks("a", "b")
	v1, err1 := p.Parse(ts)
	v2, err2 := p.Parse(ts)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	s1, s2 := v1.(Seq), v2.(Seq)
	if s1[0].(lexer.Token).Value != s2[0].(lexer.Token).Value || s1[1].(lexer.Token).Value != s2[1].(lexer.Token).Value {
		t.Fatalf("non-deterministic results: %v vs %v", v1, v2)
	}
}

// Finished: a successful Parse that doesn't consume everything should
// still allow the caller to require it explicitly.
func TestFinishedRequiresFullConsumption(t *testing.T) {
	p := Equals(tok("a")).Then(Skip(Finished()))
	_, err := p.Parse(toks("a", "b"))
	if err == nil {
		t.Fatal("expected error for trailing input")
	}
}

func TestFinishedMessageIsBespoke(t *testing.T) {
	p := Equals(tok("a")).Then(Skip(Finished()))
	_, err := p.Parse(toks("a", "b"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `should have reached <EOF>: b`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

// Skip identity: -p in a sequence behaves like p for success/failure, and
// is absent from the resulting tuple.
func TestSkipIdentity(t *testing.T) {
	p := Equals(tok("a")).Then(Skip(Equals(tok("b"))))
	v, err := p.Parse(toks("a", "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, isSeq := v.(Seq); isSeq {
		t.Fatalf("skip should not appear in the sequence result, got %v", v)
	}
	if v.(lexer.Token).Value != "a" {
		t.Fatalf("got %v, want a", v)
	}

	_, err = p.Parse(toks("a", "c"))
	if err == nil {
		t.Fatal("expected error when the skipped parser fails")
	}
}

// OnePlus requires at least one match.
func TestOnePlusRequiresOne(t *testing.T) {
	p := OnePlus(Equals(tok("a")))
	_, err := p.Parse(toks())
	if err == nil {
		t.Fatal("expected error on empty input")
	}

	v, err := p.Parse(toks("a", "a", "a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.([]any)) != 3 {
		t.Fatalf("got %d results, want 3", len(v.([]any)))
	}
}

// Maybe never fails on a non-committing miss.
func TestMaybeTotality(t *testing.T) {
	p := Maybe(Equals(tok("a"))).Then(Equals(tok("b")))
	v, err := p.Parse(toks("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := v.(Seq)
	if seq[0] != nil {
		t.Fatalf("got %v, want nil for the missed Maybe", seq[0])
	}
}
