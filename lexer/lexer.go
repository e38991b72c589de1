package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// Lexer is a compiled rule set. It is immutable and safe for concurrent use:
// the same Lexer can tokenize many texts from different goroutines at once.
type Lexer struct {
	re      *regexp.Regexp
	rules   []Rule
	groupOf []int // groupOf[i] is the submatch index of rule i's capturing group
}

// New compiles rules into a Lexer. Rules are combined into a single regular
// expression with one named capturing group per rule
// (`(?P<t0>...)|(?P<t1>...)|...`); Go's regexp alternation is leftmost-first,
// so the winning rule at any offset is always the earliest one in rules that
// matches there, matching the priority-order contract. The winning rule is
// found with SubexpIndex rather than by counting groups, so parentheses
// inside a rule's own pattern don't disturb the lookup.
//
// New rejects a rule whose pattern can match the empty string: an empty
// match would let the tokenizer spin at the same offset forever.
func New(rules []Rule) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexer: no rules given")
	}

	parts := make([]string, len(rules))
	for i, r := range rules {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return nil, fmt.Errorf("lexer: rule %q: %w", r.Name, err)
		}
		empty := regexp.MustCompile(`^(?:` + r.Pattern + `)$`)
		if empty.MatchString("") {
			return nil, fmt.Errorf("lexer: rule %q matches the empty string", r.Name)
		}
		parts[i] = fmt.Sprintf("(?P<t%d>%s)", i, r.Pattern)
	}

	re, err := regexp.Compile("(?s:" + strings.Join(parts, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}

	rs := make([]Rule, len(rules))
	copy(rs, rules)
	groupOf := make([]int, len(rules))
	for i := range rules {
		groupOf[i] = re.SubexpIndex(fmt.Sprintf("t%d", i))
	}
	return &Lexer{re: re, rules: rs, groupOf: groupOf}, nil
}

// Tokenize scans text left to right and returns every useful token in order.
// It materializes the full token vector: the parser engine random-accesses
// and backtracks over tokens, so nothing downstream can consume a lazy
// stream anyway.
func (l *Lexer) Tokenize(text string) ([]Token, error) {
	var toks []Token
	it := l.Iter(text)
	for {
		tok, ok, err := it()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Iter returns a pull-based iterator over text: each call yields the next
// useful token, (Token{}, false, nil) at end of input, or a *LexerError.
// Rules marked Useful: false are matched and skipped without being
// returned, exactly as if the caller had filtered them out downstream,
// except the lexer itself never allocates a Token for them.
func (l *Lexer) Iter(text string) func() (Token, bool, error) {
	offset := 0
	pos := Position{Line: 1, Col: 1}

	return func() (Token, bool, error) {
		for offset < len(text) {
			rest := text[offset:]
			loc := l.re.FindStringSubmatchIndex(rest)
			if loc == nil || loc[0] != 0 {
				return Token{}, false, wrongCharError(pos, rest)
			}

			ruleIdx := -1
			for i, gi := range l.groupOf {
				if gi < 0 {
					continue
				}
				if loc[2*gi] >= 0 && loc[2*gi+1] >= 0 {
					ruleIdx = i
					break
				}
			}
			if ruleIdx < 0 {
				return Token{}, false, wrongCharError(pos, rest)
			}

			matched := rest[loc[0]:loc[1]]
			start := pos
			next, last := advance(pos, matched)
			offset += len(matched)
			pos = next

			rule := l.rules[ruleIdx]
			if !rule.Useful {
				continue
			}
			return Token{Type: rule.Name, Value: matched, Start: start, End: last}, true, nil
		}
		return Token{}, false, nil
	}
}
