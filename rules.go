package idcase

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is a single boundary rule consulted by the tokenizer.
type Rule uint8

const (
	// RuleCase splits on case transitions ("myHTTPServer" -> my, HTTP, Server).
	RuleCase Rule = iota
	// RuleNumber splits where letters and digits meet ("foo2Bar" -> foo, 2, Bar).
	RuleNumber
	// RuleSymbol is reserved. The tokenizer does not consult it.
	RuleSymbol

	ruleCount
)

// ErrUnknownRule reports a rule name that does not map to a Rule.
var ErrUnknownRule = errors.New("unknown rule")

var ruleNames = [ruleCount]string{
	RuleCase:   "case",
	RuleNumber: "number",
	RuleSymbol: "symbol",
}

func (r Rule) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// ParseRule returns the rule for a case-insensitive name.
func ParseRule(name string) (Rule, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for r, n := range ruleNames {
		if n == normalized {
			return Rule(r), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownRule, name)
}

// ParseRules parses rule names into a set. Blank names are skipped.
func ParseRules(names []string) (RuleSet, error) {
	var set RuleSet
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		r, err := ParseRule(name)
		if err != nil {
			return NoRules(), err
		}
		set = set.with(r)
	}
	return set, nil
}

// RuleSet is an immutable set of rules. The zero value is the empty set.
type RuleSet struct {
	bits uint8
}

// DefaultRules enables case and number splitting.
var DefaultRules = Rules(RuleCase, RuleNumber)

// Rules returns a set holding rs. Undefined rule values are ignored.
func Rules(rs ...Rule) RuleSet {
	var set RuleSet
	for _, r := range rs {
		set = set.with(r)
	}
	return set
}

// NoRules returns the empty set.
func NoRules() RuleSet { return RuleSet{} }

// AllRules returns a set holding every defined rule.
func AllRules() RuleSet { return RuleSet{bits: 1<<ruleCount - 1} }

// Has reports whether r is in the set.
func (s RuleSet) Has(r Rule) bool {
	return r < ruleCount && s.bits&(1<<r) != 0
}

// Without returns a copy of the set with r removed.
func (s RuleSet) Without(r Rule) RuleSet {
	if r >= ruleCount {
		return s
	}
	return RuleSet{bits: s.bits &^ (1 << r)}
}

// Empty reports whether the set holds no rules.
func (s RuleSet) Empty() bool { return s.bits == 0 }

func (s RuleSet) with(r Rule) RuleSet {
	if r >= ruleCount {
		return s
	}
	return RuleSet{bits: s.bits | 1<<r}
}

func (s RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := Rule(0); r < ruleCount; r++ {
		if !s.Has(r) {
			continue
		}
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
