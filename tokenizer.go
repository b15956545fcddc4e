package idcase

import (
	"iter"
	"unicode"
)

// Token is the half-open rune span [Start, End) of one word in a buffer.
type Token struct {
	Start int
	End   int
}

// Len returns the number of runes in the token.
func (t Token) Len() int { return t.End - t.Start }

// Text returns the token's runes from buf as a string.
func (t Token) Text(buf []rune) string { return string(buf[t.Start:t.End]) }

// protection is the set of boundary rules suppressed for one token.
type protection struct {
	caseRule   bool
	numberRule bool
}

func protectionFrom(set RuleSet) protection {
	return protection{caseRule: set.Has(RuleCase), numberRule: set.Has(RuleNumber)}
}

type scanState uint8

const (
	stateIdle scanState = iota
	stateInToken
)

// Tokenize splits buf into words according to cfg. Tokens are ordered,
// non-overlapping and never empty. The buffer is not modified.
func Tokenize(buf []rune, cfg *Config) []Token {
	if len(buf) == 0 {
		return nil
	}
	cfg = cfg.orDefault()
	splitNumber := cfg.rules.Has(RuleNumber)
	splitCase := cfg.rules.Has(RuleCase)

	tokens := make([]Token, 0, len(buf)/4+1)
	state := stateIdle
	start := 0
	// cur applies to the open token, pending to the next token opened.
	var cur, pending protection

	closeToken := func(end int) {
		if state == stateInToken {
			tokens = append(tokens, Token{Start: start, End: end})
			state = stateIdle
			cur = protection{}
		}
	}

	for i := 0; i < len(buf); {
		if cfg.trie != nil {
			if n, ok := cfg.trie.longestMatch(buf, i); ok {
				closeToken(i)
				pending = protectionFrom(cfg.protected)
				i += n
				continue
			}
		}

		ch := buf[i]
		if !isAlnum(ch) {
			closeToken(i)
			pending = protection{}
			i++
			continue
		}

		if state == stateIdle {
			state = stateInToken
			start = i
			cur, pending = pending, protection{}
			i++
			continue
		}

		prev := buf[i-1]
		boundary := false
		if splitNumber && !cur.numberRule {
			boundary = unicode.IsDigit(ch) != unicode.IsDigit(prev)
		}
		if !boundary && splitCase && !cur.caseRule && unicode.IsUpper(ch) {
			switch {
			case unicode.IsLower(prev):
				boundary = true
			case unicode.IsUpper(prev) && cfg.splitUpperCont:
				boundary = i+1 < len(buf) && unicode.IsLower(buf[i+1])
			}
		}
		if boundary {
			tokens = append(tokens, Token{Start: start, End: i})
			start = i
			cur = protection{}
		}
		i++
	}
	closeToken(len(buf))
	return tokens
}

// Words yields the text of each token in src.
func Words(src string, cfg *Config) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := []rune(src)
		for _, t := range Tokenize(buf, cfg) {
			if !yield(t.Text(buf)) {
				return
			}
		}
	}
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
