package idcase

import (
	"strings"
	"unicode"
)

// CaseMode selects how JoinTokens transforms each token.
type CaseMode uint8

const (
	// ModeLower lowercases every rune.
	ModeLower CaseMode = iota
	// ModeUpper uppercases every rune.
	ModeUpper
	// ModeOriginal copies runes unchanged.
	ModeOriginal
)

// JoinTokens writes each token of buf transformed by mode, separated by sep.
// With no tokens it returns buf unchanged.
func JoinTokens(buf []rune, tokens []Token, sep string, mode CaseMode) string {
	if len(tokens) == 0 {
		return string(buf)
	}
	var b strings.Builder
	b.Grow(max(16, len(buf)+(len(tokens)-1)*len(sep)))
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(sep)
		}
		for _, r := range buf[t.Start:t.End] {
			switch mode {
			case ModeLower:
				b.WriteRune(unicode.ToLower(r))
			case ModeUpper:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// CamelTokens concatenates the tokens of buf in camelCase, or PascalCase when
// upperFirst is set. With preserveAcronyms, an all-uppercase token is kept
// verbatim, or fully lowercased when it leads a camelCase result.
func CamelTokens(buf []rune, tokens []Token, upperFirst, preserveAcronyms bool) string {
	if len(tokens) == 0 {
		return string(buf)
	}
	var b strings.Builder
	b.Grow(max(16, len(buf)))
	for i, t := range tokens {
		word := buf[t.Start:t.End]
		if len(word) == 0 {
			continue
		}
		acronym := preserveAcronyms && allUpper(word)
		if i == 0 && !upperFirst {
			writeLower(&b, word)
			continue
		}
		if acronym {
			for _, r := range word {
				b.WriteRune(r)
			}
			continue
		}
		b.WriteRune(unicode.ToUpper(word[0]))
		writeLower(&b, word[1:])
	}
	return b.String()
}

// allUpper reports whether every letter in word is uppercase. Non-letters do
// not count against it.
func allUpper(word []rune) bool {
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func writeLower(b *strings.Builder, word []rune) {
	for _, r := range word {
		b.WriteRune(unicode.ToLower(r))
	}
}
