package idcase

import "strings"

// DefaultCase returns the words of src lowercased and joined by sep. When src
// holds no words it returns src lowercased.
func DefaultCase(sep, src string, cfg *Config) string {
	if src == "" {
		return ""
	}
	buf := []rune(src)
	tokens := Tokenize(buf, cfg)
	if len(tokens) == 0 {
		return strings.ToLower(src)
	}
	return JoinTokens(buf, tokens, sep, ModeLower)
}

// OriginalTokens joins the words of src by sep, keeping their original case.
// It is mostly useful with delimiters and protected rules to re-join dotted
// or namespaced identifiers.
func OriginalTokens(src string, cfg *Config, sep string) string {
	if src == "" {
		return ""
	}
	buf := []rune(src)
	tokens := Tokenize(buf, cfg)
	if len(tokens) == 0 {
		return src
	}
	return JoinTokens(buf, tokens, sep, ModeOriginal)
}

// SnakeCase returns src in snake_case, or SCREAMING_SNAKE_CASE when upper is set.
func SnakeCase(src string, cfg *Config, upper bool) string {
	if src == "" {
		return ""
	}
	buf := []rune(src)
	tokens := Tokenize(buf, cfg)
	mode := ModeLower
	if upper {
		mode = ModeUpper
	}
	if len(tokens) == 0 {
		if upper {
			return strings.ToUpper(src)
		}
		return strings.ToLower(src)
	}
	return JoinTokens(buf, tokens, "_", mode)
}

// CamelCase returns src in camelCase, or PascalCase when upperFirst is set.
// When src holds no words it is returned unchanged.
func CamelCase(src string, cfg *Config, upperFirst, preserveAcronyms bool) string {
	if src == "" {
		return ""
	}
	buf := []rune(src)
	tokens := Tokenize(buf, cfg)
	if len(tokens) == 0 {
		return src
	}
	return CamelTokens(buf, tokens, upperFirst, preserveAcronyms)
}

// ToPath returns words in path/case.
func ToPath(s string) string { return DefaultCase("/", s, nil) }

// ToKebab returns words in kebab-case.
func ToKebab(s string) string { return DefaultCase("-", s, nil) }

// ToChain returns words in chain.case.
func ToChain(s string) string { return DefaultCase(".", s, nil) }

// ToSpace returns lowercase words separated by spaces.
func ToSpace(s string) string { return DefaultCase(" ", s, nil) }

// ToSnake returns words in snake_case.
func ToSnake(s string) string { return SnakeCase(s, nil, false) }

// ToSNAKE returns words in SNAKE_CASE.
func ToSNAKE(s string) string { return SnakeCase(s, nil, true) }

// ToCamel returns words in camelCase, preserving acronyms after the first word.
func ToCamel(s string) string { return CamelCase(s, nil, false, true) }

// ToPascal returns words in PascalCase, preserving acronyms.
func ToPascal(s string) string { return CamelCase(s, nil, true, true) }
