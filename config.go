package idcase

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrInvalidDelimiter reports a delimiter that Build would silently drop.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// Config is an immutable tokenizer configuration. It is safe to share between
// goroutines. A nil *Config behaves like DefaultConfig.
type Config struct {
	rules          RuleSet
	delimiters     []string
	protected      RuleSet
	splitUpperCont bool
	trie           *delimiterTrie
}

var defaultConfig = NewBuilder().Build()

// DefaultConfig returns the shared default configuration: case and number
// splitting, no delimiters, continuous uppercase runs split.
func DefaultConfig() *Config { return defaultConfig }

// Rules returns the active boundary rules.
func (c *Config) Rules() RuleSet { return c.orDefault().rules }

// ProtectedRules returns the rules suppressed for the token that follows a
// matched delimiter.
func (c *Config) ProtectedRules() RuleSet { return c.orDefault().protected }

// SplitUpperContinuous reports whether "HTTPServer" splits into HTTP and Server.
func (c *Config) SplitUpperContinuous() bool { return c.orDefault().splitUpperCont }

// Delimiters returns the normalized delimiters, longest first.
func (c *Config) Delimiters() []string {
	return slices.Clone(c.orDefault().delimiters)
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}

func (c *Config) String() string {
	c = c.orDefault()
	return fmt.Sprintf("rules=%s protected=%s delimiters=%q splitUpperContinuous=%t",
		c.rules, c.protected, c.delimiters, c.splitUpperCont)
}

// Builder assembles a Config. A Builder is not safe for concurrent use.
type Builder struct {
	rules          RuleSet
	delimiters     []string
	protected      RuleSet
	splitUpperCont bool
}

// NewBuilder returns a builder primed with the default settings.
func NewBuilder() *Builder {
	return &Builder{
		rules:          DefaultRules,
		splitUpperCont: true,
	}
}

// Rules replaces the active rules. No arguments disables every rule.
func (b *Builder) Rules(rs ...Rule) *Builder {
	b.rules = Rules(rs...)
	return b
}

// RuleSet replaces the active rules with set.
func (b *Builder) RuleSet(set RuleSet) *Builder {
	b.rules = set
	return b
}

// Delimiters replaces the multi-character delimiters.
func (b *Builder) Delimiters(ds ...string) *Builder {
	b.delimiters = slices.Clone(ds)
	return b
}

// ProtectedRules sets the rules suppressed for the token following a
// delimiter match.
func (b *Builder) ProtectedRules(rs ...Rule) *Builder {
	b.protected = Rules(rs...)
	return b
}

// ProtectedRuleSet is ProtectedRules taking a set.
func (b *Builder) ProtectedRuleSet(set RuleSet) *Builder {
	b.protected = set
	return b
}

// SplitUpperContinuous controls splitting inside uppercase runs.
func (b *Builder) SplitUpperContinuous(v bool) *Builder {
	b.splitUpperCont = v
	return b
}

// Build normalizes the delimiters and compiles them into a trie.
func (b *Builder) Build() *Config {
	cfg := &Config{
		rules:          b.rules,
		protected:      b.protected,
		splitUpperCont: b.splitUpperCont,
	}
	cfg.delimiters = normalizeDelimiters(b.delimiters)
	if len(cfg.delimiters) > 0 {
		cfg.trie = newDelimiterTrie(cfg.delimiters)
	}
	return cfg
}

// WithExtraDelimiter returns a config with a single delimiter whose following
// token has protected suppressed. An empty delim yields DefaultConfig.
func WithExtraDelimiter(delim string, protected RuleSet) *Config {
	if delim == "" {
		return defaultConfig
	}
	return NewBuilder().Delimiters(delim).ProtectedRuleSet(protected).Build()
}

// ValidateDelimiters reports the first delimiter Build would drop for not
// being valid UTF-8. Blank entries are not an error.
func ValidateDelimiters(ds []string) error {
	for i, d := range ds {
		if !utf8.ValidString(d) {
			return fmt.Errorf("%w at index %d: %q is not valid utf-8", ErrInvalidDelimiter, i, d)
		}
	}
	return nil
}

func normalizeDelimiters(ds []string) []string {
	if len(ds) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ds))
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		d = strings.TrimSpace(d)
		if d == "" || !utf8.ValidString(d) {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})
	return out
}
