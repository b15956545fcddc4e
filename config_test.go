package idcase

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildNormalizesDelimiters(t *testing.T) {
	cfg := NewBuilder().
		Delimiters(" . ", "", "::", "   ", ".", ":::", "::", "->").
		Build()
	want := []string{":::", "::", "->", "."}
	if got := cfg.Delimiters(); !slices.Equal(got, want) {
		t.Fatalf("delimiters=%q want %q", got, want)
	}
	if cfg.trie == nil {
		t.Fatalf("expected compiled trie")
	}
}

func TestBuildWithoutDelimitersHasNoTrie(t *testing.T) {
	cfg := NewBuilder().Delimiters(" ", "\t", "").Build()
	if cfg.trie != nil {
		t.Fatalf("expected no trie for blank delimiters")
	}
	if cfg.Delimiters() != nil {
		t.Fatalf("expected nil delimiters, got %q", cfg.Delimiters())
	}
}

func TestBuildDropsInvalidUTF8Delimiters(t *testing.T) {
	bad := string([]byte{0xff, 0xfe})
	cfg := NewBuilder().Delimiters(bad, "::").Build()
	if got := cfg.Delimiters(); !slices.Equal(got, []string{"::"}) {
		t.Fatalf("delimiters=%q", got)
	}
	if err := ValidateDelimiters([]string{"::", bad}); !errors.Is(err, ErrInvalidDelimiter) {
		t.Fatalf("expected ErrInvalidDelimiter, got %v", err)
	}
	if err := ValidateDelimiters([]string{"::", "", "→"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigIsIsolatedFromBuilder(t *testing.T) {
	ds := []string{"::"}
	b := NewBuilder().Delimiters(ds...)
	cfg := b.Build()
	ds[0] = "--"
	b.Delimiters("->").Rules()
	if got := cfg.Delimiters(); !slices.Equal(got, []string{"::"}) {
		t.Fatalf("config changed after builder reuse: %q", got)
	}
	if cfg.Rules() != DefaultRules {
		t.Fatalf("rules changed after builder reuse: %s", cfg.Rules())
	}
	got := cfg.Delimiters()
	got[0] = "xx"
	if cfg.Delimiters()[0] != "::" {
		t.Fatalf("Delimiters exposed internal slice")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rules() != DefaultRules || !cfg.ProtectedRules().Empty() || !cfg.SplitUpperContinuous() {
		t.Fatalf("unexpected default config: %s", cfg)
	}
	var nilCfg *Config
	if nilCfg.Rules() != DefaultRules || !nilCfg.SplitUpperContinuous() {
		t.Fatalf("nil config should behave like the default")
	}
}

func TestWithExtraDelimiter(t *testing.T) {
	if WithExtraDelimiter("", Rules(RuleCase)) != DefaultConfig() {
		t.Fatalf("empty delimiter should return the default config")
	}
	cfg := WithExtraDelimiter("::", Rules(RuleCase))
	if !cfg.ProtectedRules().Has(RuleCase) {
		t.Fatalf("expected case protected")
	}
	if got := SnakeCase("MyClass::getValue", cfg, false); got != "my_class_getvalue" {
		t.Fatalf("got %q", got)
	}
}
