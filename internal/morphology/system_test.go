package morphology

import (
	"errors"
	"testing"
)

func newStockSystem() *System {
	s := NewSystem()
	DefaultRules(s)
	return s
}

func TestApplyPrefixSuffixReduplication(t *testing.T) {
	s := newStockSystem()
	if err := s.AddRule("doubler", RuleReduplication, "", "emphasis"); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	cases := []struct {
		word, rule, want string
	}{
		{"gato", "re_prefix", "regato"},
		{"gato", "in_prefix", "ingato"},
		{"luma", "ar_suffix", "lumaar"},
		{"luma", "mente_suffix", "lumamente"},
		{"tilo", "doubler", "tilotilo"},
	}
	for _, tc := range cases {
		got, err := s.Apply(tc.word, tc.rule)
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", tc.word, tc.rule, err)
		}
		if got != tc.want {
			t.Fatalf("Apply(%q, %q) = %q, want %q", tc.word, tc.rule, got, tc.want)
		}
	}
}

func TestApplyUnknownRuleIsPassThrough(t *testing.T) {
	s := newStockSystem()
	got, err := s.Apply("gato", "nope")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "gato" {
		t.Fatalf("unknown rule should return input unchanged, got %q", got)
	}
}

func TestApplyFirstMatchWinsOnDuplicateNames(t *testing.T) {
	s := NewSystem()
	if err := s.AddRule("mark", RulePrefix, "a", ""); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	if err := s.AddRule("mark", RuleSuffix, "b", ""); err != nil {
		t.Fatalf("AddRule duplicate: %v", err)
	}
	got, err := s.Apply("word", "mark")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "aword" {
		t.Fatalf("expected the first registration to win, got %q", got)
	}
	if len(s.Rules()) != 2 {
		t.Fatalf("duplicate registration should still append, have %d rules", len(s.Rules()))
	}
}

func TestApplyPluralOverridesDeclaredType(t *testing.T) {
	s := NewSystem()
	// The stock plural rule declares suffix with an empty marker; dispatch on
	// the literal name must route to Pluralize instead of appending nothing.
	if err := s.AddRule("plural", RuleSuffix, "", "automatic plural"); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	got, err := s.Apply("luz", "plural")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "luces" {
		t.Fatalf("Apply(luz, plural) = %q, want luces", got)
	}
}

func TestApplyInfixFailsLoudly(t *testing.T) {
	s := NewSystem()
	if err := s.AddRule("inner", RuleInfix, "xx", ""); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	got, err := s.Apply("word", "inner")
	if !errors.Is(err, ErrUnsupportedRuleType) {
		t.Fatalf("expected ErrUnsupportedRuleType, got %v", err)
	}
	if got != "word" {
		t.Fatalf("infix failure should leave the word unchanged, got %q", got)
	}
}

func TestAddRuleValidation(t *testing.T) {
	s := NewSystem()
	if err := s.AddRule("", RulePrefix, "x", ""); err == nil {
		t.Fatalf("expected error for empty rule name")
	}
	if err := s.AddRule("bad", RuleType("circumfix"), "x", ""); err == nil {
		t.Fatalf("expected error for unknown rule type")
	}
}

func TestPluralizeTable(t *testing.T) {
	cases := []struct{ word, want string }{
		{"casa", "casas"},
		{"luz", "luces"},
		{"papel", "papeles"},
		{"", ""},
		{"colibrí", "colibríes"},
	}
	for _, tc := range cases {
		if got := Pluralize(tc.word); got != tc.want {
			t.Fatalf("Pluralize(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestPluralizeIsNotIdempotent(t *testing.T) {
	s := newStockSystem()
	once, err := s.Apply("casa", "plural")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	twice, err := s.Apply(once, "plural")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Double pluralization is deliberately non-canonical: casas -> casases.
	if twice == once {
		t.Fatalf("expected pluralizing twice to change the word, got %q twice", twice)
	}
	if twice != "casases" {
		t.Fatalf("Pluralize(Pluralize(casa)) = %q, want casases", twice)
	}
}
