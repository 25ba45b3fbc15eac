// internal/morphology/system.go
//
// The morphology engine keeps an ordered list of word-formation rules and
// applies them to base words. Rule names are not unique: lookup is a linear
// first-match scan, so the earliest registration of a name wins.

package morphology

import (
	"errors"
	"fmt"
	"strings"
)

// RuleType enumerates the supported word-formation mechanisms.
type RuleType string

const (
	RulePrefix        RuleType = "prefix"
	RuleSuffix        RuleType = "suffix"
	RuleInfix         RuleType = "infix"
	RuleReduplication RuleType = "reduplication"
)

// ErrUnsupportedRuleType is returned when a matched rule declares a type the
// engine cannot apply. Only infix falls into this bucket today.
var ErrUnsupportedRuleType = errors.New("morphology: unsupported rule type")

// Valid reports whether t is a member of the rule type domain.
func (t RuleType) Valid() bool {
	switch t {
	case RulePrefix, RuleSuffix, RuleInfix, RuleReduplication:
		return true
	}
	return false
}

// Rule is one word-formation rule. Marker may be empty when the rule carries
// special-cased logic, as the stock plural rule does. Meaning is a gloss for
// display only.
type Rule struct {
	Name    string
	Type    RuleType
	Marker  string
	Meaning string
}

// pluralRuleName triggers the two-tier dispatch: a matched rule with this
// exact name routes to Pluralize regardless of its declared type.
const pluralRuleName = "plural"

// System is the morphology engine.
type System struct {
	rules []Rule
}

// NewSystem returns an empty morphology engine.
func NewSystem() *System {
	return &System{}
}

// AddRule appends a rule. Duplicate names are allowed; because Apply scans in
// registration order, the first registration of a name shadows later ones.
func (s *System) AddRule(name string, ruleType RuleType, marker, meaning string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("morphology: rule name is required")
	}
	if !ruleType.Valid() {
		return fmt.Errorf("morphology: rule %s: unknown type %q", name, ruleType)
	}
	s.rules = append(s.rules, Rule{Name: name, Type: ruleType, Marker: marker, Meaning: meaning})
	return nil
}

// Rules returns the rule list in registration order.
func (s *System) Rules() []Rule {
	return append([]Rule{}, s.rules...)
}

// Apply transforms baseWord with the first rule named ruleName. An unknown
// rule name returns the input unchanged rather than failing; generation
// pipelines stay alive when a caller asks for a rule that was never
// registered. The only error case is a matched rule with an unsupported type.
func (s *System) Apply(baseWord, ruleName string) (string, error) {
	for _, rule := range s.rules {
		if rule.Name != ruleName {
			continue
		}
		if rule.Name == pluralRuleName {
			return Pluralize(baseWord), nil
		}
		switch rule.Type {
		case RulePrefix:
			return rule.Marker + baseWord, nil
		case RuleSuffix:
			return baseWord + rule.Marker, nil
		case RuleReduplication:
			return baseWord + baseWord, nil
		default:
			return baseWord, fmt.Errorf("%w: rule %s is %s", ErrUnsupportedRuleType, rule.Name, rule.Type)
		}
	}
	return baseWord, nil
}

// Pluralize produces the plural form under Spanish orthography: vowel-final
// words take -s, z-final words trade the z for -ces, and any other
// consonant-final word takes -es. The empty string stays empty.
func Pluralize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	switch last := runes[len(runes)-1]; last {
	case 'a', 'e', 'i', 'o', 'u':
		return word + "s"
	case 'z':
		return string(runes[:len(runes)-1]) + "ces"
	default:
		return word + "es"
	}
}

// DefaultRules installs the stock rule set: the Spanish-flavoured prefixes
// and suffixes plus the special-cased plural rule.
func DefaultRules(s *System) {
	stock := []Rule{
		{Name: "re_prefix", Type: RulePrefix, Marker: "re", Meaning: "again"},
		{Name: "des_prefix", Type: RulePrefix, Marker: "des", Meaning: "negation / reversal"},
		{Name: "in_prefix", Type: RulePrefix, Marker: "in", Meaning: "negation"},
		{Name: "con_prefix", Type: RulePrefix, Marker: "con", Meaning: "together"},
		{Name: "plural_s", Type: RuleSuffix, Marker: "s", Meaning: "plural (vowel-final)"},
		{Name: "plural_es", Type: RuleSuffix, Marker: "es", Meaning: "plural (consonant-final)"},
		{Name: "cion_suffix", Type: RuleSuffix, Marker: "ción", Meaning: "nominalization"},
		{Name: "mente_suffix", Type: RuleSuffix, Marker: "mente", Meaning: "adverbialization"},
		{Name: "ar_suffix", Type: RuleSuffix, Marker: "ar", Meaning: "verb infinitive"},
		{Name: "er_suffix", Type: RuleSuffix, Marker: "er", Meaning: "verb infinitive"},
		{Name: "ir_suffix", Type: RuleSuffix, Marker: "ir", Meaning: "verb infinitive"},
		{Name: "plural", Type: RuleSuffix, Marker: "", Meaning: "automatic plural"},
	}
	for _, rule := range stock {
		_ = s.AddRule(rule.Name, rule.Type, rule.Marker, rule.Meaning)
	}
}
