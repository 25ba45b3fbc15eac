// internal/syntax/system.go

package syntax

import "strings"

// WordOrder is the canonical arrangement of subject, verb and object in a
// declarative sentence.
type WordOrder string

const (
	OrderSVO WordOrder = "SVO"
	OrderSOV WordOrder = "SOV"
	OrderVSO WordOrder = "VSO"
)

// Orders lists the selectable word orders.
func Orders() []WordOrder {
	return []WordOrder{OrderSVO, OrderSOV, OrderVSO}
}

// Normalize maps any value onto a supported order, falling back to SVO for
// anything unrecognized.
func Normalize(value string) WordOrder {
	switch WordOrder(strings.ToUpper(strings.TrimSpace(value))) {
	case OrderSOV:
		return OrderSOV
	case OrderVSO:
		return OrderVSO
	default:
		return OrderSVO
	}
}

// Description returns a short human-readable gloss for the order.
func (o WordOrder) Description() string {
	switch o {
	case OrderSOV:
		return "subject-object-verb (Japanese, Korean)"
	case OrderVSO:
		return "verb-subject-object (Irish, Austronesian)"
	default:
		return "subject-verb-object (English, Mandarin)"
	}
}

// Rule is descriptive metadata about a syntactic construction. The sentence
// generator never consults it; the walkthrough records and displays it.
type Rule struct {
	Name        string
	Pattern     string
	Description string
}

// System is the syntax engine.
type System struct {
	order WordOrder
	rules []Rule
}

// NewSystem returns a syntax engine defaulting to SVO.
func NewSystem() *System {
	return &System{order: OrderSVO}
}

// SetWordOrder updates the word order, coercing unrecognized values to SVO.
func (s *System) SetWordOrder(value string) WordOrder {
	s.order = Normalize(value)
	return s.order
}

// WordOrder returns the active word order.
func (s *System) WordOrder() WordOrder {
	return s.order
}

// AddRule appends descriptive metadata.
func (s *System) AddRule(name, pattern, description string) {
	s.rules = append(s.rules, Rule{Name: name, Pattern: pattern, Description: description})
}

// Rules returns the metadata list in registration order.
func (s *System) Rules() []Rule {
	return append([]Rule{}, s.rules...)
}

// Sentence arranges the three slots under the active word order. Empty slots
// are dropped so the result never carries doubled or trailing spaces.
func (s *System) Sentence(subject, verb, object string) string {
	var slots []string
	switch s.order {
	case OrderSOV:
		slots = []string{subject, object, verb}
	case OrderVSO:
		slots = []string{verb, subject, object}
	default:
		slots = []string{subject, verb, object}
	}
	words := make([]string, 0, len(slots))
	for _, slot := range slots {
		if trimmed := strings.TrimSpace(slot); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return strings.Join(words, " ")
}

// YesNoQuestion wraps the declarative sentence in the inverted question
// punctuation pair.
func (s *System) YesNoQuestion(subject, verb, object string) string {
	return "¿" + s.Sentence(subject, verb, object) + "?"
}
