// internal/phonology/system.go
//
// The phonology engine owns the grapheme inventories and syllable patterns
// for a language and synthesizes phonotactically legal words from them.
// Word generation is generate-and-test: build a candidate from random
// syllables, reject it if it violates any phonotactic constraint, repeat.

package phonology

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrEmptyInventory is returned when generation is requested while the
	// consonant or vowel inventory is empty.
	ErrEmptyInventory = errors.New("phonology: inventory is empty")

	// ErrUnsatisfiable is returned when the retry ceiling is exhausted without
	// producing a legal word. A pathological inventory (for example consonants
	// restricted to letters that form no allowed cluster and no legal coda)
	// can make every candidate illegal.
	ErrUnsatisfiable = errors.New("phonology: constraints unsatisfiable")
)

// allowedOnsetClusters are the only two-consonant sequences a legal word may
// contain. The CCV pattern draws its onset directly from this list.
var allowedOnsetClusters = []string{
	"pl", "pr", "bl", "br", "fl", "fr",
	"cl", "cr", "gl", "gr",
	"tr", "dr",
}

var allowedClusterSet = func() map[string]bool {
	set := make(map[string]bool, len(allowedOnsetClusters))
	for _, c := range allowedOnsetClusters {
		set[c] = true
	}
	return set
}()

// allowedFinalConsonants are the consonants a word may end in.
var allowedFinalConsonants = map[rune]bool{
	'n': true, 's': true, 'r': true, 'l': true, 'd': true, 'z': true,
}

const (
	maxConsonantLen = 2
	maxVowelLen     = 3

	defaultMaxAttempts = 10000
)

// DefaultConsonants returns the stock consonant inventory.
func DefaultConsonants() []string {
	return []string{
		"p", "b", "t", "d", "k", "g", "m", "n", "s", "z",
		"l", "r", "ñ", "ll", "j", "ch", "f", "v", "h",
	}
}

// DefaultVowels returns the stock vowel inventory.
func DefaultVowels() []string {
	return []string{"a", "e", "i", "o", "u"}
}

// DefaultPatterns returns the stock syllable pattern list.
func DefaultPatterns() []string {
	return []string{"CV", "CVC", "CVV", "V", "CCV"}
}

// System is the phonology engine. It is single-owner: callers must not share
// one instance across goroutines.
type System struct {
	consonants []string
	vowels     []string
	patterns   []string

	vowelRunes map[rune]bool

	rand        *rand.Rand
	maxAttempts int
	collator    *collate.Collator
}

// Option customizes a System at construction time.
type Option func(*System)

// WithRand injects the random source, mainly for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(s *System) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithMaxAttempts sets the generate-and-test retry ceiling.
func WithMaxAttempts(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithConsonants replaces the default consonant inventory.
func WithConsonants(graphemes []string) Option {
	return func(s *System) {
		if len(graphemes) > 0 {
			s.consonants = nil
			for _, g := range graphemes {
				_ = s.AddConsonant(g)
			}
		}
	}
}

// WithVowels replaces the default vowel inventory.
func WithVowels(graphemes []string) Option {
	return func(s *System) {
		if len(graphemes) > 0 {
			s.vowels = nil
			for _, g := range graphemes {
				_ = s.AddVowel(g)
			}
		}
	}
}

// WithPatterns replaces the default syllable pattern list.
func WithPatterns(patterns []string) Option {
	return func(s *System) {
		cleaned := make([]string, 0, len(patterns))
		for _, p := range patterns {
			p = strings.ToUpper(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			cleaned = append(cleaned, p)
		}
		if len(cleaned) > 0 {
			s.patterns = cleaned
		}
	}
}

// NewSystem builds a phonology engine seeded with the stock Spanish-flavoured
// inventories.
func NewSystem(opts ...Option) *System {
	s := &System{
		patterns:    DefaultPatterns(),
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		maxAttempts: defaultMaxAttempts,
		collator:    collate.New(language.Spanish),
	}
	for _, g := range DefaultConsonants() {
		_ = s.AddConsonant(g)
	}
	for _, g := range DefaultVowels() {
		_ = s.AddVowel(g)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.rebuildVowelRunes()
	return s
}

// AddConsonant inserts a consonant grapheme (1-2 characters). Adding a
// grapheme that is already present is a no-op.
func (s *System) AddConsonant(grapheme string) error {
	g, err := normalizeGrapheme(grapheme, maxConsonantLen)
	if err != nil {
		return fmt.Errorf("phonology: consonant %q: %w", grapheme, err)
	}
	s.consonants = insertGrapheme(s.consonants, g, s.collator)
	return nil
}

// AddVowel inserts a vowel grapheme (1-3 characters). Adding a grapheme that
// is already present is a no-op.
func (s *System) AddVowel(grapheme string) error {
	g, err := normalizeGrapheme(grapheme, maxVowelLen)
	if err != nil {
		return fmt.Errorf("phonology: vowel %q: %w", grapheme, err)
	}
	s.vowels = insertGrapheme(s.vowels, g, s.collator)
	s.rebuildVowelRunes()
	return nil
}

// RemoveConsonant deletes a consonant grapheme. It reports whether the
// grapheme was present.
func (s *System) RemoveConsonant(grapheme string) bool {
	g := norm.NFC.String(strings.TrimSpace(grapheme))
	next, removed := removeGrapheme(s.consonants, g)
	s.consonants = next
	return removed
}

// RemoveVowel deletes a vowel grapheme. It reports whether the grapheme was
// present.
func (s *System) RemoveVowel(grapheme string) bool {
	g := norm.NFC.String(strings.TrimSpace(grapheme))
	next, removed := removeGrapheme(s.vowels, g)
	s.vowels = next
	if removed {
		s.rebuildVowelRunes()
	}
	return removed
}

// Consonants returns the consonant inventory in Spanish collation order.
func (s *System) Consonants() []string {
	return append([]string{}, s.consonants...)
}

// Vowels returns the vowel inventory in Spanish collation order.
func (s *System) Vowels() []string {
	return append([]string{}, s.vowels...)
}

// Patterns returns the syllable pattern list in registration order.
func (s *System) Patterns() []string {
	return append([]string{}, s.patterns...)
}

// GenerateSyllable produces one syllable from a uniformly chosen pattern.
// The CCV pattern consumes a whole onset cluster rather than two raw
// consonant picks.
func (s *System) GenerateSyllable() (string, error) {
	if len(s.consonants) == 0 || len(s.vowels) == 0 {
		return "", ErrEmptyInventory
	}
	if len(s.patterns) == 0 {
		return "", fmt.Errorf("phonology: no syllable patterns configured")
	}
	pattern := s.patterns[s.rand.Intn(len(s.patterns))]
	if pattern == "CCV" {
		cluster := allowedOnsetClusters[s.rand.Intn(len(allowedOnsetClusters))]
		vowel := s.vowels[s.rand.Intn(len(s.vowels))]
		return cluster + vowel, nil
	}
	var b strings.Builder
	for _, symbol := range pattern {
		switch symbol {
		case 'C':
			b.WriteString(s.consonants[s.rand.Intn(len(s.consonants))])
		case 'V':
			b.WriteString(s.vowels[s.rand.Intn(len(s.vowels))])
		}
	}
	return b.String(), nil
}

// GenerateWord produces a phonotactically legal word of syllableCount
// syllables. A syllableCount of zero or less draws the count uniformly from
// {1, 2, 3}. Candidates violating any constraint are discarded wholesale and
// rebuilt from scratch; after the retry ceiling the call fails with
// ErrUnsatisfiable instead of looping forever.
func (s *System) GenerateWord(syllableCount int) (string, error) {
	if len(s.consonants) == 0 || len(s.vowels) == 0 {
		return "", ErrEmptyInventory
	}
	count := syllableCount
	if count <= 0 {
		count = 1 + s.rand.Intn(3)
	}
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		var b strings.Builder
		for i := 0; i < count; i++ {
			syllable, err := s.GenerateSyllable()
			if err != nil {
				return "", err
			}
			b.WriteString(syllable)
		}
		candidate := b.String()
		if s.wordIsLegal(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no legal word after %d attempts", ErrUnsatisfiable, s.maxAttempts)
}

// wordIsLegal applies the four phonotactic constraints:
//  1. the word must not start with "rr"
//  2. every overlapping two-character all-consonant window must be an
//     allowed onset cluster
//  3. no three or more consecutive vowel characters
//  4. a final consonant must be one of n s r l d z
func (s *System) wordIsLegal(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	if strings.HasPrefix(word, "rr") {
		return false
	}
	for i := 0; i+1 < len(runes); i++ {
		if s.isVowelRune(runes[i]) || s.isVowelRune(runes[i+1]) {
			continue
		}
		if !allowedClusterSet[string(runes[i:i+2])] {
			return false
		}
	}
	run := 0
	for _, r := range runes {
		if s.isVowelRune(r) {
			run++
			if run >= 3 {
				return false
			}
		} else {
			run = 0
		}
	}
	last := runes[len(runes)-1]
	if !s.isVowelRune(last) && !allowedFinalConsonants[last] {
		return false
	}
	return true
}

// isVowelRune reports whether r belongs to any configured vowel grapheme.
// With the stock inventory this is exactly the class {a e i o u}.
func (s *System) isVowelRune(r rune) bool {
	return s.vowelRunes[r]
}

func (s *System) rebuildVowelRunes() {
	set := make(map[rune]bool)
	for _, v := range s.vowels {
		for _, r := range v {
			set[r] = true
		}
	}
	s.vowelRunes = set
}

func normalizeGrapheme(grapheme string, maxRunes int) (string, error) {
	g := norm.NFC.String(strings.TrimSpace(grapheme))
	n := len([]rune(g))
	if n == 0 {
		return "", fmt.Errorf("grapheme is empty")
	}
	if n > maxRunes {
		return "", fmt.Errorf("grapheme longer than %d characters", maxRunes)
	}
	return g, nil
}

// insertGrapheme keeps the inventory sorted under Spanish collation so that
// listings are stable and seeded generation is deterministic.
func insertGrapheme(inventory []string, grapheme string, c *collate.Collator) []string {
	for _, existing := range inventory {
		if existing == grapheme {
			return inventory
		}
	}
	inventory = append(inventory, grapheme)
	c.SortStrings(inventory)
	return inventory
}

func removeGrapheme(inventory []string, grapheme string) ([]string, bool) {
	for i, existing := range inventory {
		if existing == grapheme {
			return append(inventory[:i], inventory[i+1:]...), true
		}
	}
	return inventory, false
}
