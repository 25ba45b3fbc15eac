// internal/vocabulary/book.go
//
// The vocabulary book tracks generated words by part of speech. Freshly
// generated words land in the unknown class until the walkthrough asks the
// user to classify them. The engines never touch the book; levels read from
// it and feed selected words into morphology and syntax.

package vocabulary

import "strings"

// WordClass labels a part of speech.
type WordClass string

const (
	ClassUnknown   WordClass = "unknown"
	ClassNoun      WordClass = "noun"
	ClassVerb      WordClass = "verb"
	ClassAdjective WordClass = "adjective"
	ClassAdverb    WordClass = "adverb"
)

// Classes lists the word classes in display order, unknown excluded.
func Classes() []WordClass {
	return []WordClass{ClassNoun, ClassVerb, ClassAdjective, ClassAdverb}
}

// Valid reports whether c is a known class label.
func (c WordClass) Valid() bool {
	switch c {
	case ClassUnknown, ClassNoun, ClassVerb, ClassAdjective, ClassAdverb:
		return true
	}
	return false
}

// Book holds the per-class word lists. Words may repeat; order of insertion
// is preserved.
type Book struct {
	words map[WordClass][]string
}

// NewBook returns an empty vocabulary book.
func NewBook() *Book {
	return &Book{words: map[WordClass][]string{}}
}

// Add appends a word to the given class. Blank words and invalid classes are
// ignored.
func (b *Book) Add(class WordClass, word string) {
	word = strings.TrimSpace(word)
	if word == "" || !class.Valid() {
		return
	}
	b.words[class] = append(b.words[class], word)
}

// Words returns the class's word list in insertion order.
func (b *Book) Words(class WordClass) []string {
	return append([]string{}, b.words[class]...)
}

// Count returns how many words the class holds.
func (b *Book) Count(class WordClass) int {
	return len(b.words[class])
}

// Classify moves the first occurrence of word out of the unknown class into
// target. It reports whether the word was found. An invalid target counts as
// noun, matching the walkthrough's default choice.
func (b *Book) Classify(word string, target WordClass) bool {
	if !target.Valid() || target == ClassUnknown {
		target = ClassNoun
	}
	unknown := b.words[ClassUnknown]
	for i, w := range unknown {
		if w != word {
			continue
		}
		b.words[ClassUnknown] = append(unknown[:i], unknown[i+1:]...)
		b.words[target] = append(b.words[target], word)
		return true
	}
	return false
}
