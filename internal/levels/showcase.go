// internal/levels/showcase.go
//
// Final level: weave everything together. Random sentences drawn from the
// classified vocabulary, decorated by the installed morphological rules, and
// a closing summary of the language that was built.

package levels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/level"
	"github.com/miravel/glossa/internal/vocabulary"
)

// Showcase is the closing level that demonstrates the finished language.
type Showcase struct {
	level.Base

	sentences []string
}

// NewShowcase builds the final level.
func NewShowcase() *Showcase {
	return &Showcase{
		Base: level.NewBase("Language Showcase", level.StageShowcase),
	}
}

// Init implements level.Level.
func (l *Showcase) Init(ctx *level.Context) tea.Cmd {
	l.SetContext(ctx)
	ctx.Logbook.Info("Showcase opened")
	l.buildShowcase()
	return nil
}

// Update implements level.Level.
func (l *Showcase) Update(msg tea.Msg) (level.Level, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch keyMsg.String() {
	case "r":
		l.buildShowcase()
	case "enter":
		l.SetComplete(true)
		l.Context().Logbook.Info("Walkthrough complete")
		return l, level.Complete(level.StageComplete)
	}
	return l, nil
}

// buildShowcase draws fresh sentences. Nouns and verbs are guaranteed by the
// syntax level; adjectives may or may not exist.
func (l *Showcase) buildShowcase() {
	ctx := l.Context()
	nouns := ctx.Vocabulary.Words(vocabulary.ClassNoun)
	verbs := ctx.Vocabulary.Words(vocabulary.ClassVerb)
	if len(nouns) == 0 || len(verbs) == 0 {
		l.SetStatusMsg("No vocabulary to show; revisit the earlier levels")
		return
	}
	adjectives := ctx.Vocabulary.Words(vocabulary.ClassAdjective)

	count := ctx.Config.Session.Generation.ShowcaseSentences
	l.sentences = make([]string, 0, count)
	for i := 0; i < count; i++ {
		l.sentences = append(l.sentences, l.buildSentence(nouns, verbs, adjectives))
	}
	l.SetStatusMsg("r → redraw    Enter → finish")
}

func (l *Showcase) buildSentence(nouns, verbs, adjectives []string) string {
	ctx := l.Context()
	subject := nouns[ctx.Rand.Intn(len(nouns))]
	verb := verbs[ctx.Rand.Intn(len(verbs))]
	object := ""
	if len(nouns) > 1 {
		object = nouns[ctx.Rand.Intn(len(nouns))]
	}

	if ctx.Rand.Float64() < 0.3 {
		subject = l.inflect(subject, "plural")
	}
	if object != "" && ctx.Rand.Float64() < 0.3 {
		object = l.inflect(object, "plural")
	}
	if ctx.Rand.Float64() < 0.3 {
		verb = l.inflect(verb, "in_prefix")
	} else if ctx.Rand.Float64() < 0.3 {
		verb = l.inflect(verb, "ar_suffix")
	}
	if len(adjectives) > 0 && object != "" && ctx.Rand.Float64() < 0.3 {
		adverb := l.inflect(adjectives[ctx.Rand.Intn(len(adjectives))], "mente_suffix")
		object = adverb + " " + object
	}

	if ctx.Rand.Float64() < 0.2 {
		return ctx.Syntax.YesNoQuestion(subject, verb, object)
	}
	return ctx.Syntax.Sentence(subject, verb, object)
}

// inflect applies a rule by name, falling back to the bare word when the rule
// cannot apply.
func (l *Showcase) inflect(word, rule string) string {
	out, err := l.Context().Morphology.Apply(word, rule)
	if err != nil {
		return word
	}
	return out
}

// View implements level.Level.
func (l *Showcase) View() string {
	ctx := l.Context()
	if ctx == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Level 4 · Showcase"))
	b.WriteString("\n\n")
	b.WriteString("Your language in action:\n\n")
	for i, s := range l.sentences {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
	}
	b.WriteString("\n")
	b.WriteString(l.summary())
	if status := l.StatusMsg(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}

func (l *Showcase) summary() string {
	ctx := l.Context()
	var b strings.Builder
	b.WriteString("Language summary:\n")
	b.WriteString(fmt.Sprintf("  consonants  %d\n", len(ctx.Phonology.Consonants())))
	b.WriteString(fmt.Sprintf("  vowels      %d\n", len(ctx.Phonology.Vowels())))
	b.WriteString(fmt.Sprintf("  word order  %s\n", ctx.Syntax.WordOrder()))
	b.WriteString(fmt.Sprintf("  rules       %d\n", len(ctx.Morphology.Rules())))
	b.WriteString(fmt.Sprintf("  nouns %d · verbs %d · adjectives %d · adverbs %d",
		ctx.Vocabulary.Count(vocabulary.ClassNoun),
		ctx.Vocabulary.Count(vocabulary.ClassVerb),
		ctx.Vocabulary.Count(vocabulary.ClassAdjective),
		ctx.Vocabulary.Count(vocabulary.ClassAdverb)))
	return b.String()
}
