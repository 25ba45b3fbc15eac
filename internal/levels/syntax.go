// internal/levels/syntax.go
//
// Level three: pick the basic word order, record the declarative and
// question rule metadata, and preview sample sentences built from the
// classified vocabulary.

package levels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/level"
	"github.com/miravel/glossa/internal/syntax"
	"github.com/miravel/glossa/internal/vocabulary"
)

type syntaxPhase int

const (
	synPhaseOrder syntaxPhase = iota
	synPhaseSamples
)

type sample struct {
	sentence string
	question string
}

// Syntax is the word-order selection and sentence preview level.
type Syntax struct {
	level.Base

	phase   syntaxPhase
	cursor  int
	samples []sample
}

// NewSyntax builds level three.
func NewSyntax() *Syntax {
	return &Syntax{
		Base: level.NewBase("Syntax Workshop", level.StageSyntax),
	}
}

// Init implements level.Level.
func (l *Syntax) Init(ctx *level.Context) tea.Cmd {
	l.SetContext(ctx)
	ctx.Logbook.Info("Level 3 · syntax workshop opened")
	for i, order := range syntax.Orders() {
		if order == ctx.Syntax.WordOrder() {
			l.cursor = i
		}
	}
	l.SetStatusMsg("Choose the basic word order of your language")
	return nil
}

// Update implements level.Level.
func (l *Syntax) Update(msg tea.Msg) (level.Level, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch l.phase {
	case synPhaseOrder:
		return l.updateOrder(keyMsg)
	case synPhaseSamples:
		if keyMsg.String() == "enter" {
			l.SetComplete(true)
			l.Context().Logbook.Info("Level 3 complete · word order %s", l.Context().Syntax.WordOrder())
			return l, level.Complete(level.StageShowcase)
		}
	}
	return l, nil
}

func (l *Syntax) updateOrder(msg tea.KeyMsg) (level.Level, tea.Cmd) {
	orders := syntax.Orders()
	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(orders)-1 {
			l.cursor++
		}
	case "1", "2", "3":
		l.cursor = int(msg.String()[0] - '1')
	case "enter":
		l.chooseOrder(orders[l.cursor])
	}
	return l, nil
}

func (l *Syntax) chooseOrder(order syntax.WordOrder) {
	ctx := l.Context()
	ctx.Syntax.SetWordOrder(string(order))
	if err := ctx.Config.SetWordOrder(string(order)); err != nil {
		ctx.Logbook.Warn("Could not persist word order: %v", err)
	}
	ctx.Syntax.AddRule("basic_sentence", string(order), "basic declarative sentence")
	ctx.Syntax.AddRule("question", string(order)+"+¿?", "yes/no question")
	ctx.Logbook.Info("Word order set to %s", order)
	l.buildSamples()
}

// buildSamples previews sentences from the classified vocabulary, coining a
// noun or verb on the spot when a class is still empty.
func (l *Syntax) buildSamples() {
	ctx := l.Context()
	for _, class := range []vocabulary.WordClass{vocabulary.ClassNoun, vocabulary.ClassVerb} {
		if ctx.Vocabulary.Count(class) > 0 {
			continue
		}
		word, err := ctx.Phonology.GenerateWord(0)
		if err != nil {
			l.SetStatusMsg(err.Error())
			ctx.Logbook.Error("Could not coin a %s: %v", class, err)
			return
		}
		ctx.Vocabulary.Add(class, word)
	}
	nouns := ctx.Vocabulary.Words(vocabulary.ClassNoun)
	verbs := ctx.Vocabulary.Words(vocabulary.ClassVerb)
	count := ctx.Config.Session.Generation.SampleSentences
	l.samples = make([]sample, 0, count)
	for i := 0; i < count; i++ {
		subject := nouns[ctx.Rand.Intn(len(nouns))]
		verb := verbs[ctx.Rand.Intn(len(verbs))]
		object := ""
		if len(nouns) > 1 {
			object = nouns[ctx.Rand.Intn(len(nouns))]
		}
		l.samples = append(l.samples, sample{
			sentence: ctx.Syntax.Sentence(subject, verb, object),
			question: ctx.Syntax.YesNoQuestion(subject, verb, object),
		})
	}
	l.phase = synPhaseSamples
	l.SetStatusMsg("Press Enter to continue to the showcase")
}

// View implements level.Level.
func (l *Syntax) View() string {
	ctx := l.Context()
	if ctx == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Level 3 · Syntax"))
	b.WriteString("\n\n")
	switch l.phase {
	case synPhaseOrder:
		b.WriteString("Basic word order:\n\n")
		for i, order := range syntax.Orders() {
			marker := "  "
			if i == l.cursor {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s%d. %s · %s\n", marker, i+1, order, order.Description()))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("↑/↓ or 1-3 to choose    Enter → confirm"))
	case synPhaseSamples:
		b.WriteString(fmt.Sprintf("Sample sentences (%s):\n\n", ctx.Syntax.WordOrder()))
		for i, s := range l.samples {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s.sentence))
			b.WriteString(fmt.Sprintf("     %s\n", s.question))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter → continue to the showcase"))
	}
	if status := l.StatusMsg(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}
