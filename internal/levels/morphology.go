// internal/levels/morphology.go
//
// Level two: the user sorts the coined words into parts of speech, then the
// stock word-formation rules are installed along with any rule packs found
// under .glossa/rulepacks/.

package levels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/level"
	morph "github.com/miravel/glossa/internal/morphology"
	"github.com/miravel/glossa/internal/rulepack"
	"github.com/miravel/glossa/internal/vocabulary"
)

type morphologyPhase int

const (
	morphPhaseClassify morphologyPhase = iota
	morphPhaseRules
)

var classKeys = map[string]vocabulary.WordClass{
	"n": vocabulary.ClassNoun,
	"v": vocabulary.ClassVerb,
	"a": vocabulary.ClassAdjective,
	"d": vocabulary.ClassAdverb,
}

// Morphology is the word-classification and rule-installation level.
type Morphology struct {
	level.Base

	phase     morphologyPhase
	current   string
	installed []string
}

// NewMorphology builds level two.
func NewMorphology() *Morphology {
	return &Morphology{
		Base: level.NewBase("Morphology Workshop", level.StageMorphology),
	}
}

// Init implements level.Level.
func (l *Morphology) Init(ctx *level.Context) tea.Cmd {
	l.SetContext(ctx)
	ctx.Logbook.Info("Level 2 · morphology workshop opened")
	if !l.advanceWord() {
		l.installRules()
	}
	return nil
}

// advanceWord pulls the next unclassified word. It reports whether one was
// available.
func (l *Morphology) advanceWord() bool {
	unknown := l.Context().Vocabulary.Words(vocabulary.ClassUnknown)
	if len(unknown) == 0 {
		l.current = ""
		return false
	}
	l.current = unknown[0]
	l.SetStatusMsg(fmt.Sprintf("%d word(s) left to classify", len(unknown)))
	return true
}

// Update implements level.Level.
func (l *Morphology) Update(msg tea.Msg) (level.Level, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch l.phase {
	case morphPhaseClassify:
		return l.updateClassify(keyMsg)
	case morphPhaseRules:
		if keyMsg.String() == "enter" {
			l.SetComplete(true)
			l.Context().Logbook.Info("Level 2 complete · %d rules installed", len(l.Context().Morphology.Rules()))
			return l, level.Complete(level.StageSyntax)
		}
	}
	return l, nil
}

func (l *Morphology) updateClassify(msg tea.KeyMsg) (level.Level, tea.Cmd) {
	if l.current == "" {
		l.installRules()
		return l, nil
	}
	key := msg.String()
	class, ok := classKeys[key]
	if !ok {
		if key != "enter" {
			return l, nil
		}
		// Enter accepts the default classification.
		class = vocabulary.ClassNoun
	}
	ctx := l.Context()
	ctx.Vocabulary.Classify(l.current, class)
	ctx.Logbook.Info("Classified %q as %s", l.current, class)
	if !l.advanceWord() {
		l.installRules()
	}
	return l, nil
}

// installRules registers the stock rule set, then any discovered packs.
// Stock rules register first so their names win the engine's first-match
// lookup over pack rules.
func (l *Morphology) installRules() {
	ctx := l.Context()
	morph.DefaultRules(ctx.Morphology)
	packs, err := rulepack.LoadDir(ctx.Config.RulepacksDir())
	if err != nil {
		l.SetStatusMsg(err.Error())
		ctx.Logbook.Error("Rule pack discovery failed: %v", err)
	}
	for _, pack := range packs {
		if err := pack.Install(ctx.Morphology); err != nil {
			ctx.Logbook.Error("Rule pack %s: %v", pack.Name, err)
			continue
		}
		l.installed = append(l.installed, pack.Name)
		ctx.Logbook.Info("Installed rule pack %s (%d rules)", pack.Name, len(pack.Rules))
	}
	l.phase = morphPhaseRules
	l.SetStatusMsg("Press Enter to continue to syntax")
}

// View implements level.Level.
func (l *Morphology) View() string {
	ctx := l.Context()
	if ctx == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Level 2 · Morphology"))
	b.WriteString("\n\n")
	switch l.phase {
	case morphPhaseClassify:
		b.WriteString(fmt.Sprintf("Word: %s\n\n", l.current))
		b.WriteString(hintStyle.Render("(n) noun    (v) verb    (a) adjective    (d) adverb    Enter → noun"))
	case morphPhaseRules:
		b.WriteString("Word-formation rules:\n\n")
		for _, rule := range ctx.Morphology.Rules() {
			marker := rule.Marker
			if marker == "" {
				marker = "·"
			}
			b.WriteString(fmt.Sprintf("  %-14s %-13s %-6s %s\n", rule.Name, rule.Type, marker, rule.Meaning))
		}
		if len(l.installed) > 0 {
			b.WriteString(fmt.Sprintf("\nRule packs: %s\n", strings.Join(l.installed, ", ")))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter → continue to syntax"))
	}
	if status := l.StatusMsg(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}
