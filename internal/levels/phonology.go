// internal/levels/phonology.go
//
// Level one of the walkthrough: shape the sound system. The user edits the
// consonant and vowel inventories, reviews the syllable patterns, and then
// generates a first batch of sample words into the vocabulary's unknown
// class for level two to classify.

package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/miravel/glossa/internal/level"
	phon "github.com/miravel/glossa/internal/phonology"
	"github.com/miravel/glossa/internal/vocabulary"
)

type phonologyPhase int

const (
	phonPhaseConsonants phonologyPhase = iota
	phonPhaseVowels
	phonPhasePatterns
	phonPhaseWords
)

type editAction int

const (
	editNone editAction = iota
	editAdd
	editRemove
)

// Phonology is the inventory-editing and word-generation level.
type Phonology struct {
	level.Base

	phase   phonologyPhase
	editing editAction
	input   textinput.Model
	words   []string
}

// NewPhonology builds level one.
func NewPhonology() *Phonology {
	input := textinput.New()
	input.CharLimit = 3
	input.Width = 12
	return &Phonology{
		Base:  level.NewBase("Phonology Workshop", level.StagePhonology),
		input: input,
	}
}

// Init implements level.Level.
func (l *Phonology) Init(ctx *level.Context) tea.Cmd {
	l.SetContext(ctx)
	l.SetStatusMsg("Shape the sound system of your language")
	ctx.Logbook.Info("Level 1 · phonology workshop opened")
	return nil
}

// Update implements level.Level.
func (l *Phonology) Update(msg tea.Msg) (level.Level, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	if l.editing != editNone {
		return l.updateEditing(keyMsg)
	}
	switch l.phase {
	case phonPhaseConsonants, phonPhaseVowels:
		return l.updateInventoryMenu(keyMsg)
	case phonPhasePatterns:
		if keyMsg.String() == "enter" {
			l.generateWords()
		}
		return l, nil
	case phonPhaseWords:
		if keyMsg.String() == "enter" {
			l.SetComplete(true)
			l.Context().Logbook.Info("Level 1 complete · %d words coined", len(l.words))
			return l, level.Complete(level.StageMorphology)
		}
		return l, nil
	}
	return l, nil
}

func (l *Phonology) updateInventoryMenu(msg tea.KeyMsg) (level.Level, tea.Cmd) {
	switch msg.String() {
	case "a":
		l.editing = editAdd
		l.input.SetValue("")
		l.input.Focus()
		return l, textinput.Blink
	case "b":
		l.editing = editRemove
		l.input.SetValue("")
		l.input.Focus()
		return l, textinput.Blink
	case "c", "enter":
		if l.phase == phonPhaseConsonants {
			l.phase = phonPhaseVowels
			l.SetStatusMsg("Now the vowels")
		} else {
			l.phase = phonPhasePatterns
			l.SetStatusMsg("Review the syllable patterns, then press Enter to coin words")
		}
	}
	return l, nil
}

func (l *Phonology) updateEditing(msg tea.KeyMsg) (level.Level, tea.Cmd) {
	switch msg.String() {
	case "enter":
		l.commitEdit()
		return l, nil
	case "esc":
		l.editing = editNone
		l.input.Blur()
		return l, nil
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *Phonology) commitEdit() {
	ctx := l.Context()
	grapheme := strings.TrimSpace(l.input.Value())
	vowelPhase := l.phase == phonPhaseVowels
	kind := "consonant"
	if vowelPhase {
		kind = "vowel"
	}
	switch l.editing {
	case editAdd:
		var err error
		if vowelPhase {
			err = ctx.Phonology.AddVowel(grapheme)
		} else {
			err = ctx.Phonology.AddConsonant(grapheme)
		}
		if err != nil {
			l.SetStatusMsg(err.Error())
			ctx.Logbook.Warn("Rejected %s %q: %v", kind, grapheme, err)
		} else {
			l.SetStatusMsg(fmt.Sprintf("Added %s %q", kind, grapheme))
			ctx.Logbook.Info("Added %s %q", kind, grapheme)
		}
	case editRemove:
		var removed bool
		if vowelPhase {
			removed = ctx.Phonology.RemoveVowel(grapheme)
		} else {
			removed = ctx.Phonology.RemoveConsonant(grapheme)
		}
		if removed {
			l.SetStatusMsg(fmt.Sprintf("Removed %s %q", kind, grapheme))
			ctx.Logbook.Info("Removed %s %q", kind, grapheme)
		} else {
			l.SetStatusMsg(fmt.Sprintf("%q is not in the %s inventory", grapheme, kind))
		}
	}
	l.editing = editNone
	l.input.Blur()
}

func (l *Phonology) generateWords() {
	ctx := l.Context()
	count := ctx.Config.Session.Generation.SampleWords
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word, err := ctx.Phonology.GenerateWord(0)
		if err != nil {
			if errors.Is(err, phon.ErrEmptyInventory) {
				l.SetStatusMsg("An inventory is empty; add graphemes before generating")
			} else if errors.Is(err, phon.ErrUnsatisfiable) {
				l.SetStatusMsg("The inventory cannot satisfy the phonotactics; adjust it and retry")
			} else {
				l.SetStatusMsg(err.Error())
			}
			ctx.Logbook.Error("Word generation failed: %v", err)
			l.phase = phonPhaseConsonants
			return
		}
		words = append(words, word)
		ctx.Vocabulary.Add(vocabulary.ClassUnknown, word)
	}
	l.words = words
	l.phase = phonPhaseWords
	l.SetStatusMsg("Press Enter to carry these words into the morphology workshop")
}

// View implements level.Level.
func (l *Phonology) View() string {
	ctx := l.Context()
	if ctx == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Level 1 · Phonology"))
	b.WriteString("\n\n")
	switch l.phase {
	case phonPhaseConsonants:
		b.WriteString(fmt.Sprintf("Consonants: %s\n", strings.Join(ctx.Phonology.Consonants(), ", ")))
		b.WriteString(l.inventoryPrompt("consonant"))
	case phonPhaseVowels:
		b.WriteString(fmt.Sprintf("Vowels: %s\n", strings.Join(ctx.Phonology.Vowels(), ", ")))
		b.WriteString(l.inventoryPrompt("vowel"))
	case phonPhasePatterns:
		b.WriteString(fmt.Sprintf("Syllable patterns: %s\n", strings.Join(ctx.Phonology.Patterns(), ", ")))
		b.WriteString("(C = consonant, V = vowel; CCV draws from the allowed onset clusters)\n\n")
		b.WriteString(hintStyle.Render("Enter → coin sample words"))
	case phonPhaseWords:
		b.WriteString("Your first words:\n\n")
		for i, word := range l.words {
			b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, word))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter → continue to morphology"))
	}
	if status := l.StatusMsg(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}

func (l *Phonology) inventoryPrompt(kind string) string {
	if l.editing != editNone {
		verb := "add"
		if l.editing == editRemove {
			verb = "remove"
		}
		return fmt.Sprintf("\n%s to %s: %s\n%s", verb, kind, l.input.View(),
			hintStyle.Render("Enter → confirm    Esc → cancel"))
	}
	return "\n" + hintStyle.Render(fmt.Sprintf("(a) add %s    (b) remove %s    (c) continue", kind, kind))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)
