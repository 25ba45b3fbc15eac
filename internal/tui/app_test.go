package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/level"
	"github.com/miravel/glossa/internal/vocabulary"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitGlossaDir(projectDir); err != nil {
		t.Fatalf("init glossa dir: %v", err)
	}
	app, err := NewApp(projectDir)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

// drain runs a command chain to completion, feeding resulting messages back
// into the model the way the bubbletea runtime would.
func drain(t *testing.T, model tea.Model, cmd tea.Cmd) *App {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		if _, isBatch := msg.(tea.BatchMsg); isBatch {
			break
		}
		model, cmd = model.Update(msg)
	}
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("model is %T, want *App", model)
	}
	return app
}

func TestEnterStageActivatesLevel(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.enterStage(level.StagePhonology)
	app = drain(t, model, cmd)

	if app.state != stateLevel {
		t.Fatalf("state = %v, want stateLevel", app.state)
	}
	if app.active == nil || app.active.Stage() != level.StagePhonology {
		t.Fatal("phonology level not active")
	}
	if !strings.Contains(app.View(), "Phonology") {
		t.Fatalf("view does not show the active level:\n%s", app.View())
	}
}

func TestCompleteMsgAdvancesToNextLevel(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.enterStage(level.StagePhonology)
	app = drain(t, model, cmd)

	model, cmd = app.Update(level.CompleteMsg{Next: level.StageMorphology})
	app = drain(t, model, cmd)

	if app.active == nil || app.active.Stage() != level.StageMorphology {
		t.Fatal("morphology level not active after completion message")
	}
	if app.stage != level.StageMorphology {
		t.Fatalf("stage = %v, want morphology", app.stage)
	}
}

func TestWalkthroughCompletionReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.enterStage(level.StageShowcase)
	app = drain(t, model, cmd)

	model, cmd = app.Update(level.CompleteMsg{Next: level.StageComplete})
	app = drain(t, model, cmd)

	if app.state != stateMainMenu {
		t.Fatalf("state = %v, want stateMainMenu", app.state)
	}
	if app.stage != level.StageComplete {
		t.Fatalf("stage = %v, want complete", app.stage)
	}
	if !strings.Contains(app.View(), "Revisit Showcase") {
		t.Fatalf("menu does not offer the showcase revisit:\n%s", app.View())
	}
}

func TestEscReturnsToMainMenu(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.enterStage(level.StagePhonology)
	app = drain(t, model, cmd)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	if app.state != stateMainMenu {
		t.Fatalf("state = %v, want stateMainMenu after esc", app.state)
	}
	if !strings.Contains(app.View(), "Resume Journey") {
		t.Fatalf("menu does not offer resume:\n%s", app.View())
	}
}

func TestLanguagePanelTracksVocabulary(t *testing.T) {
	app := newTestApp(t)
	app.ctx.Vocabulary.Add(vocabulary.ClassNoun, "tano")
	app.ctx.Vocabulary.Add(vocabulary.ClassVerb, "silu")

	panel := app.renderLanguagePanel(40)
	for _, want := range []string{"Nouns: 1", "Verbs: 1", "Word order: SVO"} {
		if !strings.Contains(panel, want) {
			t.Fatalf("panel missing %q:\n%s", want, panel)
		}
	}
}

func TestLexiconAndRuleBookViews(t *testing.T) {
	app := newTestApp(t)

	if view := app.renderLexicon(); !strings.Contains(view, "No words yet") {
		t.Fatalf("empty lexicon view = %q", view)
	}
	app.ctx.Vocabulary.Add(vocabulary.ClassNoun, "tano")
	if view := app.renderLexicon(); !strings.Contains(view, "tano") {
		t.Fatalf("lexicon view missing word:\n%s", view)
	}

	if view := app.renderRuleBook(); !strings.Contains(view, "No rules yet") {
		t.Fatalf("empty rule book view = %q", view)
	}
	app.ctx.Morphology.AddRule("plural_s", "suffix", "s", "more than one")
	if view := app.renderRuleBook(); !strings.Contains(view, "plural_s") {
		t.Fatalf("rule book view missing rule:\n%s", view)
	}
}
