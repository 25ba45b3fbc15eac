package level

import (
	"math/rand"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/logbook"
	"github.com/miravel/glossa/internal/syntax"
)

type stubLevel struct {
	Base
}

func newStubLevel(stage Stage) *stubLevel {
	return &stubLevel{Base: NewBase("stub", stage)}
}

func (l *stubLevel) Init(ctx *Context) tea.Cmd       { l.SetContext(ctx); return nil }
func (l *stubLevel) Update(tea.Msg) (Level, tea.Cmd) { return l, nil }
func (l *stubLevel) View() string                    { return "stub" }

func TestStageOrdering(t *testing.T) {
	want := []Stage{StagePhonology, StageMorphology, StageSyntax, StageShowcase, StageComplete}
	stage := StageNone
	for _, next := range want {
		stage = stage.Next()
		if stage != next {
			t.Fatalf("expected %s, got %s", next.FriendlyName(), stage.FriendlyName())
		}
	}
	if StageComplete.Next() != StageComplete {
		t.Fatalf("StageComplete must be terminal")
	}
}

func TestSequenceRegisterAndResolve(t *testing.T) {
	seq := NewSequence()
	if err := seq.Register(StagePhonology, func() Level { return newStubLevel(StagePhonology) }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := seq.Register(StagePhonology, func() Level { return newStubLevel(StagePhonology) }); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := seq.Register(StageComplete, func() Level { return newStubLevel(StageComplete) }); err == nil {
		t.Fatalf("expected StageComplete registration to fail")
	}
	lvl, err := seq.Resolve(StagePhonology)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if lvl.Stage() != StagePhonology {
		t.Fatalf("resolved wrong stage: %s", lvl.Stage().FriendlyName())
	}
	if _, err := seq.Resolve(StageSyntax); err == nil {
		t.Fatalf("expected missing stage to fail")
	}
}

func TestSequenceRejectsMismatchedFactory(t *testing.T) {
	seq := NewSequence()
	seq.MustRegister(StageSyntax, func() Level { return newStubLevel(StageShowcase) })
	if _, err := seq.Resolve(StageSyntax); err == nil {
		t.Fatalf("expected stage mismatch error")
	}
}

func TestNewContextSeedsEnginesFromConfig(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	cfg.Session.Language.WordOrder = "SOV"
	lb, err := logbook.New(filepath.Join(projectDir, "journey.log"))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	ctx := NewContext(cfg, lb)
	if ctx.Syntax.WordOrder() != syntax.OrderSOV {
		t.Fatalf("syntax order = %s, want SOV", ctx.Syntax.WordOrder())
	}
	if len(ctx.Phonology.Consonants()) == 0 || len(ctx.Phonology.Vowels()) == 0 {
		t.Fatalf("phonology inventories not seeded")
	}
	if ctx.Vocabulary == nil || ctx.Morphology == nil || ctx.Rand == nil {
		t.Fatalf("context is missing components")
	}
	seeded := ctx.WithRand(rand.New(rand.NewSource(7)))
	if seeded.Rand == ctx.Rand {
		t.Fatalf("WithRand must replace the random source on the clone")
	}
	if seeded.Phonology != ctx.Phonology {
		t.Fatalf("WithRand must keep the engine instances")
	}
}
