// internal/level/level.go
//
// Defines the Level interface that every walkthrough stage implements.
// A level is a self-contained bubbletea component; the TUI advances through
// the registered stages in order and swaps the active level on completion.

package level

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/logbook"
	"github.com/miravel/glossa/internal/morphology"
	"github.com/miravel/glossa/internal/phonology"
	"github.com/miravel/glossa/internal/syntax"
	"github.com/miravel/glossa/internal/vocabulary"
)

// Stage identifies one step of the walkthrough.
type Stage int

const (
	StageNone Stage = iota
	StagePhonology
	StageMorphology
	StageSyntax
	StageShowcase
	StageComplete
)

// FriendlyName returns a human-readable stage label.
func (s Stage) FriendlyName() string {
	switch s {
	case StagePhonology:
		return "Phonology"
	case StageMorphology:
		return "Morphology"
	case StageSyntax:
		return "Syntax"
	case StageShowcase:
		return "Showcase"
	case StageComplete:
		return "Complete"
	default:
		return "Not started"
	}
}

// Next returns the stage that follows s in walkthrough order.
func (s Stage) Next() Stage {
	switch s {
	case StageNone:
		return StagePhonology
	case StagePhonology:
		return StageMorphology
	case StageMorphology:
		return StageSyntax
	case StageSyntax:
		return StageShowcase
	default:
		return StageComplete
	}
}

// Context carries the shared session state into every level. One Context is
// created per session; the engines inside it accumulate the language as the
// walkthrough progresses.
type Context struct {
	Config     *config.Config
	Phonology  *phonology.System
	Morphology *morphology.System
	Syntax     *syntax.System
	Vocabulary *vocabulary.Book
	Logbook    *logbook.Logbook
	Rand       *rand.Rand
}

// NewContext builds a session context with engines seeded from the config.
func NewContext(cfg *config.Config, lb *logbook.Logbook) *Context {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	phon := phonology.NewSystem(
		phonology.WithConsonants(cfg.Session.Language.Consonants),
		phonology.WithVowels(cfg.Session.Language.Vowels),
		phonology.WithPatterns(cfg.Session.Language.SyllablePatterns),
		phonology.WithMaxAttempts(cfg.Session.Generation.MaxAttempts),
		phonology.WithRand(r),
	)
	syn := syntax.NewSystem()
	syn.SetWordOrder(string(cfg.WordOrder()))
	return &Context{
		Config:     cfg,
		Phonology:  phon,
		Morphology: morphology.NewSystem(),
		Syntax:     syn,
		Vocabulary: vocabulary.NewBook(),
		Logbook:    lb,
		Rand:       r,
	}
}

// WithRand swaps the shared random source, mainly for deterministic tests.
func (ctx *Context) WithRand(r *rand.Rand) *Context {
	clone := *ctx
	clone.Rand = r
	return &clone
}

// Level is implemented by every walkthrough stage.
type Level interface {
	// Name returns the level's display name.
	Name() string

	// Stage returns which walkthrough stage this level handles.
	Stage() Stage

	// Init initializes the level and returns a startup command.
	Init(ctx *Context) tea.Cmd

	// Update handles messages. A finished level returns a CompleteMsg command.
	Update(msg tea.Msg) (Level, tea.Cmd)

	// View renders the level's current state.
	View() string

	// IsComplete reports whether the level has finished its work.
	IsComplete() bool
}

// CompleteMsg signals that a level has finished and the walkthrough should
// advance.
type CompleteMsg struct {
	Next  Stage
	Error error
}

// ProgressMsg provides status updates during level execution.
type ProgressMsg struct {
	Status string
}

// Base provides common plumbing for levels.
type Base struct {
	ctx       *Context
	name      string
	stage     Stage
	complete  bool
	statusMsg string
}

// NewBase seeds the helper with the level's identity.
func NewBase(name string, stage Stage) Base {
	return Base{name: name, stage: stage}
}

// Name returns the level's display name.
func (b *Base) Name() string { return b.name }

// Stage returns which walkthrough stage this level handles.
func (b *Base) Stage() Stage { return b.stage }

// IsComplete reports whether the level has finished.
func (b *Base) IsComplete() bool { return b.complete }

// SetComplete marks the level as complete.
func (b *Base) SetComplete(complete bool) { b.complete = complete }

// Context returns the session context.
func (b *Base) Context() *Context { return b.ctx }

// SetContext installs the session context.
func (b *Base) SetContext(ctx *Context) { b.ctx = ctx }

// StatusMsg returns the current status message.
func (b *Base) StatusMsg() string { return b.statusMsg }

// SetStatusMsg sets the status message.
func (b *Base) SetStatusMsg(msg string) { b.statusMsg = msg }

// Complete is a convenience command constructor for CompleteMsg.
func Complete(next Stage) tea.Cmd {
	return func() tea.Msg {
		return CompleteMsg{Next: next}
	}
}
