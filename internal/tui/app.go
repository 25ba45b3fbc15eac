// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for Glossa.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/level"
	"github.com/miravel/glossa/internal/levels"
	"github.com/miravel/glossa/internal/logbook"
	"github.com/miravel/glossa/internal/vocabulary"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Main menu with "Begin Journey", etc.
	stateLevel                    // Running a walkthrough level
	stateLexicon                  // Browsing the classified vocabulary
	stateRuleBook                 // Browsing the installed rules
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithSequence overrides the walkthrough level sequence.
func WithSequence(seq *level.Sequence) AppOption {
	return func(a *App) {
		if seq != nil {
			a.sequence = seq
		}
	}
}

// WithContext injects a prebuilt session context, mainly for tests.
func WithContext(ctx *level.Context) AppOption {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	config   *config.Config
	logbook  *logbook.Logbook
	ctx      *level.Context
	sequence *level.Sequence

	stage  level.Stage
	active level.Level

	// UI components
	mainMenu  list.Model // The main menu list
	statusMsg string     // Status message to display

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.New(cfg.JourneyLogPath())
	if err != nil {
		return nil, err
	}
	lb.Info("Session opened · word order %s", cfg.WordOrder())

	mainMenu := list.New(buildMainMenu(level.StageNone), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "◈ GLOSSA"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	app := &App{
		state:    stateMainMenu,
		config:   cfg,
		logbook:  lb,
		sequence: levels.Sequence(),
		stage:    level.StageNone,
		mainMenu: mainMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.ctx == nil {
		app.ctx = level.NewContext(cfg, lb)
	}
	return app, nil
}

// buildMainMenu creates the main menu items based on walkthrough progress
func buildMainMenu(stage level.Stage) []list.Item {
	items := []list.Item{}
	switch stage {
	case level.StageNone:
		items = append(items, menuItem{
			title: "Begin Journey",
			desc:  "Build a language from sounds up",
		})
	case level.StageComplete:
		items = append(items, menuItem{
			title: "Revisit Showcase",
			desc:  "Draw fresh sentences from your finished language",
		})
	default:
		items = append(items, menuItem{
			title: fmt.Sprintf("Resume Journey (%s)", stage.FriendlyName()),
			desc:  "Continue from where you left off",
		})
	}
	items = append(items,
		menuItem{title: "Lexicon", desc: "Browse the words coined so far"},
		menuItem{title: "Rule Book", desc: "Browse the word-formation rules"},
		menuItem{title: "Exit", desc: "Quit Glossa"},
	)
	return items
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-12))
		return a, nil

	case level.CompleteMsg:
		return a.advanceStage(msg)

	case level.ProgressMsg:
		a.statusMsg = msg.Status
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				a.logInfo("Session closed")
				return a, tea.Quit
			}
		case "esc":
			if a.state != stateMainMenu {
				return a.returnToMainMenu()
			}
		case "enter":
			if a.state == stateMainMenu {
				return a.handleMainMenuSelection()
			}
		}
	}

	var cmds []tea.Cmd
	switch a.state {
	case stateMainMenu:
		var menuCmd tea.Cmd
		a.mainMenu, menuCmd = a.mainMenu.Update(msg)
		if menuCmd != nil {
			cmds = append(cmds, menuCmd)
		}
	case stateLevel:
		if a.active != nil {
			next, cmd := a.active.Update(msg)
			a.active = next
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch {
	case item.title == "Begin Journey":
		a.logInfo("Menu · Begin Journey selected")
		return a.enterStage(level.StagePhonology)

	case strings.HasPrefix(item.title, "Resume Journey"):
		a.logInfo("Menu · Resume Journey selected (%s)", a.stage.FriendlyName())
		return a.enterStage(a.stage)

	case item.title == "Revisit Showcase":
		a.logInfo("Menu · Revisit Showcase selected")
		return a.enterStage(level.StageShowcase)

	case item.title == "Lexicon":
		a.logInfo("Menu · Lexicon selected")
		a.state = stateLexicon
		a.statusMsg = "Esc → back to menu"
		return a, nil

	case item.title == "Rule Book":
		a.logInfo("Menu · Rule Book selected")
		a.state = stateRuleBook
		a.statusMsg = "Esc → back to menu"
		return a, nil

	case item.title == "Exit":
		a.logInfo("Menu · Exit selected")
		return a, tea.Quit
	}

	return a, nil
}

// enterStage resolves and initializes the level for a stage.
func (a *App) enterStage(stage level.Stage) (tea.Model, tea.Cmd) {
	lvl, err := a.sequence.Resolve(stage)
	if err != nil {
		a.statusMsg = err.Error()
		a.logError("Could not enter %s: %v", stage.FriendlyName(), err)
		return a, nil
	}
	a.state = stateLevel
	a.stage = stage
	a.active = lvl
	a.statusMsg = ""
	return a, lvl.Init(a.ctx)
}

// advanceStage reacts to a level's completion message.
func (a *App) advanceStage(msg level.CompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		a.statusMsg = msg.Error.Error()
		a.logError("Level failed: %v", msg.Error)
		return a.returnToMainMenu()
	}
	if msg.Next == level.StageComplete || msg.Next == level.StageNone {
		a.stage = level.StageComplete
		a.statusMsg = "Your language is complete"
		return a.returnToMainMenu()
	}
	return a.enterStage(msg.Next)
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	a.active = nil
	a.logInfo("Returned to main menu (stage: %s)", a.stage.FriendlyName())
	a.mainMenu.SetItems(buildMainMenu(a.stage))
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
	}
	if leftWidth < 20 {
		leftWidth = width
		rightWidth = 0
	}
	if a.state == stateMainMenu {
		a.mainMenu.SetSize(max(20, leftWidth-4), max(10, a.height-12))
	}
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateLevel:
		if a.active != nil {
			content = a.active.View()
		} else {
			content = "Loading level..."
		}
	case stateLexicon:
		content = a.renderLexicon()
	case stateRuleBook:
		content = a.renderRuleBook()
	}
	return a.renderBoard(content, leftWidth, rightWidth)
}

func (a *App) renderBoard(mainContent string, leftWidth, rightWidth int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("◈ GLOSSA")
	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderStagePanel(leftWidth-4),
		"",
		a.renderMainArea(mainContent, leftWidth-4),
	)
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(left)
	var body string
	if rightWidth > 0 {
		right := a.renderLanguagePanel(rightWidth - 4)
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(right)
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderStagePanel(width int) string {
	stages := a.sequence.Stages()
	pos := len(stages)
	for i, stage := range stages {
		if stage == a.stage {
			pos = i
		}
	}
	stageLine := fmt.Sprintf("Stage: %s", a.stage.FriendlyName())
	if a.stage != level.StageNone && a.stage != level.StageComplete {
		stageLine = fmt.Sprintf("Stage: %s (%d/%d)", a.stage.FriendlyName(), pos+1, len(stages))
	}
	lines := []string{stageLine}
	if pos+1 < len(stages) {
		var names []string
		for _, s := range stages[pos+1:] {
			names = append(names, s.FriendlyName())
		}
		lines = append(lines, fmt.Sprintf("Next: %s", strings.Join(names, " → ")))
	}
	return lipgloss.NewStyle().Width(max(20, width)).Render(strings.Join(lines, "\n"))
}

func (a *App) renderLanguagePanel(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("Language")
	lines := []string{
		fmt.Sprintf("Consonants: %d", len(a.ctx.Phonology.Consonants())),
		fmt.Sprintf("Vowels: %d", len(a.ctx.Phonology.Vowels())),
		fmt.Sprintf("Word order: %s", a.ctx.Syntax.WordOrder()),
		fmt.Sprintf("Rules: %d", len(a.ctx.Morphology.Rules())),
		fmt.Sprintf("Nouns: %d", a.ctx.Vocabulary.Count(vocabulary.ClassNoun)),
		fmt.Sprintf("Verbs: %d", a.ctx.Vocabulary.Count(vocabulary.ClassVerb)),
		fmt.Sprintf("Adjectives: %d", a.ctx.Vocabulary.Count(vocabulary.ClassAdjective)),
		fmt.Sprintf("Adverbs: %d", a.ctx.Vocabulary.Count(vocabulary.ClassAdverb)),
	}
	if unclassified := a.ctx.Vocabulary.Count(vocabulary.ClassUnknown); unclassified > 0 {
		lines = append(lines, fmt.Sprintf("Unclassified: %d", unclassified))
	}
	body := lipgloss.NewStyle().Width(max(20, width)).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (a *App) renderMainArea(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		content = "Ready to build a language."
	}
	return lipgloss.NewStyle().Width(max(20, width)).Render(content)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(8)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · journey")
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
	return box
}

func (a *App) renderLexicon() string {
	var b strings.Builder
	b.WriteString("Lexicon\n")
	classes := []vocabulary.WordClass{
		vocabulary.ClassNoun,
		vocabulary.ClassVerb,
		vocabulary.ClassAdjective,
		vocabulary.ClassAdverb,
		vocabulary.ClassUnknown,
	}
	empty := true
	for _, class := range classes {
		words := a.ctx.Vocabulary.Words(class)
		if len(words) == 0 {
			continue
		}
		empty = false
		b.WriteString(fmt.Sprintf("\n%s:\n  %s\n", class, strings.Join(words, ", ")))
	}
	if empty {
		b.WriteString("\nNo words yet. Begin the journey to coin some.\n")
	}
	return b.String()
}

func (a *App) renderRuleBook() string {
	rules := a.ctx.Morphology.Rules()
	if len(rules) == 0 {
		return "Rule Book\n\nNo rules yet. They are installed during the morphology level.\n"
	}
	var b strings.Builder
	b.WriteString("Rule Book\n\n")
	for _, rule := range rules {
		marker := rule.Marker
		if marker == "" {
			marker = "·"
		}
		b.WriteString(fmt.Sprintf("  %-14s %-13s %-6s %s\n", rule.Name, rule.Type, marker, rule.Meaning))
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
