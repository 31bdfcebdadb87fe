package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/logging"
	"github.com/buildit/buildit/internal/planner"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenPlanner Screen = "planner"
	ScreenResult  Screen = "result"
)

// focusArea is a focusable section of the planner screen
type focusArea int

const (
	focusMode focusArea = iota
	focusKits
	focusParts
	focusGoal
	focusGenerate
)

// Backend is the part of the API client the TUI needs.
type Backend interface {
	ListKits(ctx context.Context) ([]api.Kit, error)
	Generate(ctx context.Context, req api.GenerationRequest) (*api.GenerationResult, error)
}

// Messages for async backend calls
type kitsLoadedMsg struct {
	kits []api.Kit
	err  error
}

type generationDoneMsg struct {
	result *api.GenerationResult
	err    error
}

// Options configures a new AppModel
type Options struct {
	Backend     Backend
	Mode        planner.Mode
	CustomParts []string // Preloaded custom parts
	APIURL      string   // Shown in the header
}

// AppModel is the top-level model: the planner form, the generation in
// flight and the result view.
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Planner state and the last generation
	Session   planner.Session
	LastError error

	// Planner UI state
	Focus       focusArea
	KitCursor   int
	KitsLoading bool
	PartInput   PartInputModel
	GoalInput   textarea.Model

	// Result UI state
	Steps    StepWizardModel
	Viewport viewport.Model

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model

	// Help
	Help        help.Model
	PlannerKeys plannerKeyMap
	ResultKeys  resultKeyMap

	backend       Backend
	apiURL        string
	markdownStyle string
	markdown      markdownRenderer
}

// NewAppModel creates the application model on the planner screen. The
// kit catalog is requested by Init.
func NewAppModel(opts Options) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	goal := textarea.New()
	goal.Placeholder = "e.g., A robot arm that can pick up small objects"
	goal.ShowLineNumbers = false
	goal.SetWidth(contentWidth(DefaultWidth) - 2)
	goal.SetHeight(4)

	session := planner.NewSession(opts.Mode)
	parts := NewPartInputModel()
	for _, p := range opts.CustomParts {
		session.AddPart(p)
	}
	parts = parts.SetParts(session.CustomParts)

	style := detectMarkdownStyle()

	return AppModel{
		CurrentScreen: ScreenPlanner,
		Session:       session,
		Focus:         focusMode,
		KitsLoading:   true,
		PartInput:     parts,
		GoalInput:     goal,
		Steps:         NewStepWizardModel(nil),
		Viewport:      viewport.New(contentWidth(DefaultWidth), DefaultHeight-chromeHeight),
		Spinner:       s,
		Help:          help.New(),
		PlannerKeys:   newPlannerKeyMap(),
		ResultKeys:    newResultKeyMap(),
		backend:       opts.Backend,
		apiURL:        opts.APIURL,
		markdownStyle: style,
		markdown:      newMarkdownRenderer(style, contentWidth(DefaultWidth)),
	}
}

// detectMarkdownStyle picks the glamour style once, before the program
// owns the terminal.
func detectMarkdownStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "notty"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Init requests the kit catalog
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		fetchKits(m.backend),
		m.Spinner.Tick,
	)
}

// fetchKits loads the kit catalog in the background
func fetchKits(b Backend) tea.Cmd {
	return func() tea.Msg {
		kits, err := b.ListKits(context.Background())
		return kitsLoadedMsg{kits: kits, err: err}
	}
}

// generate runs one generation request in the background
func generate(b Backend, req api.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := b.Generate(context.Background(), req)
		return generationDoneMsg{result: result, err: err}
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case kitsLoadedMsg:
		m.KitsLoading = false
		if msg.err != nil {
			logging.Warn("failed to load kit catalog", zap.Error(msg.err))
			return m, nil
		}
		logging.Debug("kit catalog loaded", zap.Int("kits", len(msg.kits)))
		m.Session.SetKits(msg.kits)
		if m.KitCursor >= len(msg.kits) {
			m.KitCursor = 0
		}
		return m, nil

	case generationDoneMsg:
		return m.finishGeneration(msg), nil

	case PartsChangedMsg:
		m.Session.SetCustomParts(msg.Parts)
		m.PartInput = m.PartInput.SetParts(msg.Parts)
		return m, nil

	case spinner.TickMsg:
		if !m.Session.Loading && !m.KitsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Route to current screen
	switch m.CurrentScreen {
	case ScreenResult:
		return m.updateResult(msg)
	default:
		return m.updatePlanner(msg)
	}
}

// resize propagates the terminal size to every sized component
func (m *AppModel) resize(width, height int) {
	m.Width = width
	m.Height = height

	w := contentWidth(width)
	m.PartInput.Width = w
	m.GoalInput.SetWidth(w - 2)
	m.Steps.Width = w

	m.Viewport.Width = w
	m.Viewport.Height = height - chromeHeight
	if m.Viewport.Height < 3 {
		m.Viewport.Height = 3
	}

	m.markdown = newMarkdownRenderer(m.markdownStyle, w)
	m.refreshViewport()
}

// startGeneration begins a request if the input allows it. While one is in
// flight further attempts are ignored.
func (m AppModel) startGeneration() (tea.Model, tea.Cmd) {
	req, ok := m.Session.Begin()
	if !ok {
		return m, nil
	}

	logging.Info("generating build plan",
		zap.String("mode", req.Mode),
		zap.Int("kits", len(req.Kits)),
		zap.Int("custom_parts", len(req.CustomParts)))

	return m, tea.Batch(
		m.Spinner.Tick,
		generate(m.backend, req),
	)
}

// finishGeneration records the outcome and shows the result screen, which
// holds either the tabs or the error panel.
func (m AppModel) finishGeneration(msg generationDoneMsg) AppModel {
	m.Session.Finish(msg.result, msg.err)
	m.LastError = msg.err

	if msg.err != nil {
		logging.Warn("generation failed", zap.Error(msg.err))
	} else {
		result := m.Session.Result()
		logging.Info("build plan ready",
			zap.Int("steps", len(result.Steps)),
			zap.String("model", result.ModelUsed))
		m.Steps = NewStepWizardModel(result.Steps)
		m.Steps.Width = contentWidth(m.Width)
	}

	m.CurrentScreen = ScreenResult
	m.Viewport.GotoTop()
	m.refreshViewport()
	return m
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenResult:
		return RenderApplicationContainer(m.buildResultContent(), m.resultHelp(), m.apiURL, m.Width, m.Height)
	default:
		return RenderApplicationContainer(m.buildPlannerContent(), m.plannerHelp(), m.apiURL, m.Width, m.Height)
	}
}

// textFocused reports whether a text field has the keyboard
func (m AppModel) textFocused() bool {
	return m.Focus == focusParts || m.Focus == focusGoal
}

func (m AppModel) plannerHelp() string {
	k := m.PlannerKeys
	switch m.Focus {
	case focusParts:
		return m.Help.View(bindings{m.PartInput.Keys.Add, m.PartInput.Keys.Remove, k.NextFocus, k.Generate, k.Leave})
	case focusGoal:
		return m.Help.View(bindings{k.NextFocus, k.Generate, k.Leave})
	case focusMode:
		return m.Help.View(bindings{k.Mode, k.NextFocus, k.Generate, k.Quit})
	}
	b := bindings{k.Up, k.Down, k.Toggle, k.NextFocus, k.Generate}
	if m.Session.Outcome != nil {
		b = append(b, k.Results)
	}
	return m.Help.View(append(b, k.Quit))
}

func (m AppModel) resultHelp() string {
	k := m.ResultKeys
	if m.Session.Result() == nil {
		return m.Help.View(bindings{k.Back, k.Generate, k.Quit})
	}
	if m.Session.ActiveTab == planner.TabSteps && !m.Steps.Wizard.IsEmpty() {
		s := m.Steps.Keys
		return m.Help.View(bindings{s.Prev, s.Next, s.Complete, s.Jump, k.NextTab, k.Back, k.Quit})
	}
	return m.Help.View(k)
}
