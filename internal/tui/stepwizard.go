package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/buildit/buildit/internal/planner"
	"github.com/buildit/buildit/internal/steps"
)

// stepKeyMap defines key bindings for the step wizard
type stepKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Complete key.Binding
	Jump     key.Binding
	First    key.Binding
	Last     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k stepKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Complete, k.Jump}
}

// FullHelp returns keybindings for the expanded help view
func (k stepKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Complete, k.Jump},
	}
}

func newStepKeyMap() stepKeyMap {
	return stepKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "mark complete"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to step"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first step"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last step"),
		),
	}
}

// StepWizardModel walks the user through assembly steps one at a time,
// tracking which ones they have marked complete.
type StepWizardModel struct {
	Wizard      steps.Wizard
	ProgressBar progress.Model
	Keys        stepKeyMap
	Width       int
}

// NewStepWizardModel creates a wizard positioned on the first step with
// nothing completed.
func NewStepWizardModel(list []string) StepWizardModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return StepWizardModel{
		Wizard:      steps.New(list),
		ProgressBar: bar,
		Keys:        newStepKeyMap(),
	}
}

// Update handles navigation and completion keys
func (m StepWizardModel) Update(msg tea.Msg) (StepWizardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Wizard.IsEmpty() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Prev):
		m.Wizard.Prev()
	case key.Matches(keyMsg, m.Keys.Next):
		m.Wizard.Next()
	case key.Matches(keyMsg, m.Keys.Complete):
		m.Wizard.ToggleComplete(m.Wizard.Current())
	case key.Matches(keyMsg, m.Keys.First):
		m.Wizard.Select(0)
	case key.Matches(keyMsg, m.Keys.Last):
		m.Wizard.Select(m.Wizard.Total() - 1)
	case key.Matches(keyMsg, m.Keys.Jump):
		m.Wizard.Select(int(keyMsg.Runes[0]-'1'))
	}

	return m, nil
}

// View renders the progress header, the step list and the navigation row
func (m StepWizardModel) View() string {
	w := m.Wizard
	if w.IsEmpty() {
		return HintStyle.Render(planner.NoSteps)
	}

	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Assembly Steps"))
	b.WriteString("  ")
	b.WriteString(HintStyle.Render(fmt.Sprintf("%d of %d complete", w.CompletedCount(), w.Total())))
	b.WriteString("\n")

	bar := m.ProgressBar
	if m.Width > 0 && m.Width-4 < bar.Width {
		bar.Width = m.Width - 4
	}
	b.WriteString(bar.ViewAs(w.Progress()))
	b.WriteString("\n\n")

	for i, text := range w.Steps() {
		b.WriteString(m.renderStep(i, text))
		b.WriteString("\n")
		if i < w.Total()-1 {
			connector := HintStyle.Render("  │")
			if w.IsCompleted(i) {
				connector = DoneStyle.Render("  │")
			}
			b.WriteString(connector)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderNav())
	return b.String()
}

func (m StepWizardModel) renderStep(i int, text string) string {
	w := m.Wizard
	active := i == w.Current()
	done := w.IsCompleted(i)

	indicator := fmt.Sprintf("%d", i+1)
	if done {
		indicator = "✓"
	}
	badge := "(" + indicator + ")"

	marker := "  "
	if active {
		marker = "→ "
	}

	switch {
	case active:
		line := ActiveStepStyle.Render(marker + badge + " " + text)
		label := "Mark Complete"
		if done {
			label = "Mark Incomplete"
		}
		return line + "\n     " + ButtonStyle.Render(label)
	case done:
		return DoneStyle.Render(marker + badge + " " + text)
	default:
		return marker + HintStyle.Render(badge) + " " + text
	}
}

func (m StepWizardModel) renderNav() string {
	prev := ButtonStyle.Render("← Previous")
	if m.Wizard.AtFirst() {
		prev = DisabledButtonStyle.Render("← Previous")
	}

	next := ButtonStyle.Render("Next →")
	if m.Wizard.AtLast() {
		next = DisabledButtonStyle.Render("Next →")
	}

	return prev + "  " + next
}
