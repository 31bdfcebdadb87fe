package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buildit/buildit/internal/planner"
)

// PartsChangedMsg carries the complete custom parts list after an add or
// remove. The owner replaces its list with Parts.
type PartsChangedMsg struct {
	Parts []string
}

// partInputKeyMap defines key bindings for the custom parts field
type partInputKeyMap struct {
	Add    key.Binding
	Left   key.Binding
	Right  key.Binding
	Remove key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k partInputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Left, k.Right, k.Remove}
}

// FullHelp returns keybindings for the expanded help view
func (k partInputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Remove},
		{k.Left, k.Right},
	}
}

func newPartInputKeyMap() partInputKeyMap {
	return partInputKeyMap{
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add part"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev part"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next part"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+d", "delete"),
			key.WithHelp("ctrl+d", "remove part"),
		),
	}
}

// PartInputModel is the free-text custom parts field: a text input plus the
// list of added parts rendered as chips. It never owns the list; every change
// is reported as a PartsChangedMsg and the owner feeds the list back through
// SetParts.
type PartInputModel struct {
	Input  textinput.Model
	Parts  []string
	Cursor int // Index of the highlighted chip, -1 when the text input is active
	Width  int
	Keys   partInputKeyMap
}

// NewPartInputModel creates an empty custom parts field
func NewPartInputModel() PartInputModel {
	ti := textinput.New()
	ti.Placeholder = "e.g., Servo Motor SG90"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = "+ "

	return PartInputModel{
		Input:  ti,
		Cursor: -1,
		Keys:   newPartInputKeyMap(),
	}
}

// SetParts replaces the displayed list.
func (m PartInputModel) SetParts(parts []string) PartInputModel {
	m.Parts = parts
	if m.Cursor >= len(parts) {
		m.Cursor = len(parts) - 1
	}
	return m
}

// Focus focuses the text input
func (m *PartInputModel) Focus() tea.Cmd {
	return m.Input.Focus()
}

// Blur removes focus and clears the chip highlight
func (m *PartInputModel) Blur() {
	m.Input.Blur()
	m.Cursor = -1
}

// Focused reports whether the field has focus
func (m PartInputModel) Focused() bool {
	return m.Input.Focused()
}

// Update handles key input for the field
func (m PartInputModel) Update(msg tea.Msg) (PartInputModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Add):
		next, added := planner.AddPart(m.Parts, m.Input.Value())
		if !added {
			return m, nil
		}
		m.Input.SetValue("")
		m.Parts = next
		m.Cursor = -1
		return m, partsChanged(next)

	case key.Matches(keyMsg, m.Keys.Remove) && m.chipActive():
		next := planner.RemovePart(m.Parts, m.Parts[m.Cursor])
		m.Parts = next
		if m.Cursor >= len(next) {
			m.Cursor = len(next) - 1
		}
		return m, partsChanged(next)

	case key.Matches(keyMsg, m.Keys.Left) && m.Input.Value() == "" && len(m.Parts) > 0:
		if m.Cursor < 0 {
			m.Cursor = len(m.Parts) - 1
		} else if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Right) && m.chipActive():
		m.Cursor++
		if m.Cursor >= len(m.Parts) {
			m.Cursor = -1
		}
		return m, nil
	}

	// Typing returns to the text input
	m.Cursor = -1
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m PartInputModel) chipActive() bool {
	return m.Cursor >= 0 && m.Cursor < len(m.Parts)
}

// View renders the input line and the chips below it
func (m PartInputModel) View() string {
	var b strings.Builder
	b.WriteString(m.Input.View())

	if len(m.Parts) == 0 {
		return b.String()
	}

	chips := make([]string, 0, len(m.Parts))
	for i, p := range m.Parts {
		style := ChipStyle
		if i == m.Cursor {
			style = SelectedChipStyle
		}
		chips = append(chips, style.Render(p+" ×"))
	}

	b.WriteString("\n")
	b.WriteString(wrapChips(chips, m.Width))
	return b.String()
}

// wrapChips lays chips out left to right, starting a new row when the next
// chip would overflow width.
func wrapChips(chips []string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range chips {
		w := lipgloss.Width(c) + 1
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func partsChanged(parts []string) tea.Cmd {
	return func() tea.Msg {
		return PartsChangedMsg{Parts: parts}
	}
}
