package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buildit/buildit/internal/planner"
)

const (
	// kitCardHeight is the rendered height of one kit card including borders
	kitCardHeight = 5

	// buildFormSpacing counts the build form lines outside its components:
	// two section titles and three blank separators.
	buildFormSpacing = 5
)

// focusOrder returns the focusable sections for the current mode
func (m AppModel) focusOrder() []focusArea {
	if m.Session.Mode == planner.ModeReverse {
		return []focusArea{focusMode, focusGoal, focusGenerate}
	}
	return []focusArea{focusMode, focusKits, focusParts, focusGenerate}
}

// moveFocus cycles focus by delta sections, wrapping around
func (m AppModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.Focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	cmd := m.setFocus(order[idx])
	return m, cmd
}

// setFocus moves keyboard focus, focusing or blurring the text fields
func (m *AppModel) setFocus(f focusArea) tea.Cmd {
	m.Focus = f
	m.PartInput.Blur()
	m.GoalInput.Blur()

	switch f {
	case focusParts:
		return m.PartInput.Focus()
	case focusGoal:
		return m.GoalInput.Focus()
	}
	return nil
}

// updatePlanner handles input on the planner screen
func (m AppModel) updatePlanner(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and other component messages
		return m.updateTextField(msg)
	}

	k := m.PlannerKeys
	switch {
	case key.Matches(keyMsg, k.Generate):
		return m.startGeneration()
	case key.Matches(keyMsg, k.NextFocus):
		return m.moveFocus(1)
	case key.Matches(keyMsg, k.PrevFocus):
		return m.moveFocus(-1)
	case m.textFocused() && key.Matches(keyMsg, k.Leave):
		cmd := m.setFocus(focusGenerate)
		return m, cmd
	}

	if m.textFocused() {
		return m.updateTextField(msg)
	}

	switch {
	case key.Matches(keyMsg, k.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, k.Results) && m.Session.Outcome != nil && !m.Session.Loading:
		m.CurrentScreen = ScreenResult
		m.refreshViewport()
		return m, nil
	}

	switch m.Focus {
	case focusMode:
		if key.Matches(keyMsg, k.Mode, k.Toggle) {
			m.Session.ToggleMode()
		}

	case focusKits:
		n := len(m.Session.Kits)
		switch {
		case n == 0:
		case key.Matches(keyMsg, k.Up):
			if m.KitCursor > 0 {
				m.KitCursor--
			}
		case key.Matches(keyMsg, k.Down):
			if m.KitCursor < n-1 {
				m.KitCursor++
			}
		case key.Matches(keyMsg, k.Toggle):
			m.Session.ToggleKit(m.Session.Kits[m.KitCursor].ID)
		}

	case focusGenerate:
		if key.Matches(keyMsg, k.Toggle) {
			return m.startGeneration()
		}
	}

	return m, nil
}

// updateTextField forwards msg to the focused text field
func (m AppModel) updateTextField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Focus {
	case focusParts:
		m.PartInput, cmd = m.PartInput.Update(msg)
		// Session stays current for a generate key queued behind enter
		m.Session.SetCustomParts(m.PartInput.Parts)
	case focusGoal:
		m.GoalInput, cmd = m.GoalInput.Update(msg)
		m.Session.Goal = m.GoalInput.Value()
	}

	return m, cmd
}

// buildPlannerContent builds the planner screen content
func (m AppModel) buildPlannerContent() string {
	var b strings.Builder

	b.WriteString(m.renderModeToggle())
	b.WriteString("\n\n")

	if m.Session.Mode == planner.ModeReverse {
		b.WriteString(m.sectionTitle(focusGoal, "What do you want to build?"))
		b.WriteString("\n")
		b.WriteString(m.GoalInput.View())
	} else {
		b.WriteString(m.sectionTitle(focusKits, "Select Kits"))
		b.WriteString("\n")
		b.WriteString(m.renderKits())
		b.WriteString("\n\n")
		b.WriteString(m.sectionTitle(focusParts, "Custom Parts"))
		b.WriteString("\n")
		b.WriteString(m.PartInput.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderGenerateButton())

	return b.String()
}

// sectionTitle renders a section heading with a marker when focused
func (m AppModel) sectionTitle(f focusArea, title string) string {
	if m.Focus == f {
		return FocusMarkerStyle.Render("▸ ") + SectionTitleStyle.Render(title)
	}
	return "  " + SectionTitleStyle.Render(title)
}

func (m AppModel) renderModeToggle() string {
	marker := "  "
	if m.Focus == focusMode {
		marker = FocusMarkerStyle.Render("▸ ")
	}

	modes := []planner.Mode{planner.ModeBuild, planner.ModeReverse}
	cells := make([]string, 0, len(modes))
	for _, mode := range modes {
		if mode == m.Session.Mode {
			cells = append(cells, ActiveToggleStyle.Render(mode.Label()))
		} else {
			cells = append(cells, InactiveToggleStyle.Render(mode.Label()))
		}
	}

	return marker + strings.Join(cells, " ")
}

// renderKits renders the kit catalog in the rows left by the rest of the
// form. Full cards are used when the whole catalog fits, one-line entries
// otherwise, windowed around the cursor when even those overflow.
func (m AppModel) renderKits() string {
	kits := m.Session.Kits
	if len(kits) == 0 {
		if m.KitsLoading {
			return "  " + m.Spinner.View() + " Loading kits..."
		}
		return HintStyle.Render("  No kits available")
	}

	rows := m.kitRows()
	width := contentWidth(m.Width) - 2
	compact := len(kits)*kitCardHeight > rows

	size := len(kits)
	if compact && size > rows {
		// Leave room for the "more" markers
		size = rows - 2
		if size < 1 {
			size = 1
		}
	}
	start, end := kitWindow(len(kits), m.KitCursor, size)

	var lines []string
	if start > 0 {
		lines = append(lines, HintStyle.Render("  ↑ more"))
	}
	for i := start; i < end; i++ {
		kit := kits[i]
		selected := m.Session.IsSelected(kit.ID)
		focused := m.Focus == focusKits && i == m.KitCursor
		if compact {
			lines = append(lines, RenderKitLine(kit, selected, focused, width))
		} else {
			lines = append(lines, RenderKitCard(kit, selected, focused, width))
		}
	}
	if end < len(kits) {
		lines = append(lines, HintStyle.Render("  ↓ more"))
	}

	return strings.Join(lines, "\n")
}

// kitRows returns the number of lines left for the kit list once the
// container chrome and the rest of the build form are laid out.
func (m AppModel) kitRows() int {
	height := m.Height
	if height <= 0 {
		height = DefaultHeight
	}
	rest := lipgloss.Height(m.renderModeToggle()) +
		lipgloss.Height(m.PartInput.View()) +
		lipgloss.Height(m.renderGenerateButton()) +
		buildFormSpacing

	rows := height - chromeHeight - rest
	if rows < 1 {
		return 1
	}
	return rows
}

// kitWindow returns the [start, end) range of n items to show so that
// cursor is inside it.
func kitWindow(n, cursor, size int) (int, int) {
	if size >= n {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

func (m AppModel) renderGenerateButton() string {
	if m.Session.Loading {
		return "  " + m.Spinner.View() + " Generating your build plan..."
	}

	label := "Generate Build Plan"
	if m.Session.Mode == planner.ModeReverse {
		label = "Find Parts & Plan"
	}

	var button string
	switch {
	case !m.Session.CanGenerate():
		button = DisabledButtonStyle.Render(label)
	case m.Focus == focusGenerate:
		button = FocusedButtonStyle.Render(label)
	default:
		button = ButtonStyle.Render(label)
	}

	marker := "  "
	if m.Focus == focusGenerate {
		marker = FocusMarkerStyle.Render("▸ ")
	}
	return marker + button
}
