package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/buildit/buildit/internal/planner"
)

// updateResult handles input on the result screen
func (m AppModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	k := m.ResultKeys
	switch {
	case key.Matches(keyMsg, k.Back):
		// Back to the form with every choice intact
		m.CurrentScreen = ScreenPlanner
		return m, nil
	case key.Matches(keyMsg, k.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, k.Generate):
		m.CurrentScreen = ScreenPlanner
		return m.startGeneration()
	}

	// The error panel has nothing else to interact with
	if m.Session.Result() == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, k.NextTab):
		m.Session.NextTab()
		m.Viewport.GotoTop()
		m.refreshViewport()
		return m, nil
	case key.Matches(keyMsg, k.PrevTab):
		m.Session.PrevTab()
		m.Viewport.GotoTop()
		m.refreshViewport()
		return m, nil
	}

	if m.Session.ActiveTab == planner.TabSteps && m.isStepKey(keyMsg) {
		var cmd tea.Cmd
		m.Steps, cmd = m.Steps.Update(keyMsg)
		m.refreshViewport()
		return m, cmd
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(keyMsg)
	return m, cmd
}

// isStepKey reports whether msg belongs to the step wizard rather than the
// scrolling viewport
func (m AppModel) isStepKey(msg tea.KeyMsg) bool {
	s := m.Steps.Keys
	return key.Matches(msg, s.Prev, s.Next, s.Complete, s.Jump, s.First, s.Last)
}

// refreshViewport renders the active tab into the scrolling viewport
func (m *AppModel) refreshViewport() {
	result := m.Session.Result()
	if result == nil {
		m.Viewport.SetContent("")
		return
	}

	var content string
	switch m.Session.ActiveTab {
	case planner.TabSteps:
		content = m.Steps.View()
	case planner.TabWiring:
		content = renderWiringTab(result)
	case planner.TabParts:
		content = renderPartsTab(result)
	case planner.TabCode:
		content = renderCodeTab(result, m.markdown)
	default:
		content = renderOverviewTab(result, m.markdown)
	}
	m.Viewport.SetContent(content)
}

// buildResultContent builds the result screen: the error panel after a
// failure, otherwise the tab bar over the active tab.
func (m AppModel) buildResultContent() string {
	var b strings.Builder

	title := "Your Build Plan"
	if m.Session.Mode == planner.ModeReverse {
		title = "Your Parts List & Plan"
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	if m.Session.Loading {
		b.WriteString(m.Spinner.View() + " Generating your build plan...")
		return b.String()
	}

	if o := m.Session.Outcome; o.Failed() {
		b.WriteString(renderErrorPanel(o.Err, m.LastError))
		return b.String()
	}

	b.WriteString(renderTabBar(m.Session.Tabs(), m.Session.ActiveTab))
	b.WriteString("\n\n")
	b.WriteString(m.Viewport.View())
	return b.String()
}
