package planner

// Tab is one view over a generation result.
type Tab string

const (
	TabOverview Tab = "overview"
	TabSteps    Tab = "steps"
	TabWiring   Tab = "wiring"
	TabParts    Tab = "parts"
	TabCode     Tab = "code"
)

// Title returns the tab label.
func (t Tab) Title() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabSteps:
		return "Steps"
	case TabWiring:
		return "Wiring"
	case TabParts:
		return "Parts"
	case TabCode:
		return "Code"
	default:
		return string(t)
	}
}

// TabsFor returns the result tabs for a mode. The third tab is wiring in
// build mode and the parts list in reverse mode.
func TabsFor(mode Mode) []Tab {
	third := TabWiring
	if mode == ModeReverse {
		third = TabParts
	}
	return []Tab{TabOverview, TabSteps, third, TabCode}
}

// Tabs returns the result tabs for the session's mode.
func (s Session) Tabs() []Tab {
	return TabsFor(s.Mode)
}

func (s Session) hasTab(t Tab) bool {
	for _, tab := range s.Tabs() {
		if tab == t {
			return true
		}
	}
	return false
}

// SetTab activates t if it belongs to the current mode's tab set.
func (s *Session) SetTab(t Tab) bool {
	if !s.hasTab(t) {
		return false
	}
	s.ActiveTab = t
	return true
}

// NextTab activates the following tab, wrapping around.
func (s *Session) NextTab() {
	s.shiftTab(1)
}

// PrevTab activates the preceding tab, wrapping around.
func (s *Session) PrevTab() {
	s.shiftTab(-1)
}

func (s *Session) shiftTab(delta int) {
	tabs := s.Tabs()
	idx := 0
	for i, t := range tabs {
		if t == s.ActiveTab {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	s.ActiveTab = tabs[idx]
}

// Placeholders shown for empty result fields
const (
	NoOverview  = "No overview"
	NoSteps     = "No steps available"
	NoWiring    = "No wiring info"
	NoCode      = "No code generated"
	NoParts     = "No parts listed"
	NoWhereInfo = "No sourcing info"
)
