package planner

import (
	"fmt"
	"strings"

	"github.com/buildit/buildit/internal/api"
)

// Mode selects how the backend plans a project.
type Mode string

const (
	// ModeBuild plans a project from the selected kits and custom parts
	ModeBuild Mode = api.ModeBuild
	// ModeReverse plans parts and sourcing for a stated goal
	ModeReverse Mode = api.ModeReverse
)

// DefaultBuildGoal is the goal sent in build mode, where the user picks
// parts rather than describing a target.
const DefaultBuildGoal = "Suggest a project"

// ParseMode converts "build" or "reverse" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBuild:
		return ModeBuild, nil
	case ModeReverse:
		return ModeReverse, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected build or reverse)", s)
	}
}

// Label returns the mode name shown in the mode toggle.
func (m Mode) Label() string {
	if m == ModeReverse {
		return "Reverse Mode"
	}
	return "Build Mode"
}

// Outcome is the result of the last generation: either a plan or an error
// message, never both.
type Outcome struct {
	Result *api.GenerationResult
	Err    string
}

// Failed reports whether the generation ended in an error.
func (o *Outcome) Failed() bool {
	return o != nil && o.Err != ""
}

// Session is the planner state: everything the user has chosen plus the
// state of the current or last generation.
type Session struct {
	Mode        Mode
	Kits        []api.Kit
	Selected    []string // Kit IDs in selection order, no duplicates
	CustomParts []string
	Goal        string
	Loading     bool
	Outcome     *Outcome // nil before the first generation and while loading
	ActiveTab   Tab
}

// NewSession creates an empty session in the given mode.
func NewSession(mode Mode) Session {
	if mode != ModeReverse {
		mode = ModeBuild
	}
	return Session{
		Mode:      mode,
		ActiveTab: TabOverview,
	}
}

// SetKits replaces the kit catalog.
func (s *Session) SetKits(kits []api.Kit) {
	s.Kits = kits
}

// ToggleKit adds id to the selection, or removes it if already selected.
func (s *Session) ToggleKit(id string) {
	if s.IsSelected(id) {
		next := make([]string, 0, len(s.Selected)-1)
		for _, sel := range s.Selected {
			if sel != id {
				next = append(next, sel)
			}
		}
		s.Selected = next
		return
	}

	next := make([]string, 0, len(s.Selected)+1)
	next = append(next, s.Selected...)
	s.Selected = append(next, id)
}

// IsSelected reports whether the kit is selected.
func (s Session) IsSelected(id string) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// SetMode switches mode. Selection, custom parts and goal are kept so the
// user can switch back without losing work.
func (s *Session) SetMode(mode Mode) {
	s.Mode = mode
	if !s.hasTab(s.ActiveTab) {
		// wiring <-> parts occupy the same slot
		s.ActiveTab = s.Tabs()[2]
	}
}

// ToggleMode flips between build and reverse mode.
func (s *Session) ToggleMode() {
	if s.Mode == ModeBuild {
		s.SetMode(ModeReverse)
	} else {
		s.SetMode(ModeBuild)
	}
}

// AddPart adds a custom part; see AddPart.
func (s *Session) AddPart(draft string) bool {
	var added bool
	s.CustomParts, added = AddPart(s.CustomParts, draft)
	return added
}

// RemovePart removes a custom part; see RemovePart.
func (s *Session) RemovePart(name string) {
	s.CustomParts = RemovePart(s.CustomParts, name)
}

// SetCustomParts replaces the custom parts list.
func (s *Session) SetCustomParts(parts []string) {
	s.CustomParts = parts
}

// CanGenerate reports whether the current input is enough to ask for a
// plan: kits or custom parts in build mode, a non-blank goal in reverse
// mode.
func (s Session) CanGenerate() bool {
	if s.Mode == ModeReverse {
		return strings.TrimSpace(s.Goal) != ""
	}
	return len(s.Selected) > 0 || len(s.CustomParts) > 0
}

// Request builds the generation request for the current mode.
func (s Session) Request() api.GenerationRequest {
	if s.Mode == ModeReverse {
		return api.GenerationRequest{
			Mode:        api.ModeReverse,
			Kits:        []string{},
			CustomParts: []string{},
			Goal:        strings.TrimSpace(s.Goal),
		}
	}

	return api.GenerationRequest{
		Mode:        api.ModeBuild,
		Kits:        append([]string{}, s.Selected...),
		CustomParts: append([]string{}, s.CustomParts...),
		Goal:        DefaultBuildGoal,
	}
}

// Begin starts a generation. It returns false, changing nothing, when the
// input is insufficient or a generation is already running.
func (s *Session) Begin() (api.GenerationRequest, bool) {
	if !s.CanGenerate() || s.Loading {
		return api.GenerationRequest{}, false
	}
	s.Loading = true
	s.Outcome = nil
	return s.Request(), true
}

// Finish records the end of a generation. Loading is cleared on every path.
func (s *Session) Finish(result *api.GenerationResult, err error) {
	s.Loading = false

	if err != nil {
		s.Outcome = &Outcome{Err: err.Error()}
		return
	}
	if result == nil {
		result = &api.GenerationResult{}
	}
	s.Outcome = &Outcome{Result: result}
	s.ActiveTab = TabOverview
}

// Result returns the last successful plan, or nil.
func (s Session) Result() *api.GenerationResult {
	if s.Outcome == nil || s.Outcome.Failed() {
		return nil
	}
	return s.Outcome.Result
}

// SelectedKits returns the selected kits in selection order. IDs missing
// from the catalog are skipped.
func (s Session) SelectedKits() []api.Kit {
	byID := make(map[string]api.Kit, len(s.Kits))
	for _, k := range s.Kits {
		byID[k.ID] = k
	}

	kits := make([]api.Kit, 0, len(s.Selected))
	for _, id := range s.Selected {
		if k, ok := byID[id]; ok {
			kits = append(kits, k)
		}
	}
	return kits
}
