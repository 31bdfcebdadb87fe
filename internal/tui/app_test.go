package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/planner"
)

func TestInit_LoadsKits(t *testing.T) {
	m := loaded(t, &fakeBackend{kits: testKits()})

	assert.False(t, m.KitsLoading)
	require.Len(t, m.Session.Kits, 2)
	assert.Contains(t, m.View(), "Arduino Starter Kit")
	assert.Contains(t, m.View(), "Motor Kit")
}

func TestPlanner_KitListFitsTerminal(t *testing.T) {
	kits := append(testKits(), api.Kit{ID: "id3", Name: "Sensor Pack", Parts: []string{"HC-SR04"}})

	tests := []struct {
		name        string
		height      int
		wantCards   bool
		wantVisible []string
	}{
		{"default terminal", 24, false, []string{"Arduino Starter Kit", "Motor Kit", "Sensor Pack"}},
		{"tall terminal", 40, true, []string{"Arduino Starter Kit", "Motor Kit", "Sensor Pack"}},
		{"short terminal", 18, false, []string{"Arduino Starter Kit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t, &fakeBackend{kits: kits})
			m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: tt.height})

			view := m.View()
			for _, name := range tt.wantVisible {
				assert.Contains(t, view, name)
			}
			// Descriptions only appear on full cards
			assert.Equal(t, tt.wantCards, strings.Contains(view, "Environmental sensing"))
			assert.LessOrEqual(t, lipgloss.Height(view), tt.height)
		})
	}
}

func TestPlanner_ShortTerminalKeepsCursorVisible(t *testing.T) {
	kits := append(testKits(), api.Kit{ID: "id3", Name: "Sensor Pack"})
	m := loaded(t, &fakeBackend{kits: kits})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 18})

	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyDown)
	require.Equal(t, 2, m.KitCursor)

	view := m.View()
	assert.Contains(t, view, "Sensor Pack")
	assert.Contains(t, view, "↑ more")
}

func TestInit_KitFailureIsNotShown(t *testing.T) {
	m := loaded(t, &fakeBackend{kitsErr: api.NewNetworkError("Kit catalog request failed", errors.New("connection refused"))})

	assert.False(t, m.KitsLoading)
	assert.Empty(t, m.Session.Kits)
	assert.Nil(t, m.Session.Outcome)

	view := m.View()
	assert.Contains(t, view, "No kits available")
	assert.NotContains(t, view, "connection refused")
}

func TestGenerate_IgnoredWithoutInput(t *testing.T) {
	b := &fakeBackend{kits: testKits()}
	m := loaded(t, b)

	m, cmd := send(t, m, keyCtrlG)
	assert.Nil(t, cmd)
	assert.False(t, m.Session.Loading)
	assert.Empty(t, b.requests)
}

func TestGenerate_SecondRequestWhileLoadingIsIgnored(t *testing.T) {
	b := &fakeBackend{kits: testKits(), result: &api.GenerationResult{Overview: "plan"}}
	m := loaded(t, b)
	m.Session.ToggleKit("id1")

	m, first := send(t, m, keyCtrlG)
	require.NotNil(t, first)
	assert.True(t, m.Session.Loading)
	assert.Contains(t, m.View(), "Generating your build plan")

	m, second := send(t, m, keyCtrlG)
	assert.Nil(t, second)

	m = feed(t, m, first)
	assert.False(t, m.Session.Loading)
	assert.Len(t, b.requests, 1)
	assert.Equal(t, ScreenResult, m.CurrentScreen)
}

func TestPlanner_SelectKitsWithKeys(t *testing.T) {
	m := loaded(t, &fakeBackend{kits: testKits()})

	m, _ = send(t, m, keyTab) // kits
	assert.Equal(t, focusKits, m.Focus)

	m, _ = send(t, m, keySpace)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyEnter)
	assert.Equal(t, []string{"id1", "id2"}, m.Session.Selected)

	m, _ = send(t, m, keySpace)
	assert.Equal(t, []string{"id1"}, m.Session.Selected)
	assert.True(t, m.Session.CanGenerate())
}

func TestPlanner_ModeToggle(t *testing.T) {
	m := loaded(t, &fakeBackend{kits: testKits()})
	require.Equal(t, focusMode, m.Focus)

	m, _ = send(t, m, keyRight)
	assert.Equal(t, planner.ModeReverse, m.Session.Mode)
	assert.Contains(t, m.View(), "What do you want to build?")
	assert.NotContains(t, m.View(), "Select Kits")

	m, _ = send(t, m, runes("m"))
	assert.Equal(t, planner.ModeBuild, m.Session.Mode)
}

func TestPlanner_FocusOrderFollowsMode(t *testing.T) {
	m := loaded(t, &fakeBackend{kits: testKits()})

	var seen []focusArea
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, keyTab)
		seen = append(seen, m.Focus)
	}
	assert.Equal(t, []focusArea{focusKits, focusParts, focusGenerate, focusMode}, seen)

	m, _ = send(t, m, keyRight) // reverse mode
	m, _ = send(t, m, keyTab)
	assert.Equal(t, focusGoal, m.Focus)
	m, _ = send(t, m, keyShiftTab)
	assert.Equal(t, focusMode, m.Focus)
}

func TestPlanner_CustomParts(t *testing.T) {
	m := loaded(t, &fakeBackend{kits: testKits()})
	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keyTab)
	require.Equal(t, focusParts, m.Focus)

	// q types into the field instead of quitting
	for _, r := range "Servo q" {
		m, _ = send(t, m, runes(string(r)))
	}
	m, cmd := send(t, m, keyEnter)
	m = feed(t, m, cmd)

	assert.Equal(t, []string{"Servo q"}, m.Session.CustomParts)
	assert.Equal(t, []string{"Servo q"}, m.PartInput.Parts)
	assert.True(t, m.Session.CanGenerate())
}

func TestPlanner_GenerateRightAfterAddingPart(t *testing.T) {
	b := &fakeBackend{kits: testKits(), result: &api.GenerationResult{Overview: "plan"}}
	m := loaded(t, b)
	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keyTab)
	require.Equal(t, focusParts, m.Focus)

	for _, r := range "Servo" {
		m, _ = send(t, m, runes(string(r)))
	}
	// The PartsChangedMsg from enter is still pending when ctrl+g arrives
	m, _ = send(t, m, keyEnter)
	assert.Equal(t, []string{"Servo"}, m.Session.CustomParts)

	m, cmd := send(t, m, keyCtrlG)
	require.NotNil(t, cmd)
	m = feed(t, m, cmd)

	require.Len(t, b.requests, 1)
	assert.Equal(t, []string{"Servo"}, b.requests[0].CustomParts)
	assert.Empty(t, b.requests[0].Kits)
	assert.Equal(t, ScreenResult, m.CurrentScreen)
}

func TestPlanner_PreloadedCustomParts(t *testing.T) {
	m := NewAppModel(Options{
		Backend:     &fakeBackend{},
		CustomParts: []string{"LED", " LED ", "Buzzer"},
	})

	assert.Equal(t, []string{"LED", "Buzzer"}, m.Session.CustomParts)
	assert.Equal(t, []string{"LED", "Buzzer"}, m.PartInput.Parts)
}

func TestPlanner_ReverseGoalInput(t *testing.T) {
	b := &fakeBackend{result: &api.GenerationResult{PartsNeeded: []string{"Servo"}}}
	m := loaded(t, b)

	m, _ = send(t, m, keyRight)
	m, _ = send(t, m, keyTab)
	require.Equal(t, focusGoal, m.Focus)

	for _, r := range "arm" {
		m, _ = send(t, m, runes(string(r)))
	}
	assert.Equal(t, "arm", m.Session.Goal)

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)

	require.Len(t, b.requests, 1)
	assert.Equal(t, api.GenerationRequest{
		Mode:        "reverse",
		Kits:        []string{},
		CustomParts: []string{},
		Goal:        "arm",
	}, b.requests[0])
	assert.Equal(t, []planner.Tab{planner.TabOverview, planner.TabSteps, planner.TabParts, planner.TabCode}, m.Session.Tabs())
}

func TestResult_TabsAndSteps(t *testing.T) {
	b := &fakeBackend{kits: testKits(), result: &api.GenerationResult{
		Overview: "A line follower",
		Steps:    []string{"Mount motors", "Wire sensors", "Upload code"},
		Wiring:   "D3 -> IN1",
		Firmware: "void setup() {}",
	}}
	m := loaded(t, b)
	m.Session.ToggleKit("id1")
	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)
	require.Equal(t, ScreenResult, m.CurrentScreen)
	assert.Equal(t, planner.TabOverview, m.Session.ActiveTab)

	m, _ = send(t, m, keyTab)
	assert.Equal(t, planner.TabSteps, m.Session.ActiveTab)
	assert.Contains(t, m.View(), "0 of 3 complete")

	m, _ = send(t, m, keyRight)
	m, _ = send(t, m, keySpace)
	assert.Equal(t, 1, m.Steps.Wizard.Current())
	assert.True(t, m.Steps.Wizard.IsCompleted(1))
	assert.Contains(t, m.View(), "1 of 3 complete")

	m, _ = send(t, m, keyTab)
	assert.Equal(t, planner.TabWiring, m.Session.ActiveTab)
	assert.Contains(t, m.View(), "D3 -> IN1")

	m, _ = send(t, m, keyShiftTab)
	m, _ = send(t, m, keyShiftTab)
	assert.Equal(t, planner.TabOverview, m.Session.ActiveTab)
}

func TestResult_BackKeepsState(t *testing.T) {
	b := &fakeBackend{kits: testKits(), result: &api.GenerationResult{Overview: "plan"}}
	m := loaded(t, b)
	m.Session.ToggleKit("id2")
	m.Session.AddPart("Servo")

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)
	require.Equal(t, ScreenResult, m.CurrentScreen)

	m, _ = send(t, m, keyEsc)
	assert.Equal(t, ScreenPlanner, m.CurrentScreen)
	assert.Equal(t, []string{"id2"}, m.Session.Selected)
	assert.Equal(t, []string{"Servo"}, m.Session.CustomParts)
	assert.NotNil(t, m.Session.Result())

	m, _ = send(t, m, runes("r"))
	assert.Equal(t, ScreenResult, m.CurrentScreen)
}

func TestResult_ErrorPanelReplacesTabs(t *testing.T) {
	b := &fakeBackend{kits: testKits(), genErr: api.NewHTTPError(http.StatusInternalServerError, "LLM quota exceeded")}
	m := loaded(t, b)
	m.Session.ToggleKit("id1")

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "LLM quota exceeded")
	assert.Contains(t, view, "try again")
	assert.NotContains(t, view, "Overview")
	assert.False(t, m.Session.Loading)

	// Tab keys do nothing on the error panel
	m, _ = send(t, m, keyTab)
	assert.Equal(t, planner.TabOverview, m.Session.ActiveTab)
}

// backendServer is an httptest stand-in for the BuildIT backend
func backendServer(t *testing.T, generate http.HandlerFunc) (*httptest.Server, *[]api.GenerationRequest) {
	t.Helper()
	var received []api.GenerationRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/api/kits", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(testKits())
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var req api.GenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		received = append(received, req)
		generate(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &received
}

func TestEndToEnd_BuildPlan(t *testing.T) {
	server, received := backendServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"overview":"X","steps":["a","b","c"],"wiring":"","firmware":"","model_used":"gemini"}`))
	})

	m := loaded(t, api.NewClient(server.URL))
	require.Len(t, m.Session.Kits, 2)

	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keySpace)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keySpace)

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)

	require.Len(t, *received, 1)
	assert.Equal(t, api.GenerationRequest{
		Mode:        "build",
		Kits:        []string{"id1", "id2"},
		CustomParts: []string{},
		Goal:        "Suggest a project",
	}, (*received)[0])

	require.Equal(t, ScreenResult, m.CurrentScreen)
	result := m.Session.Result()
	require.NotNil(t, result)
	assert.Equal(t, "X", result.Overview)

	view := m.View()
	assert.Contains(t, view, "Overview")
	assert.Contains(t, view, "Model: gemini")
	assert.Contains(t, m.Viewport.View(), "X")

	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keyTab)
	assert.Contains(t, m.View(), planner.NoWiring)
	m, _ = send(t, m, keyTab)
	assert.Contains(t, m.View(), planner.NoCode)
}

func TestEndToEnd_ReversePartsTab(t *testing.T) {
	server, _ := backendServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"overview": "Gripper arm",
			"steps": ["Assemble base"],
			"parts_needed": ["Servo Motor SG90", "Arduino Nano"],
			"estimated_cost": "$25-40",
			"where_to_buy": ["Adafruit", "SparkFun"],
			"model_used": "gemini"
		}`))
	})

	m := loaded(t, api.NewClient(server.URL))
	m, _ = send(t, m, keyRight)
	m, _ = send(t, m, keyTab)
	for _, r := range "robot arm" {
		m, _ = send(t, m, runes(string(r)))
	}

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)
	require.NotNil(t, m.Session.Result())
	assert.Equal(t, []string{"Adafruit", "SparkFun"}, m.Session.Result().WhereToBuy)

	m, _ = send(t, m, keyTab)
	m, _ = send(t, m, keyTab)
	require.Equal(t, planner.TabParts, m.Session.ActiveTab)

	view := m.View()
	assert.Contains(t, view, "• Servo Motor SG90")
	assert.Contains(t, view, "$25-40")
	assert.Contains(t, view, "• Adafruit")
	assert.Contains(t, view, "• SparkFun")
	assert.NotContains(t, view, planner.NoWhereInfo)
}

func TestEndToEnd_ValidationError(t *testing.T) {
	server, received := backendServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"goal too short"}`))
	})

	m := loaded(t, api.NewClient(server.URL))
	m, _ = send(t, m, keyRight)
	m, _ = send(t, m, keyTab)
	for _, r := range "pick up small objects" {
		m, _ = send(t, m, runes(string(r)))
	}

	m, cmd := send(t, m, keyCtrlG)
	m = feed(t, m, cmd)

	require.Len(t, *received, 1)
	assert.Equal(t, "reverse", (*received)[0].Mode)
	assert.Equal(t, "pick up small objects", (*received)[0].Goal)

	require.NotNil(t, m.Session.Outcome)
	assert.Equal(t, "goal too short", m.Session.Outcome.Err)
	assert.Contains(t, m.View(), "goal too short")
	assert.False(t, m.Session.Loading)
}
