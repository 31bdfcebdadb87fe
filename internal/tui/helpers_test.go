package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/buildit/buildit/internal/api"
)

// fakeBackend is an in-memory Backend
type fakeBackend struct {
	mu       sync.Mutex
	kits     []api.Kit
	kitsErr  error
	result   *api.GenerationResult
	genErr   error
	requests []api.GenerationRequest
}

func (f *fakeBackend) ListKits(ctx context.Context) ([]api.Kit, error) {
	return f.kits, f.kitsErr
}

func (f *fakeBackend) Generate(ctx context.Context, req api.GenerationRequest) (*api.GenerationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.result, f.genErr
}

func testKits() []api.Kit {
	return []api.Kit{
		{ID: "id1", Name: "Arduino Starter Kit", Parts: []string{"Arduino Uno", "Breadboard", "LEDs"}},
		{ID: "id2", Name: "Motor Kit", Parts: []string{"DC Motor", "L298N"}},
	}
}

// collect runs cmd and returns the messages it produces, flattening
// batches. Only call it on commands that do not sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// send delivers msg to the model
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return app, cmd
}

// feed delivers every message produced by cmd
func feed(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for _, msg := range collect(cmd) {
		m, _ = send(t, m, msg)
	}
	return m
}

// loaded returns a model with the kit catalog from b already loaded
func loaded(t *testing.T, b Backend) AppModel {
	t.Helper()
	m := NewAppModel(Options{Backend: b, APIURL: "http://test"})
	return feed(t, m, m.Init())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlG    = tea.KeyMsg{Type: tea.KeyCtrlG}
	keyCtrlD    = tea.KeyMsg{Type: tea.KeyCtrlD}
)
