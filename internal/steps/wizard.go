// Package steps tracks progress through an ordered list of assembly steps.
package steps

// Wizard is a cursor plus a completed set over a fixed list of steps.
// The zero value is an empty wizard on which every transition is a no-op.
type Wizard struct {
	steps     []string
	current   int
	completed map[int]struct{}
}

// New creates a wizard positioned on the first step with nothing completed.
func New(steps []string) Wizard {
	return Wizard{
		steps:     append([]string(nil), steps...),
		completed: make(map[int]struct{}),
	}
}

// Steps returns the step descriptions.
func (w Wizard) Steps() []string {
	return w.steps
}

// Total returns the number of steps.
func (w Wizard) Total() int {
	return len(w.steps)
}

// IsEmpty reports whether there are no steps.
func (w Wizard) IsEmpty() bool {
	return len(w.steps) == 0
}

// Current returns the cursor position.
func (w Wizard) Current() int {
	return w.current
}

// CurrentStep returns the description under the cursor, "" when empty.
func (w Wizard) CurrentStep() string {
	if w.IsEmpty() {
		return ""
	}
	return w.steps[w.current]
}

// AtFirst reports whether the cursor is on the first step.
func (w Wizard) AtFirst() bool {
	return w.current == 0
}

// AtLast reports whether the cursor is on the last step.
func (w Wizard) AtLast() bool {
	return w.current >= len(w.steps)-1
}

// Prev moves the cursor back one step; no-op on the first step.
func (w *Wizard) Prev() {
	if w.current > 0 {
		w.current--
	}
}

// Next moves the cursor forward one step; no-op on the last step.
func (w *Wizard) Next() {
	if w.current < len(w.steps)-1 {
		w.current++
	}
}

// Select moves the cursor to step i. Out-of-range indices are ignored.
func (w *Wizard) Select(i int) {
	if w.valid(i) {
		w.current = i
	}
}

// ToggleComplete flips whether step i is completed. Out-of-range indices
// are ignored.
func (w *Wizard) ToggleComplete(i int) {
	if !w.valid(i) {
		return
	}
	if w.completed == nil {
		w.completed = make(map[int]struct{})
	}
	if _, done := w.completed[i]; done {
		delete(w.completed, i)
	} else {
		w.completed[i] = struct{}{}
	}
}

// IsCompleted reports whether step i is completed.
func (w Wizard) IsCompleted(i int) bool {
	_, done := w.completed[i]
	return done
}

// CompletedCount returns the number of completed steps.
func (w Wizard) CompletedCount() int {
	return len(w.completed)
}

// Progress returns the completed fraction in [0, 1]; 0 when empty.
func (w Wizard) Progress() float64 {
	if len(w.steps) == 0 {
		return 0
	}
	return float64(len(w.completed)) / float64(len(w.steps))
}

// ProgressPercent returns Progress scaled to [0, 100].
func (w Wizard) ProgressPercent() float64 {
	return w.Progress() * 100
}

func (w Wizard) valid(i int) bool {
	return i >= 0 && i < len(w.steps)
}
