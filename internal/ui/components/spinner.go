package components

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var lastSpinnerID atomic.Int64

// SpinnerTickMsg advances the Spinner with the matching ID.
type SpinnerTickMsg struct {
	ID   int64
	Time time.Time
}

// Spinner is a braille loading indicator. Each spinner only reacts to its
// own ticks, so a screen that is pushed again does not double its speed.
type Spinner struct {
	id    int64
	frame int
}

// NewSpinner returns a spinner with a fresh ID.
func NewSpinner() Spinner {
	return Spinner{id: lastSpinnerID.Add(1)}
}

// Tick schedules the next frame.
func (s Spinner) Tick() tea.Cmd {
	id := s.id
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{ID: id, Time: t}
	})
}

// Update advances the frame when msg is this spinner's tick. The bool
// reports whether the message was consumed.
func (s Spinner) Update(msg tea.Msg) (Spinner, bool) {
	tick, ok := msg.(SpinnerTickMsg)
	if !ok || tick.ID != s.id {
		return s, false
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s, true
}

// View renders the current frame.
func (s Spinner) View() string {
	return spinnerFrames[s.frame]
}
