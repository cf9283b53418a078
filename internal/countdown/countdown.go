// Package countdown computes the time remaining to a target instant and how
// far along the span from start to target we are.
package countdown

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const day = 24 * time.Hour

// Status is a snapshot of the countdown.
type Status struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int

	// Progress is the elapsed share of start..end, 0-100.
	Progress float64

	// Done is true once end has passed.
	Done bool
}

// Compute returns the countdown from now to end, with progress measured
// from start. Past the end every unit is zero and progress is 100.
func Compute(start, end, now time.Time) Status {
	remaining := end.Sub(now)
	if remaining < 0 {
		return Status{Progress: 100, Done: true}
	}

	s := Status{
		Days:    int(remaining / day),
		Hours:   int(remaining % day / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
		Seconds: int(remaining % time.Minute / time.Second),
	}

	total := end.Sub(start)
	if total > 0 {
		s.Progress = float64(now.Sub(start)) / float64(total) * 100
		s.Progress = math.Max(0, math.Min(s.Progress, 100))
	}
	return s
}

// TickMsg carries the wall-clock time of a countdown refresh.
type TickMsg time.Time

// Tick schedules the next refresh one second out.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
