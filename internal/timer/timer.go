// Package timer implements the focus countdown state machine. The machine
// owns the transition logic and session bookkeeping; the caller supplies the
// once-per-second tick.
package timer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// State is the timer's lifecycle phase.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

var (
	ErrNoTaskName = errors.New("focus session needs a task name")
	ErrNotIdle    = errors.New("timer is already running")
)

// SessionStore is the slice of the repository the machine persists to.
type SessionStore interface {
	AddSession(s models.FocusSession) error
	UpdateSession(s models.FocusSession) error
}

// Machine drives a single focus countdown. It is not safe for concurrent
// use; the TUI drives it from its single update loop.
type Machine struct {
	store SessionStore
	clock utils.Clock

	state           State
	durationMinutes int
	remaining       int // seconds
	taskName        string
	session         models.FocusSession
}

func NewMachine(store SessionStore, clock utils.Clock) *Machine {
	m := &Machine{
		store: store,
		clock: clock,
		state: Idle,
	}
	m.setDuration(constants.DefaultFocusMinutes)
	return m
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Remaining() int { return m.remaining }

func (m *Machine) DurationMinutes() int { return m.durationMinutes }

func (m *Machine) TaskName() string { return m.taskName }

func (m *Machine) Display() string { return utils.FormatClock(m.remaining) }

// Elapsed reports the seconds counted down so far.
func (m *Machine) Elapsed() int {
	return m.durationMinutes*60 - m.remaining
}

func (m *Machine) setDuration(minutes int) {
	m.durationMinutes = minutes
	m.remaining = minutes * 60
}

// SetDuration picks a new countdown length. Only an idle timer can be
// re-sized; changing the duration resets the remaining time.
func (m *Machine) SetDuration(minutes int) error {
	if m.state != Idle {
		return ErrNotIdle
	}
	if minutes <= 0 {
		return fmt.Errorf("invalid focus duration %d", minutes)
	}
	m.setDuration(minutes)
	return nil
}

// Start begins the countdown and persists the session record. Starting is
// the only transition that creates a record; pausing and resuming reuse it.
func (m *Machine) Start(taskName string) error {
	taskName = strings.TrimSpace(taskName)
	if taskName == "" {
		return ErrNoTaskName
	}
	if m.state != Idle {
		return ErrNotIdle
	}

	m.session = models.FocusSession{
		ID:              uuid.New().String(),
		DurationMinutes: m.durationMinutes,
		TaskName:        taskName,
		StartedAt:       m.clock.Now(),
	}
	if err := m.store.AddSession(m.session); err != nil {
		return fmt.Errorf("failed to start focus session: %w", err)
	}

	m.taskName = taskName
	m.remaining = m.durationMinutes * 60
	m.state = Running
	return nil
}

// Pause freezes the countdown. Nothing is persisted; the open record stays
// open.
func (m *Machine) Pause() {
	if m.state == Running {
		m.state = Paused
	}
}

// Resume continues a paused countdown.
func (m *Machine) Resume() {
	if m.state == Paused {
		m.state = Running
	}
}

// Reset abandons the countdown. An open session record is closed as
// incomplete with the time actually spent; it is never deleted. The task
// name is kept so the next session can reuse it.
func (m *Machine) Reset() error {
	if m.state != Idle && m.session.Open() {
		now := m.clock.Now()
		m.session.EndedAt = &now
		m.session.ActualMinutes = m.Elapsed() / 60
		if err := m.store.UpdateSession(m.session); err != nil {
			return fmt.Errorf("failed to abandon focus session: %w", err)
		}
	}
	m.state = Idle
	m.remaining = m.durationMinutes * 60
	m.session = models.FocusSession{}
	return nil
}

// Tick advances the countdown by one second. It returns true exactly once
// per session, on the tick that completes it. Ticks while idle or paused
// are ignored, and the remaining time never goes negative.
func (m *Machine) Tick() (completed bool, err error) {
	if m.state != Running {
		return false, nil
	}

	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		return false, nil
	}

	now := m.clock.Now()
	m.session.Completed = true
	m.session.ActualMinutes = m.session.DurationMinutes
	m.session.EndedAt = &now
	if err := m.store.UpdateSession(m.session); err != nil {
		return false, fmt.Errorf("failed to complete focus session: %w", err)
	}

	// back to idle, ready for the next round on the same task
	m.state = Idle
	m.remaining = m.durationMinutes * 60
	m.session = models.FocusSession{}
	return true, nil
}
