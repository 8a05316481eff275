package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

type fakeSessionStore struct {
	sessions map[string]models.FocusSession
	added    int
	updated  int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.FocusSession)}
}

func (f *fakeSessionStore) AddSession(s models.FocusSession) error {
	f.sessions[s.ID] = s
	f.added++
	return nil
}

func (f *fakeSessionStore) UpdateSession(s models.FocusSession) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return errors.New("session not found")
	}
	f.sessions[s.ID] = s
	f.updated++
	return nil
}

func (f *fakeSessionStore) only(t *testing.T) models.FocusSession {
	t.Helper()
	if len(f.sessions) != 1 {
		t.Fatalf("store holds %d sessions, want 1", len(f.sessions))
	}
	for _, s := range f.sessions {
		return s
	}
	return models.FocusSession{}
}

func testMachine() (*Machine, *fakeSessionStore) {
	store := newFakeSessionStore()
	clock := utils.FixedClock{Time: time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)}
	return NewMachine(store, clock), store
}

func TestStartRequiresTaskName(t *testing.T) {
	m, store := testMachine()

	for _, name := range []string{"", "   ", "\t"} {
		if err := m.Start(name); !errors.Is(err, ErrNoTaskName) {
			t.Errorf("Start(%q) error = %v, want ErrNoTaskName", name, err)
		}
	}
	if m.State() != Idle {
		t.Errorf("state = %v after rejected starts, want Idle", m.State())
	}
	if store.added != 0 {
		t.Errorf("store recorded %d sessions for rejected starts, want 0", store.added)
	}
}

func TestStartCreatesOneRecord(t *testing.T) {
	m, store := testMachine()

	if err := m.Start("deep work"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if m.State() != Running {
		t.Errorf("state = %v, want Running", m.State())
	}
	if err := m.Start("again"); !errors.Is(err, ErrNotIdle) {
		t.Errorf("second Start() error = %v, want ErrNotIdle", err)
	}

	s := store.only(t)
	if s.TaskName != "deep work" || s.Completed || s.EndedAt != nil {
		t.Errorf("stored session = %+v, want open record for %q", s, "deep work")
	}
}

func TestPauseFreezesWithoutPersisting(t *testing.T) {
	m, store := testMachine()
	if err := m.Start("reading"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := m.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	m.Pause()
	frozen := m.Remaining()

	for i := 0; i < 100; i++ {
		if _, err := m.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	if m.Remaining() != frozen {
		t.Errorf("remaining moved from %d to %d while paused", frozen, m.Remaining())
	}
	if store.updated != 0 {
		t.Errorf("pause wrote %d updates, want 0", store.updated)
	}

	m.Resume()
	if _, err := m.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if m.Remaining() != frozen-1 {
		t.Errorf("remaining = %d after resume+tick, want %d", m.Remaining(), frozen-1)
	}
}

func TestFullCountdownCompletesOnce(t *testing.T) {
	m, store := testMachine()
	if err := m.SetDuration(25); err != nil {
		t.Fatalf("SetDuration() error = %v", err)
	}
	if err := m.Start("writing"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	completions := 0
	for i := 0; i < 1500; i++ {
		done, err := m.Tick()
		if err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if done {
			completions++
		}
		if m.Remaining() < 0 {
			t.Fatalf("remaining went negative at tick %d", i)
		}
	}
	if completions != 1 {
		t.Errorf("countdown completed %d times, want exactly 1", completions)
	}
	if m.State() != Idle {
		t.Errorf("state = %v after completion, want Idle", m.State())
	}
	if m.TaskName() != "writing" {
		t.Errorf("task name = %q after completion, want it retained", m.TaskName())
	}

	s := store.only(t)
	if !s.Completed {
		t.Error("stored session not marked completed")
	}
	if s.ActualMinutes != 25 {
		t.Errorf("ActualMinutes = %d, want 25", s.ActualMinutes)
	}
	if s.EndedAt == nil {
		t.Error("EndedAt not set on completion")
	}

	// further ticks on the reset timer are inert
	for i := 0; i < 5; i++ {
		if done, _ := m.Tick(); done {
			t.Fatal("idle tick reported a completion")
		}
	}
}

func TestResetAbandonsRecord(t *testing.T) {
	m, store := testMachine()
	if err := m.Start("sketching"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 120; i++ {
		if _, err := m.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if err := m.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if m.State() != Idle {
		t.Errorf("state = %v after reset, want Idle", m.State())
	}
	if m.Remaining() != m.DurationMinutes()*60 {
		t.Errorf("remaining = %d after reset, want full duration", m.Remaining())
	}

	s := store.only(t)
	if s.Completed {
		t.Error("abandoned session marked completed")
	}
	if s.EndedAt == nil {
		t.Error("abandoned session left open")
	}
	if s.ActualMinutes != 2 {
		t.Errorf("ActualMinutes = %d for abandoned session, want 2", s.ActualMinutes)
	}

	// no open record, so a second reset touches nothing
	updates := store.updated
	if err := m.Reset(); err != nil {
		t.Fatalf("second Reset() error = %v", err)
	}
	if store.updated != updates {
		t.Error("idle reset wrote to the store")
	}
}

func TestSetDurationOnlyWhileIdle(t *testing.T) {
	m, _ := testMachine()

	if err := m.SetDuration(45); err != nil {
		t.Fatalf("SetDuration() error = %v", err)
	}
	if m.Remaining() != 45*60 {
		t.Errorf("remaining = %d after SetDuration(45), want %d", m.Remaining(), 45*60)
	}
	if err := m.SetDuration(0); err == nil {
		t.Error("SetDuration(0) succeeded, want error")
	}

	if err := m.Start("focus"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.SetDuration(15); !errors.Is(err, ErrNotIdle) {
		t.Errorf("SetDuration() while running error = %v, want ErrNotIdle", err)
	}
}

func TestDisplay(t *testing.T) {
	m, _ := testMachine()
	if err := m.SetDuration(25); err != nil {
		t.Fatalf("SetDuration() error = %v", err)
	}
	if got := m.Display(); got != "25:00" {
		t.Errorf("Display() = %q, want 25:00", got)
	}

	if err := m.Start("math"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := m.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if got := m.Display(); got != "24:59" {
		t.Errorf("Display() = %q, want 24:59", got)
	}
}
