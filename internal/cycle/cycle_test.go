package cycle

import (
	"errors"
	"testing"

	"github.com/evemux/evemux/internal/wm"
)

type fakeManager struct {
	wm.Manager
	activated []uint64
	err       error
}

func (f *fakeManager) Activate(id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.activated = append(f.activated, id)
	return nil
}

func threeWindows() []wm.Window {
	return []wm.Window{
		{ID: 1, Title: "Alice"},
		{ID: 2, Title: "Bob"},
		{ID: 3, Title: "Carol"},
	}
}

func TestForward_WrapsAndFocuses(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())

	want := []uint64{2, 3, 1, 2}
	for i, id := range want {
		win, err := s.Forward(m)
		if err != nil {
			t.Fatalf("Forward #%d error: %v", i, err)
		}
		if win.ID != id {
			t.Fatalf("Forward #%d selected id %d, want %d", i, win.ID, id)
		}
	}
	if len(m.activated) != len(want) {
		t.Fatalf("activated %v, want one call per step %v", m.activated, want)
	}
}

func TestBackward_WrapsToEnd(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())

	win, err := s.Backward(m)
	if err != nil {
		t.Fatalf("Backward error: %v", err)
	}
	if win.ID != 3 {
		t.Fatalf("Backward from index 0 selected id %d, want 3", win.ID)
	}
}

func TestForwardThenBackward_ReturnsToStart(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())
	s.Resync(2) // start at index 1

	start := s.Index()
	n := len(s.Windows())
	for i := 0; i < n; i++ {
		if _, err := s.Forward(m); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		if _, err := s.Backward(m); err != nil {
			t.Fatal(err)
		}
	}
	if s.Index() != start {
		t.Fatalf("index = %d after n forward + n backward, want %d", s.Index(), start)
	}
}

func TestEmptySet_CyclesAreNoOps(t *testing.T) {
	m := &fakeManager{err: errors.New("backend must not be called")}
	s := New()

	if _, err := s.Forward(m); err != nil {
		t.Fatalf("Forward on empty set: %v", err)
	}
	if _, err := s.Backward(m); err != nil {
		t.Fatalf("Backward on empty set: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("Current on empty set reported a window")
	}
}

func TestUpdate_PreservesIndexWhenInRange(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())
	s.Forward(m) // index 1

	s.Update(threeWindows())
	if s.Index() != 1 {
		t.Fatalf("index = %d after same-size update, want 1", s.Index())
	}
}

func TestUpdate_ClampsOutOfRangeIndex(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())
	s.Forward(m)
	s.Forward(m) // index 2

	s.Update(threeWindows()[:1])
	if s.Index() != 0 {
		t.Fatalf("index = %d after shrink, want 0", s.Index())
	}
}

func TestUpdate_EmptyThenNonEmptyResetsToZero(t *testing.T) {
	m := &fakeManager{}
	s := New()
	s.Update(threeWindows())
	s.Forward(m)
	s.Forward(m) // index 2

	s.Update(nil)
	if _, ok := s.Current(); ok {
		t.Fatal("state should be empty after installing an empty list")
	}

	s.Update(threeWindows())
	if s.Index() != 0 {
		t.Fatalf("index = %d after re-install, want 0", s.Index())
	}
}

func TestResync(t *testing.T) {
	s := New()
	s.Update(threeWindows())

	s.Resync(3)
	if s.Index() != 2 {
		t.Fatalf("index = %d after Resync(3), want 2", s.Index())
	}

	// Unknown id leaves the state unchanged.
	s.Resync(99)
	if s.Index() != 2 {
		t.Fatalf("index = %d after Resync(99), want 2", s.Index())
	}
}

func TestForward_SurfacesActivateFailure(t *testing.T) {
	m := &fakeManager{err: errors.New("compositor gone")}
	s := New()
	s.Update(threeWindows())

	if _, err := s.Forward(m); err == nil {
		t.Fatal("expected Activate failure to surface")
	}
}
