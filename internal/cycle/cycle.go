// Package cycle tracks the "current" EVE window and moves focus forward and
// backward through the known window set, staying correct when focus changes
// outside the tool.
package cycle

import "github.com/evemux/evemux/internal/wm"

// State is an ordered view over the most recent window enumeration with a
// current pointer. It is owned by a single control loop; the daemon
// serializes access.
type State struct {
	windows []wm.Window
	current int
}

// New returns an empty cycle state.
func New() *State {
	return &State{}
}

// Update replaces the window list wholesale. The current index survives the
// swap when still in range and clamps to 0 otherwise; an out-of-range index
// self-heals rather than erroring.
func (s *State) Update(windows []wm.Window) {
	s.windows = windows
	if s.current >= len(s.windows) {
		s.current = 0
	}
}

// Windows returns the current ordered view.
func (s *State) Windows() []wm.Window {
	return s.windows
}

// Current returns the window under the pointer. ok is false when the set is
// empty.
func (s *State) Current() (wm.Window, bool) {
	if len(s.windows) == 0 {
		return wm.Window{}, false
	}
	return s.windows[s.current], true
}

// Index returns the current pointer position. Meaningless while empty.
func (s *State) Index() int {
	return s.current
}

// Forward advances the pointer and focuses the selected window. On an empty
// set it succeeds without touching the backend.
func (s *State) Forward(m wm.Manager) (wm.Window, error) {
	if len(s.windows) == 0 {
		return wm.Window{}, nil
	}
	s.current = (s.current + 1) % len(s.windows)
	return s.focusCurrent(m)
}

// Backward retreats the pointer, wrapping to the end, and focuses the
// selected window. On an empty set it succeeds without touching the backend.
func (s *State) Backward(m wm.Manager) (wm.Window, error) {
	if len(s.windows) == 0 {
		return wm.Window{}, nil
	}
	if s.current == 0 {
		s.current = len(s.windows) - 1
	} else {
		s.current--
	}
	return s.focusCurrent(m)
}

// Resync points the state at the window matching an externally observed
// focused id, e.g. after the user alt-tabs. No focus request is issued; an
// unknown id leaves the state unchanged.
func (s *State) Resync(focused uint64) {
	for i, win := range s.windows {
		if win.ID == focused {
			s.current = i
			return
		}
	}
}

func (s *State) focusCurrent(m wm.Manager) (wm.Window, error) {
	win := s.windows[s.current]
	if err := m.Activate(win.ID); err != nil {
		return win, err
	}
	return win, nil
}
