// Package kwin drives KDE Plasma's window management through wmctrl and
// xdotool (via XWayland), with kdotool as the Wayland-native activation path
// when available. The transport is line-oriented text tables; parsing lives
// in parse.go.
package kwin

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/evemux/evemux/internal/wm"
)

// Manager implements the window-management contract over wmctrl/xdotool.
type Manager struct{}

var _ wm.Manager = (*Manager)(nil)

// NewManager verifies wmctrl is present. A missing tool is fatal at
// construction; nothing is retried later.
func NewManager() (*Manager, error) {
	if _, err := exec.Command("wmctrl", "-m").Output(); err != nil {
		return nil, fmt.Errorf("wmctrl not found (install the wmctrl package): %w", err)
	}
	return &Manager{}, nil
}

// hexID renders a canonical id in wmctrl's zero-padded hex form.
func hexID(id uint64) string {
	return fmt.Sprintf("0x%08x", id)
}

// ListWindows enumerates EVE windows from one `wmctrl -l -G` pass, which
// carries both titles and geometry. Lines that fail to parse are skipped.
func (m *Manager) ListWindows() ([]wm.Window, error) {
	out, err := exec.Command("wmctrl", "-l", "-G").Output()
	if err != nil {
		return nil, fmt.Errorf("wmctrl -l -G: %w", err)
	}

	monitors, err := m.Monitors()
	if err != nil {
		monitors = nil
	}

	var windows []wm.Window
	for _, row := range parseGeometryList(string(out)) {
		title, ok := wm.MatchTitle(row.Title)
		if !ok {
			continue
		}
		id := wm.ParseHexID(row.ID)
		if id == 0 {
			continue
		}

		monitor := ""
		if name, ok := wm.MonitorForWindow(monitors, row.Rect); ok {
			monitor = name
		}

		windows = append(windows, wm.Window{ID: id, Title: title, Monitor: monitor})
	}
	return windows, nil
}

// ActiveWindow asks xdotool, which prints the focused window as a decimal
// X11 id. Decimal and hex forms decode to the same canonical id.
func (m *Manager) ActiveWindow() (uint64, error) {
	out, err := exec.Command("xdotool", "getactivewindow").Output()
	if err != nil {
		return 0, fmt.Errorf("%w: xdotool getactivewindow: %v", wm.ErrNoActiveWindow, err)
	}
	id := wm.ParseDecimalID(strings.TrimSpace(string(out)))
	if id == 0 {
		return 0, wm.ErrNoActiveWindow
	}
	return id, nil
}

// Activate focuses a window, preferring kdotool (native KWin scripting) and
// falling back to wmctrl.
func (m *Manager) Activate(id uint64) error {
	if title, ok := m.titleByID(id); ok {
		err := exec.Command("kdotool", "search", "--name", title, "windowactivate").Run()
		if err == nil {
			return nil
		}
	}

	if out, err := exec.Command("wmctrl", "-i", "-a", hexID(id)).CombinedOutput(); err != nil {
		return fmt.Errorf("wmctrl activate %s: %v: %s", hexID(id), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// FindWindow looks up a window by exact raw title.
func (m *Manager) FindWindow(title string) (uint64, bool, error) {
	out, err := exec.Command("wmctrl", "-l").Output()
	if err != nil {
		return 0, false, fmt.Errorf("wmctrl -l: %w", err)
	}
	for _, row := range parseClientList(string(out)) {
		if row.Title != title {
			continue
		}
		if id := wm.ParseHexID(row.ID); id != 0 {
			return id, true, nil
		}
	}
	return 0, false, nil
}

// MoveResize repositions a window with `wmctrl -e`. A rejected request gets
// one corrective retry after stripping the fullscreen state.
func (m *Manager) MoveResize(id uint64, r wm.Rect) error {
	geometry := fmt.Sprintf("0,%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)

	err := m.moveResizeOnce(id, geometry)
	if err == nil {
		return nil
	}

	// The window may be fullscreen; exit that state and retry exactly once.
	exec.Command("wmctrl", "-i", "-r", hexID(id), "-b", "remove,fullscreen").Run()
	if retryErr := m.moveResizeOnce(id, geometry); retryErr != nil {
		return fmt.Errorf("wmctrl move %s: %w", hexID(id), err)
	}
	return nil
}

func (m *Manager) moveResizeOnce(id uint64, geometry string) error {
	out, err := exec.Command("wmctrl", "-i", "-r", hexID(id), "-e", geometry).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Minimize iconifies via xdotool.
func (m *Manager) Minimize(id uint64) error {
	if out, err := exec.Command("xdotool", "windowminimize", hexID(id)).CombinedOutput(); err != nil {
		return fmt.Errorf("xdotool minimize %s: %v: %s", hexID(id), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Restore un-minimizes by activating; wmctrl -a raises iconified windows.
func (m *Manager) Restore(id uint64) error {
	if out, err := exec.Command("wmctrl", "-i", "-a", hexID(id)).CombinedOutput(); err != nil {
		return fmt.Errorf("wmctrl restore %s: %v: %s", hexID(id), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Monitors parses `xrandr --query` output; xrandr works through XWayland.
func (m *Manager) Monitors() ([]wm.Monitor, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("xrandr --query: %w", err)
	}
	return parseXrandrQuery(string(out)), nil
}

func (m *Manager) titleByID(id uint64) (string, bool) {
	out, err := exec.Command("wmctrl", "-l").Output()
	if err != nil {
		return "", false
	}
	want := hexID(id)
	for _, row := range parseClientList(string(out)) {
		if row.ID == want {
			return row.Title, true
		}
	}
	return "", false
}
