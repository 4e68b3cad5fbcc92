// Package hypr drives the Hyprland compositor through hyprctl's JSON
// interface. Window ids are Hyprland's hexadecimal client addresses.
package hypr

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/evemux/evemux/internal/wm"
)

// Manager implements the window-management contract over hyprctl.
type Manager struct{}

var _ wm.Manager = (*Manager)(nil)

// NewManager verifies hyprctl is reachable. Fatal when it is not.
func NewManager() (*Manager, error) {
	if _, err := exec.Command("hyprctl", "version").Output(); err != nil {
		return nil, fmt.Errorf("hyprctl not found (are you running Hyprland?): %w", err)
	}
	return &Manager{}, nil
}

func hyprctl(args ...string) ([]byte, error) {
	out, err := exec.Command("hyprctl", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("hyprctl %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// dispatch runs a hyprctl dispatcher. Hyprland reports refusals such as
// "Window is fullscreen" on stdout with a zero exit code, so the reply text
// is returned for inspection.
func dispatch(args ...string) (string, error) {
	out, err := hyprctl(append([]string{"dispatch"}, args...)...)
	return string(out), err
}

// client is one entry of `hyprctl clients -j`. Monitor is the numeric
// monitor id (-1 when the window is not mapped to a monitor).
type client struct {
	Address string `json:"address"`
	Title   string `json:"title"`
	Monitor int    `json:"monitor"`
}

// hyprMonitor is one entry of `hyprctl monitors -j`. The id field is
// stable, so clients are matched to monitors by it rather than by list
// position.
type hyprMonitor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func parseClients(data []byte) ([]client, error) {
	var clients []client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("failed to parse hyprctl clients: %w", err)
	}
	return clients, nil
}

func parseMonitors(data []byte) ([]hyprMonitor, error) {
	var monitors []hyprMonitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse hyprctl monitors: %w", err)
	}
	return monitors, nil
}

// windowsFromClients filters EVE clients and resolves monitor names by the
// stable monitor id. An unmatched id leaves the monitor empty, which the
// layout engine treats as first-monitor fallback.
func windowsFromClients(clients []client, monitors []hyprMonitor) []wm.Window {
	names := make(map[int]string, len(monitors))
	for _, mon := range monitors {
		names[mon.ID] = mon.Name
	}

	var windows []wm.Window
	for _, c := range clients {
		title, ok := wm.MatchTitle(c.Title)
		if !ok {
			continue
		}
		id := wm.ParseHexID(c.Address)
		if id == 0 {
			continue
		}
		windows = append(windows, wm.Window{
			ID:      id,
			Title:   title,
			Monitor: names[c.Monitor],
		})
	}
	return windows
}

// ListWindows enumerates EVE clients.
func (m *Manager) ListWindows() ([]wm.Window, error) {
	data, err := hyprctl("clients", "-j")
	if err != nil {
		return nil, err
	}
	clients, err := parseClients(data)
	if err != nil {
		return nil, err
	}

	monitors, err := m.queryMonitors()
	if err != nil {
		monitors = nil
	}
	return windowsFromClients(clients, monitors), nil
}

// ActiveWindow returns the focused client's address.
func (m *Manager) ActiveWindow() (uint64, error) {
	data, err := hyprctl("activewindow", "-j")
	if err != nil {
		return 0, err
	}

	var active struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &active); err != nil {
		return 0, fmt.Errorf("failed to parse hyprctl activewindow: %w", err)
	}

	id := wm.ParseHexID(active.Address)
	if id == 0 {
		return 0, wm.ErrNoActiveWindow
	}
	return id, nil
}

// Activate focuses a window by address.
func (m *Manager) Activate(id uint64) error {
	out, err := dispatch("focuswindow", "address:"+wm.FormatHexID(id))
	if err != nil {
		return err
	}
	if reply := strings.TrimSpace(out); reply != "" && reply != "ok" {
		return fmt.Errorf("focuswindow %s: %s", wm.FormatHexID(id), reply)
	}
	return nil
}

// FindWindow looks up a client by exact raw title.
func (m *Manager) FindWindow(title string) (uint64, bool, error) {
	data, err := hyprctl("clients", "-j")
	if err != nil {
		return 0, false, err
	}
	clients, err := parseClients(data)
	if err != nil {
		return 0, false, err
	}
	for _, c := range clients {
		if c.Title != title {
			continue
		}
		if id := wm.ParseHexID(c.Address); id != 0 {
			return id, true, nil
		}
	}
	return 0, false, nil
}

// MoveResize floats the window and applies exact position and size.
// Hyprland refuses both dispatchers while the window is fullscreen; the
// documented recovery is to focus it, exit fullscreen, and retry once.
func (m *Manager) MoveResize(id uint64, r wm.Rect) error {
	address := "address:" + wm.FormatHexID(id)

	// setfloating (not togglefloating) so repeated stacking stays floating.
	dispatch("setfloating", address)

	out, err := dispatch("movewindowpixel", fmt.Sprintf("exact %d %d,%s", r.X, r.Y, address))
	if err != nil {
		return err
	}
	if isFullscreenRefusal(out) {
		dispatch("focuswindow", address)
		dispatch("fullscreen", "0")
		if out, err = dispatch("movewindowpixel", fmt.Sprintf("exact %d %d,%s", r.X, r.Y, address)); err != nil {
			return err
		}
		if isFullscreenRefusal(out) {
			return fmt.Errorf("move %s: window stuck in fullscreen", wm.FormatHexID(id))
		}
	}

	out, err = dispatch("resizewindowpixel", fmt.Sprintf("exact %d %d,%s", r.Width, r.Height, address))
	if err != nil {
		return err
	}
	if isFullscreenRefusal(out) {
		// Fullscreen was already cleared above; one retry.
		if out, err = dispatch("resizewindowpixel", fmt.Sprintf("exact %d %d,%s", r.Width, r.Height, address)); err != nil {
			return err
		}
		if isFullscreenRefusal(out) {
			return fmt.Errorf("resize %s: window stuck in fullscreen", wm.FormatHexID(id))
		}
	}
	return nil
}

func isFullscreenRefusal(reply string) bool {
	return strings.Contains(reply, "fullscreen")
}

// Minimize moves the window to the special workspace without following it.
func (m *Manager) Minimize(id uint64) error {
	_, err := dispatch("movetoworkspacesilent", "special,address:"+wm.FormatHexID(id))
	return err
}

// Restore brings the window back to the current workspace.
func (m *Manager) Restore(id uint64) error {
	_, err := dispatch("movetoworkspace", "e+0,address:"+wm.FormatHexID(id))
	return err
}

// Monitors queries the current output topology.
func (m *Manager) Monitors() ([]wm.Monitor, error) {
	monitors, err := m.queryMonitors()
	if err != nil {
		return nil, err
	}

	result := make([]wm.Monitor, 0, len(monitors))
	for _, mon := range monitors {
		result = append(result, wm.Monitor{
			Name:   mon.Name,
			X:      mon.X,
			Y:      mon.Y,
			Width:  mon.Width,
			Height: mon.Height,
		})
	}
	return result, nil
}

func (m *Manager) queryMonitors() ([]hyprMonitor, error) {
	data, err := hyprctl("monitors", "-j")
	if err != nil {
		return nil, err
	}
	return parseMonitors(data)
}
