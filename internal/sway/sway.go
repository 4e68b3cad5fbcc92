// Package sway drives the Sway compositor through swaymsg. Enumeration
// walks the nested get_tree JSON; window ids are Sway's decimal container
// ids.
package sway

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/evemux/evemux/internal/wm"
)

// Manager implements the window-management contract over swaymsg.
type Manager struct{}

var _ wm.Manager = (*Manager)(nil)

// NewManager verifies swaymsg is reachable. Fatal when it is not; this
// backend only makes sense inside a Sway session.
func NewManager() (*Manager, error) {
	if _, err := exec.Command("swaymsg", "--version").Output(); err != nil {
		return nil, fmt.Errorf("swaymsg not found (are you running Sway?): %w", err)
	}
	return &Manager{}, nil
}

func swaymsg(args ...string) ([]byte, error) {
	out, err := exec.Command("swaymsg", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("swaymsg %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("swaymsg %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

func (m *Manager) tree() (treeNode, error) {
	out, err := swaymsg("-t", "get_tree")
	if err != nil {
		return treeNode{}, err
	}
	var root treeNode
	if err := json.Unmarshal(out, &root); err != nil {
		return treeNode{}, fmt.Errorf("failed to parse sway tree: %w", err)
	}
	return root, nil
}

// ListWindows enumerates EVE windows from the container tree. Each leaf
// inherits the output name of its enclosing output node.
func (m *Manager) ListWindows() ([]wm.Window, error) {
	root, err := m.tree()
	if err != nil {
		return nil, err
	}
	return windowsFromTree(root), nil
}

func windowsFromTree(root treeNode) []wm.Window {
	var windows []wm.Window
	for _, l := range collectLeaves(root, "", nil) {
		title, ok := wm.MatchTitle(l.node.Name)
		if !ok {
			continue
		}
		if l.node.ID == 0 {
			continue
		}
		windows = append(windows, wm.Window{
			ID:      l.node.ID,
			Title:   title,
			Monitor: l.output,
		})
	}
	return windows
}

// ActiveWindow returns the focused container, or ErrNoActiveWindow when the
// tree has no focused application node.
func (m *Manager) ActiveWindow() (uint64, error) {
	root, err := m.tree()
	if err != nil {
		return 0, err
	}
	for _, l := range collectLeaves(root, "", nil) {
		if l.node.Focused && l.node.ID != 0 {
			return l.node.ID, nil
		}
	}
	return 0, wm.ErrNoActiveWindow
}

// Activate focuses a container by id.
func (m *Manager) Activate(id uint64) error {
	_, err := swaymsg(fmt.Sprintf("[con_id=%s] focus", wm.FormatDecimalID(id)))
	return err
}

// FindWindow looks up a container by exact raw title.
func (m *Manager) FindWindow(title string) (uint64, bool, error) {
	root, err := m.tree()
	if err != nil {
		return 0, false, err
	}
	for _, l := range collectLeaves(root, "", nil) {
		if l.node.Name == title && l.node.ID != 0 {
			return l.node.ID, true, nil
		}
	}
	return 0, false, nil
}

// MoveResize floats the container and applies position and size. Sway only
// honors explicit geometry for floating windows, so the three commands
// together form the one logical operation.
func (m *Manager) MoveResize(id uint64, r wm.Rect) error {
	con := wm.FormatDecimalID(id)
	if _, err := swaymsg(fmt.Sprintf("[con_id=%s] floating enable", con)); err != nil {
		return err
	}
	if _, err := swaymsg(fmt.Sprintf("[con_id=%s] move position %d %d", con, r.X, r.Y)); err != nil {
		// Fullscreen containers reject moves; drop fullscreen and retry once.
		if _, retryErr := swaymsg(fmt.Sprintf("[con_id=%s] fullscreen disable", con)); retryErr == nil {
			if _, retryErr = swaymsg(fmt.Sprintf("[con_id=%s] move position %d %d", con, r.X, r.Y)); retryErr != nil {
				return err
			}
		} else {
			return err
		}
	}
	if _, err := swaymsg(fmt.Sprintf("[con_id=%s] resize set %d %d", con, r.Width, r.Height)); err != nil {
		return err
	}
	return nil
}

// Minimize moves the container to the scratchpad, Sway's "hidden but
// recoverable" place.
func (m *Manager) Minimize(id uint64) error {
	_, err := swaymsg(fmt.Sprintf("[con_id=%s] move scratchpad", wm.FormatDecimalID(id)))
	return err
}

// Restore shows the container from the scratchpad.
func (m *Manager) Restore(id uint64) error {
	_, err := swaymsg(fmt.Sprintf("[con_id=%s] scratchpad show", wm.FormatDecimalID(id)))
	return err
}

// Monitors queries get_outputs and keeps active outputs.
func (m *Manager) Monitors() ([]wm.Monitor, error) {
	out, err := swaymsg("-t", "get_outputs")
	if err != nil {
		return nil, err
	}
	return parseOutputs(out)
}

func parseOutputs(data []byte) ([]wm.Monitor, error) {
	var outputs []struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
		Rect   struct {
			X      int `json:"x"`
			Y      int `json:"y"`
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"rect"`
	}
	if err := json.Unmarshal(data, &outputs); err != nil {
		return nil, fmt.Errorf("failed to parse sway outputs: %w", err)
	}

	var monitors []wm.Monitor
	for _, o := range outputs {
		if !o.Active || o.Name == "" {
			continue
		}
		monitors = append(monitors, wm.Monitor{
			Name:   o.Name,
			X:      o.Rect.X,
			Y:      o.Rect.Y,
			Width:  o.Rect.Width,
			Height: o.Rect.Height,
		})
	}
	return monitors, nil
}
