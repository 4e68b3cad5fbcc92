// Package layout computes per-window placement rectangles for EVE client
// stacking. ComputePlacements is a pure function over the canonical data
// model; Apply issues the backend calls separately.
package layout

import (
	"github.com/evemux/evemux/internal/config"
	"github.com/evemux/evemux/internal/wm"
)

// ComputePlacements returns a target rectangle per window id. The primary
// instance (exact title match against cfg.PrimaryCharacter) is placed on
// cfg.PrimaryMonitor; every other window stays on the monitor currently
// hosting it. Unknown or unset monitor names fall back to the first monitor
// in the topology, and an empty topology falls back to the flat display
// dimensions from the config.
func ComputePlacements(windows []wm.Window, monitors []wm.Monitor, cfg *config.Config) map[uint64]wm.Rect {
	placements := make(map[uint64]wm.Rect, len(windows))
	for _, win := range windows {
		placements[win.ID] = placeWindow(win, monitors, cfg)
	}
	return placements
}

func placeWindow(win wm.Window, monitors []wm.Monitor, cfg *config.Config) wm.Rect {
	isPrimary := cfg.PrimaryCharacter != "" && win.Title == cfg.PrimaryCharacter

	var mon *wm.Monitor
	if isPrimary {
		mon = wm.FindMonitor(monitors, cfg.PrimaryMonitor)
	} else if win.Monitor != "" {
		mon = wm.FindMonitor(monitors, win.Monitor)
	}
	if mon == nil && len(monitors) > 0 {
		mon = &monitors[0]
	}

	if mon == nil {
		// No topology at all: center within the configured display.
		return wm.Rect{
			X:      (cfg.DisplayWidth - cfg.EveWidth) / 2,
			Y:      0,
			Width:  cfg.EveWidth,
			Height: clampHeight(cfg.DisplayHeight, cfg.PanelHeight),
		}
	}

	if cfg.FullscreenStack {
		return wm.Rect{
			X:      mon.X,
			Y:      mon.Y,
			Width:  mon.Width,
			Height: clampHeight(mon.Height, cfg.PanelHeight),
		}
	}

	width := cfg.EveWidth
	if width > mon.Width {
		width = mon.Width
	}
	return wm.Rect{
		X:      mon.X + (mon.Width-width)/2,
		Y:      mon.Y,
		Width:  width,
		Height: clampHeight(mon.Height, cfg.PanelHeight),
	}
}

func clampHeight(monitorHeight, panelHeight int) int {
	h := monitorHeight - panelHeight
	if h < 0 {
		return 0
	}
	return h
}

// Apply issues one MoveResize per window, in enumeration order. The first
// backend failure aborts the pass; windows already moved stay moved.
func Apply(m wm.Manager, windows []wm.Window, placements map[uint64]wm.Rect) error {
	for _, win := range windows {
		rect, ok := placements[win.ID]
		if !ok {
			continue
		}
		if err := m.MoveResize(win.ID, rect); err != nil {
			return err
		}
	}
	return nil
}

// Stack is the one-call convenience used by the daemon: enumerate, query the
// topology, compute, apply.
func Stack(m wm.Manager, cfg *config.Config) ([]wm.Window, error) {
	windows, err := m.ListWindows()
	if err != nil {
		return nil, err
	}
	monitors, err := m.Monitors()
	if err != nil {
		return nil, err
	}
	placements := ComputePlacements(windows, monitors, cfg)
	if err := Apply(m, windows, placements); err != nil {
		return nil, err
	}
	return windows, nil
}
