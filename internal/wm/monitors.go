package wm

// Contains reports whether the point (x, y) lies inside the monitor's
// rectangle using half-open intervals, matching how compositors tile
// adjacent outputs without overlap.
func (m Monitor) Contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// MonitorAt returns the name of the monitor containing (x, y). When no
// rectangle contains the point but the topology is non-empty, the first
// monitor wins; an empty topology yields ok=false.
func MonitorAt(monitors []Monitor, x, y int) (string, bool) {
	for i := range monitors {
		if monitors[i].Contains(x, y) {
			return monitors[i].Name, true
		}
	}
	if len(monitors) > 0 {
		return monitors[0].Name, true
	}
	return "", false
}

// MonitorForWindow maps a window's bounding geometry to a monitor by its
// center point, so a window straddling a boundary is assigned to the monitor
// holding its majority.
func MonitorForWindow(monitors []Monitor, r Rect) (string, bool) {
	return MonitorAt(monitors, r.X+r.Width/2, r.Y+r.Height/2)
}

// FindMonitor returns the monitor with the given name, or nil.
func FindMonitor(monitors []Monitor, name string) *Monitor {
	for i := range monitors {
		if monitors[i].Name == name {
			return &monitors[i]
		}
	}
	return nil
}
