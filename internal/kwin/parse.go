package kwin

import (
	"strconv"
	"strings"

	"github.com/evemux/evemux/internal/wm"
)

// clientRow is one line of `wmctrl -l`:
//
//	0x06e00008  0 hostname EVE - Bob
type clientRow struct {
	ID    string
	Title string
}

// geometryRow is one line of `wmctrl -l -G`:
//
//	0x06e00008  0 2560 0 1920 1040 hostname EVE - Bob
type geometryRow struct {
	ID    string
	Rect  wm.Rect
	Title string
}

func parseClientList(out string) []clientRow {
	var rows []clientRow
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		rows = append(rows, clientRow{
			ID:    parts[0],
			Title: strings.Join(parts[3:], " "),
		})
	}
	return rows
}

func parseGeometryList(out string) []geometryRow {
	var rows []geometryRow
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 8 {
			continue
		}
		x, errX := strconv.Atoi(parts[2])
		y, errY := strconv.Atoi(parts[3])
		w, errW := strconv.Atoi(parts[4])
		h, errH := strconv.Atoi(parts[5])
		if errX != nil || errY != nil || errW != nil || errH != nil {
			continue
		}
		rows = append(rows, geometryRow{
			ID:    parts[0],
			Rect:  wm.Rect{X: x, Y: y, Width: w, Height: h},
			Title: strings.Join(parts[7:], " "),
		})
	}
	return rows
}

// parseXrandrQuery extracts connected outputs from `xrandr --query`:
//
//	DP-1 connected primary 2560x1440+0+0 (normal ...) 597mm x 336mm
//
// Outputs without an active geometry token are skipped.
func parseXrandrQuery(out string) []wm.Monitor {
	var monitors []wm.Monitor
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := parts[0]

		for _, part := range parts {
			mon, ok := parseGeometryToken(part)
			if !ok {
				continue
			}
			mon.Name = name
			monitors = append(monitors, mon)
			break
		}
	}
	return monitors
}

// parseGeometryToken parses a WIDTHxHEIGHT+X+Y token like "2560x1440+0+0".
func parseGeometryToken(token string) (wm.Monitor, bool) {
	res, pos, ok := strings.Cut(token, "+")
	if !ok {
		return wm.Monitor{}, false
	}
	wStr, hStr, ok := strings.Cut(res, "x")
	if !ok {
		return wm.Monitor{}, false
	}
	xStr, yStr, ok := strings.Cut(pos, "+")
	if !ok {
		return wm.Monitor{}, false
	}

	w, errW := strconv.Atoi(wStr)
	h, errH := strconv.Atoi(hStr)
	x, errX := strconv.Atoi(xStr)
	y, errY := strconv.Atoi(yStr)
	if errW != nil || errH != nil || errX != nil || errY != nil {
		return wm.Monitor{}, false
	}

	return wm.Monitor{X: x, Y: y, Width: w, Height: h}, true
}
