package config

import (
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
)

// DetectDisplaySize probes the session for the primary display resolution.
// It is used only when generating a fresh config; the running core always
// takes its topology from the active backend. Probes xrandr, then swaymsg,
// then hyprctl, falling back to 1920x1080.
func DetectDisplaySize() (width, height int) {
	if w, h, ok := detectViaXrandr(); ok {
		return w, h
	}
	if w, h, ok := detectViaSwaymsg(); ok {
		return w, h
	}
	if w, h, ok := detectViaHyprctl(); ok {
		return w, h
	}
	return 1920, 1080
}

func detectViaXrandr() (int, int, bool) {
	out, err := exec.Command("xrandr", "--current").Output()
	if err != nil {
		return 0, 0, false
	}
	return parseXrandrCurrent(string(out))
}

// parseXrandrCurrent finds the active mode line, e.g. "7680x2160 60.00*+".
func parseXrandrCurrent(out string) (int, int, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		wStr, hStr, ok := strings.Cut(fields[0], "x")
		if !ok {
			continue
		}
		w, errW := strconv.Atoi(wStr)
		h, errH := strconv.Atoi(hStr)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return w, h, true
		}
	}
	return 0, 0, false
}

func detectViaSwaymsg() (int, int, bool) {
	out, err := exec.Command("swaymsg", "-t", "get_outputs").Output()
	if err != nil {
		return 0, 0, false
	}
	return parseSwayOutputs(out)
}

func parseSwayOutputs(data []byte) (int, int, bool) {
	var outputs []struct {
		Active  bool `json:"active"`
		Focused bool `json:"focused"`
		Rect    struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"rect"`
	}
	if err := json.Unmarshal(data, &outputs); err != nil {
		return 0, 0, false
	}

	// Prefer the focused output, then any active one.
	for _, o := range outputs {
		if o.Focused && o.Rect.Width > 0 && o.Rect.Height > 0 {
			return o.Rect.Width, o.Rect.Height, true
		}
	}
	for _, o := range outputs {
		if o.Active && o.Rect.Width > 0 && o.Rect.Height > 0 {
			return o.Rect.Width, o.Rect.Height, true
		}
	}
	return 0, 0, false
}

func detectViaHyprctl() (int, int, bool) {
	out, err := exec.Command("hyprctl", "monitors", "-j").Output()
	if err != nil {
		return 0, 0, false
	}
	return parseHyprMonitors(out)
}

func parseHyprMonitors(data []byte) (int, int, bool) {
	var monitors []struct {
		Width   int  `json:"width"`
		Height  int  `json:"height"`
		Focused bool `json:"focused"`
	}
	if err := json.Unmarshal(data, &monitors); err != nil {
		return 0, 0, false
	}

	for _, m := range monitors {
		if m.Focused && m.Width > 0 && m.Height > 0 {
			return m.Width, m.Height, true
		}
	}
	for _, m := range monitors {
		if m.Width > 0 && m.Height > 0 {
			return m.Width, m.Height, true
		}
	}
	return 0, 0, false
}
