// Package session selects which window-management backend a process uses.
// Selection happens exactly once at startup; the rest of the program sees
// only the wm.Manager contract.
package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/evemux/evemux/internal/hypr"
	"github.com/evemux/evemux/internal/kwin"
	"github.com/evemux/evemux/internal/sway"
	"github.com/evemux/evemux/internal/wm"
	"github.com/evemux/evemux/internal/x11"
)

// Backend names one concrete adapter.
type Backend string

const (
	BackendX11  Backend = "x11"
	BackendKWin Backend = "kwin"
	BackendSway Backend = "sway"
	BackendHypr Backend = "hyprland"
)

// Parse validates a user-supplied backend name (e.g. a --backend flag).
func Parse(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x11", "x":
		return BackendX11, nil
	case "kwin", "kde", "plasma":
		return BackendKWin, nil
	case "sway":
		return BackendSway, nil
	case "hyprland", "hypr":
		return BackendHypr, nil
	default:
		return "", fmt.Errorf("unknown backend %q (x11, kwin, sway, hyprland)", name)
	}
}

// Detect inspects the session environment and picks the matching backend.
// Compositor-specific sockets are the strongest signal; a plain Wayland KDE
// session goes through the XWayland tooling; everything else is X11.
func Detect() Backend {
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return BackendHypr
	}
	if os.Getenv("SWAYSOCK") != "" {
		return BackendSway
	}
	if os.Getenv("XDG_SESSION_TYPE") == "wayland" &&
		strings.Contains(strings.ToUpper(os.Getenv("XDG_CURRENT_DESKTOP")), "KDE") {
		return BackendKWin
	}
	return BackendX11
}

// NewManager constructs the adapter for a backend. Construction verifies the
// transport exists and fails fast when it does not.
func NewManager(b Backend) (wm.Manager, error) {
	switch b {
	case BackendX11:
		return x11.NewManager()
	case BackendKWin:
		return kwin.NewManager()
	case BackendSway:
		return sway.NewManager()
	case BackendHypr:
		return hypr.NewManager()
	default:
		return nil, fmt.Errorf("unknown backend %q", b)
	}
}
