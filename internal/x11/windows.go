package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/evemux/evemux/internal/wm"
)

// MoveResize moves and resizes a window in one logical call. Maximized state
// is cleared first or the WM will ignore the new geometry.
func (m *Manager) MoveResize(id uint64, r wm.Rect) error {
	windowID := xproto.Window(id)

	// Best effort; some windows do not expose _NET_WM_STATE.
	m.unmaximize(windowID)

	// EWMH MoveResize has the best WM compatibility; fall back to a checked
	// direct configure when the WM does not support it, so the caller still
	// learns about failure.
	if err := ewmh.MoveresizeWindow(m.conn.XUtil, windowID, r.X, r.Y, r.Width, r.Height); err != nil {
		return xproto.ConfigureWindowChecked(
			m.conn.XUtil.Conn(),
			windowID,
			xproto.ConfigWindowX|xproto.ConfigWindowY|
				xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height)},
		).Check()
	}
	return nil
}

func (m *Manager) unmaximize(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(m.conn.XUtil, windowID)
	if err != nil {
		return
	}
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_FULLSCREEN":
			ewmh.WmStateReq(m.conn.XUtil, windowID, 0, state)
		}
	}
}

// windowTitle reads _NET_WM_NAME with a WM_NAME fallback. Returns "" when
// neither property is readable; callers treat that as a non-matching window.
func (m *Manager) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(m.conn.XUtil, windowID)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(m.conn.XUtil, windowID)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}

	return ""
}

// windowRect returns a window's bounding geometry in root coordinates.
func (m *Manager) windowRect(windowID xproto.Window) (wm.Rect, bool) {
	geom, err := xproto.GetGeometry(m.conn.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return wm.Rect{}, false
	}

	translate, err := xproto.TranslateCoordinates(
		m.conn.XUtil.Conn(),
		windowID,
		m.conn.Root,
		0, 0,
	).Reply()
	if err != nil {
		return wm.Rect{}, false
	}

	return wm.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, true
}
