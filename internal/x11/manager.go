package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/evemux/evemux/internal/wm"
)

// Manager implements the window-management contract against a live X11
// connection.
type Manager struct {
	conn *Connection
}

var _ wm.Manager = (*Manager)(nil)

// NewManager opens a fresh X11 connection and wraps it in a Manager.
func NewManager() (*Manager, error) {
	conn, err := NewConnection()
	if err != nil {
		return nil, err
	}
	return &Manager{conn: conn}, nil
}

// Close disconnects from the X server.
func (m *Manager) Close() {
	m.conn.Close()
}

// ListWindows enumerates EVE client windows from _NET_CLIENT_LIST. Windows
// whose title or id cannot be read are skipped individually.
func (m *Manager) ListWindows() ([]wm.Window, error) {
	clients, err := ewmh.ClientListGet(m.conn.XUtil)
	if err != nil {
		return nil, err
	}

	// One topology snapshot for the whole enumeration pass.
	monitors, err := m.Monitors()
	if err != nil {
		monitors = nil
	}

	windows := make([]wm.Window, 0, len(clients))
	for _, windowID := range clients {
		if windowID == 0 {
			continue
		}
		title, ok := wm.MatchTitle(m.windowTitle(windowID))
		if !ok {
			continue
		}

		monitor := ""
		if rect, ok := m.windowRect(windowID); ok {
			if name, ok := wm.MonitorForWindow(monitors, rect); ok {
				monitor = name
			}
		}

		windows = append(windows, wm.Window{
			ID:      uint64(windowID),
			Title:   title,
			Monitor: monitor,
		})
	}

	return windows, nil
}

// ActiveWindow returns the focused window from _NET_ACTIVE_WINDOW.
func (m *Manager) ActiveWindow() (uint64, error) {
	active, err := ewmh.ActiveWindowGet(m.conn.XUtil)
	if err != nil {
		return 0, err
	}
	if active == 0 {
		return 0, wm.ErrNoActiveWindow
	}
	return uint64(active), nil
}

// Activate raises and focuses a window via a _NET_ACTIVE_WINDOW client
// message to the root window, per EWMH.
func (m *Manager) Activate(id uint64) error {
	atomReply, err := xproto.InternAtom(m.conn.XUtil.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return err
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	if err := xproto.SendEventChecked(
		m.conn.XUtil.Conn(),
		false,
		m.conn.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check(); err != nil {
		return err
	}

	return xproto.SetInputFocusChecked(
		m.conn.XUtil.Conn(),
		xproto.InputFocusParent,
		xproto.Window(id),
		xproto.TimeCurrentTime,
	).Check()
}

// FindWindow looks up a window by exact raw title across the client list.
func (m *Manager) FindWindow(title string) (uint64, bool, error) {
	clients, err := ewmh.ClientListGet(m.conn.XUtil)
	if err != nil {
		return 0, false, err
	}
	for _, windowID := range clients {
		if m.windowTitle(windowID) == title {
			return uint64(windowID), true, nil
		}
	}
	return 0, false, nil
}

// Minimize iconifies a window via WM_CHANGE_STATE.
func (m *Manager) Minimize(id uint64) error {
	reply, err := xproto.InternAtom(m.conn.XUtil.Conn(), false,
		uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		m.conn.XUtil.Conn(),
		false,
		m.conn.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Restore maps a window back from iconified state.
func (m *Manager) Restore(id uint64) error {
	return xproto.MapWindowChecked(m.conn.XUtil.Conn(), xproto.Window(id)).Check()
}
