package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/evemux/evemux/internal/config"
	"github.com/evemux/evemux/internal/cycle"
	"github.com/evemux/evemux/internal/layout"
	"github.com/evemux/evemux/internal/runtimepath"
	"github.com/evemux/evemux/internal/wm"
)

// Server handles IPC requests from clients. It owns the cycle state; every
// command that touches it goes through stateMu, so a burst of hotkey presses
// serializes instead of racing.
type Server struct {
	socketPath   string
	listener     net.Listener
	cfg          *config.Config
	cfgMu        sync.RWMutex
	mgr          wm.Manager
	backendName  string
	state        *cycle.State
	stateMu      sync.Mutex
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(cfg *config.Config, mgr wm.Manager, backendName string) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath:  socketPath,
		cfg:         cfg,
		mgr:         mgr,
		backendName: backendName,
		state:       cycle.New(),
		startTime:   time.Now(),
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	slog.Info("IPC server listening", "socket", s.socketPath)

	go s.acceptLoop()

	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			slog.Error("IPC accept error", "error", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// One JSON request per line
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		slog.Error("IPC read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		slog.Error("failed to marshal IPC response", "error", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		slog.Error("failed to send IPC response", "error", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandCycleForward:
		return s.handleCycle(false)
	case CommandCycleBackward:
		return s.handleCycle(true)
	case CommandSync:
		return s.handleSync()
	case CommandStack:
		return s.handleStack()
	case CommandListWindows:
		return s.handleListWindows()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// refreshState re-enumerates the EVE windows, orders them by characters.txt,
// and re-aims the cycle pointer at whatever the compositor says is focused.
// Caller holds stateMu.
func (s *Server) refreshState() error {
	windows, err := s.mgr.ListWindows()
	if err != nil {
		return fmt.Errorf("failed to list windows: %w", err)
	}

	rank := config.OrderIndex(config.LoadCharacters())
	sort.SliceStable(windows, func(i, j int) bool {
		ri, rj := rank(windows[i].Title), rank(windows[j].Title)
		if ri != rj {
			return ri < rj
		}
		return windows[i].Title < windows[j].Title
	})

	s.state.Update(windows)

	focused, err := s.mgr.ActiveWindow()
	if err != nil {
		if errors.Is(err, wm.ErrNoActiveWindow) {
			return nil
		}
		return fmt.Errorf("failed to query focused window: %w", err)
	}
	s.state.Resync(focused)
	return nil
}

func (s *Server) handleCycle(backward bool) *Response {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if err := s.refreshState(); err != nil {
		return NewErrorResponse(err.Error())
	}

	var win wm.Window
	var err error
	if backward {
		win, err = s.state.Backward(s.mgr)
	} else {
		win, err = s.state.Forward(s.mgr)
	}
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("failed to focus %s: %v", win.Title, err))
	}

	s.cfgMu.RLock()
	minimize := s.cfg.MinimizeInactive
	s.cfgMu.RUnlock()
	if minimize && win.ID != 0 {
		// The selected window may itself be minimized from an earlier step;
		// focus alone does not bring it back on every backend.
		if err := s.mgr.Restore(win.ID); err != nil {
			slog.Warn("failed to restore window", "title", win.Title, "error", err)
		}
		for _, other := range s.state.Windows() {
			if other.ID == win.ID {
				continue
			}
			if err := s.mgr.Minimize(other.ID); err != nil {
				slog.Warn("failed to minimize window", "title", other.Title, "error", err)
			}
		}
	}

	if win.ID == 0 {
		// Empty set: the step was a no-op, report no window at all.
		resp, _ := NewOKResponse(CycleData{})
		return resp
	}

	resp, _ := NewOKResponse(CycleData{
		ID:    wm.FormatHexID(win.ID),
		Title: win.Title,
		Index: s.state.Index(),
	})
	return resp
}

func (s *Server) handleSync() *Response {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if err := s.refreshState(); err != nil {
		return NewErrorResponse(err.Error())
	}

	resp, _ := NewOKResponse(s.windowsData())
	return resp
}

func (s *Server) handleStack() *Response {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.cfgMu.RLock()
	cfg := s.cfg
	s.cfgMu.RUnlock()

	windows, err := layout.Stack(s.mgr, cfg)
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("failed to stack windows: %v", err))
	}
	s.state.Update(windows)

	slog.Info("stacked windows", "count", len(windows))

	resp, _ := NewOKResponse(s.windowsData())
	return resp
}

func (s *Server) handleListWindows() *Response {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if err := s.refreshState(); err != nil {
		return NewErrorResponse(err.Error())
	}

	resp, _ := NewOKResponse(s.windowsData())
	return resp
}

// windowsData snapshots the tracked windows. Caller holds stateMu.
func (s *Server) windowsData() WindowsData {
	windows := s.state.Windows()
	infos := make([]WindowInfo, len(windows))
	current, ok := s.state.Current()
	for i, win := range windows {
		infos[i] = WindowInfo{
			ID:      wm.FormatHexID(win.ID),
			Title:   win.Title,
			Monitor: win.Monitor,
			Active:  ok && win.ID == current.ID,
		}
	}
	return WindowsData{Windows: infos}
}

func (s *Server) handleGetMonitors() *Response {
	monitors, err := s.mgr.Monitors()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get monitors: %v", err))
	}

	monitorInfos := make([]MonitorInfo, len(monitors))
	for i, m := range monitors {
		monitorInfos[i] = MonitorInfo{
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}

	resp, _ := NewOKResponse(MonitorsData{Monitors: monitorInfos})
	return resp
}

func (s *Server) handleGetStatus() *Response {
	s.stateMu.Lock()
	current, _ := s.state.Current()
	status := StatusData{
		Backend:       s.backendName,
		WindowCount:   len(s.state.Windows()),
		CurrentTitle:  current.Title,
		CurrentIndex:  s.state.Index(),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		DaemonRunning: true,
	}
	s.stateMu.Unlock()

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleReload() *Response {
	slog.Info("IPC: received RELOAD command")

	newCfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	s.cfgMu.Lock()
	s.cfg = newCfg
	s.cfgMu.Unlock()

	slog.Info("config reloaded")

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
