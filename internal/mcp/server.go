// Package mcp exposes the daemon's window controls as MCP tools over stdio,
// so an agent can drive multi-client focus and stacking. Every tool is a
// thin veneer over the IPC client; the daemon stays the single owner of
// window state.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evemux/evemux/internal/ipc"
)

const (
	ServerName    = "evemux"
	ServerVersion = "0.1.0"
)

// Server is the MCP server bridging tool calls to the evemux daemon.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates a new MCP server backed by the daemon's IPC socket.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_focus",
		Description: "Move focus to the next or previous EVE client window. The window order follows characters.txt when present; the cycle re-syncs to the currently focused window before stepping, so external focus changes are respected.",
	}, s.handleCycleFocus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the EVE client windows the daemon currently tracks, including which one holds the cycle pointer.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "stack_windows",
		Description: "Apply the configured layout to all EVE client windows: the primary character goes to the primary monitor, everything else is centered or fullscreened in place.",
	}, s.handleStackWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_monitors",
		Description: "Query the current monitor topology (name and geometry per active output).",
	}, s.handleGetMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get daemon status: backend in use, tracked window count, current cycle position, uptime.",
	}, s.handleGetStatus)
}
