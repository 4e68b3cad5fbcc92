package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evemux/evemux/internal/ipc"
)

func (s *Server) handleCycleFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleFocusInput) (*mcpsdk.CallToolResult, CycleFocusOutput, error) {
	var data *ipc.CycleData
	var err error
	switch args.Direction {
	case "", "forward", "next":
		data, err = s.client.CycleForward()
	case "backward", "prev", "previous":
		data, err = s.client.CycleBackward()
	default:
		return nil, CycleFocusOutput{}, fmt.Errorf("unknown direction %q (forward or backward)", args.Direction)
	}
	if err != nil {
		return nil, CycleFocusOutput{}, err
	}

	return nil, CycleFocusOutput{
		ID:    data.ID,
		Title: data.Title,
		Index: data.Index,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	data, err := s.client.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	return nil, ListWindowsOutput{Windows: windowEntries(data)}, nil
}

func (s *Server) handleStackWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ StackWindowsInput) (*mcpsdk.CallToolResult, StackWindowsOutput, error) {
	data, err := s.client.Stack()
	if err != nil {
		return nil, StackWindowsOutput{}, err
	}

	entries := windowEntries(data)
	return nil, StackWindowsOutput{
		Stacked: len(entries),
		Windows: entries,
	}, nil
}

func (s *Server) handleGetMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetMonitorsInput) (*mcpsdk.CallToolResult, GetMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, GetMonitorsOutput{}, err
	}

	monitors := make([]MonitorEntry, len(data.Monitors))
	for i, m := range data.Monitors {
		monitors[i] = MonitorEntry{
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	return nil, GetMonitorsOutput{Monitors: monitors}, nil
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}

	return nil, GetStatusOutput{
		Backend:       status.Backend,
		WindowCount:   status.WindowCount,
		CurrentTitle:  status.CurrentTitle,
		CurrentIndex:  status.CurrentIndex,
		UptimeSeconds: status.UptimeSeconds,
	}, nil
}

func windowEntries(data *ipc.WindowsData) []WindowEntry {
	entries := make([]WindowEntry, len(data.Windows))
	for i, w := range data.Windows {
		entries[i] = WindowEntry{
			ID:      w.ID,
			Title:   w.Title,
			Monitor: w.Monitor,
			Active:  w.Active,
		}
	}
	return entries
}
