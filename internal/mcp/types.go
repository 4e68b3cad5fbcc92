package mcp

// CycleFocusInput is the input for the cycle_focus tool.
type CycleFocusInput struct {
	Direction string `json:"direction,omitempty" jsonschema:"Cycle direction: forward (default) or backward"`
}

// CycleFocusOutput is the output for the cycle_focus tool.
type CycleFocusOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Index int    `json:"index"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowEntry describes one tracked EVE client window.
type WindowEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Monitor string `json:"monitor,omitempty"`
	Active  bool   `json:"active,omitempty"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowEntry `json:"windows"`
}

// StackWindowsInput is the input for the stack_windows tool.
type StackWindowsInput struct{}

// StackWindowsOutput is the output for the stack_windows tool.
type StackWindowsOutput struct {
	Stacked int           `json:"stacked"`
	Windows []WindowEntry `json:"windows"`
}

// GetMonitorsInput is the input for the get_monitors tool.
type GetMonitorsInput struct{}

// MonitorEntry describes one active monitor.
type MonitorEntry struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GetMonitorsOutput is the output for the get_monitors tool.
type GetMonitorsOutput struct {
	Monitors []MonitorEntry `json:"monitors"`
}

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	Backend       string `json:"backend"`
	WindowCount   int    `json:"window_count"`
	CurrentTitle  string `json:"current_title,omitempty"`
	CurrentIndex  int    `json:"current_index"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
