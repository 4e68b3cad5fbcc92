package hypr

import "testing"

func TestWindowsFromClients(t *testing.T) {
	clientsJSON := []byte(`[
		{"address":"0x55ade765da10","title":"EVE - Bob","monitor":0},
		{"address":"0x55ade765db20","title":"EVE - Alice","monitor":1},
		{"address":"0x55ade765dc30","title":"EVE - Bob (Launcher)","monitor":0},
		{"address":"0x55ade765dd40","title":"firefox","monitor":0},
		{"address":"not-an-address","title":"EVE - Carol","monitor":0},
		{"address":"0x55ade765de50","title":"EVE - Dana","monitor":-1}
	]`)
	monitorsJSON := []byte(`[
		{"id":1,"name":"DP-2","x":2560,"y":0,"width":1920,"height":1080},
		{"id":0,"name":"DP-1","x":0,"y":0,"width":2560,"height":1440}
	]`)

	clients, err := parseClients(clientsJSON)
	if err != nil {
		t.Fatalf("parseClients error: %v", err)
	}
	monitors, err := parseMonitors(monitorsJSON)
	if err != nil {
		t.Fatalf("parseMonitors error: %v", err)
	}

	windows := windowsFromClients(clients, monitors)
	if len(windows) != 3 {
		t.Fatalf("got %d windows %v, want 3 (launcher, non-EVE, bad address dropped)", len(windows), windows)
	}

	bob := windows[0]
	if bob.ID != 0x55ade765da10 || bob.Title != "Bob" {
		t.Errorf("Bob = %+v", bob)
	}
	// Monitors are matched by stable id, not list position: monitor id 0 is
	// the *second* entry of the monitors list.
	if bob.Monitor != "DP-1" {
		t.Errorf("Bob.Monitor = %q, want DP-1 (matched by id, not ordinal)", bob.Monitor)
	}
	if windows[1].Monitor != "DP-2" {
		t.Errorf("Alice.Monitor = %q, want DP-2", windows[1].Monitor)
	}

	// Unmapped monitor id degrades to "unknown", not an error.
	if windows[2].Title != "Dana" || windows[2].Monitor != "" {
		t.Errorf("Dana = %+v, want empty monitor", windows[2])
	}
}

func TestParseClients_Garbage(t *testing.T) {
	if _, err := parseClients([]byte("Window is fullscreen")); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestIsFullscreenRefusal(t *testing.T) {
	if !isFullscreenRefusal("Window is fullscreen") {
		t.Fatal("refusal reply not recognized")
	}
	if isFullscreenRefusal("ok") {
		t.Fatal("ok reply misread as refusal")
	}
}
