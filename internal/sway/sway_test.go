package sway

import (
	"encoding/json"
	"testing"
)

// fleetTree mirrors the shape swaymsg -t get_tree returns: root -> outputs
// -> workspaces -> containers, with one floating EVE window and a launcher
// that must be filtered out.
const fleetTree = `{
  "id": 1, "name": "root", "type": "root",
  "nodes": [
    {
      "id": 10, "name": "DP-1", "type": "output",
      "nodes": [
        {
          "id": 20, "name": "1", "type": "workspace",
          "nodes": [
            {"id": 30, "name": "EVE - Bob", "type": "con", "app_id": null,
             "window_properties": {"class": "steam_app_8500"}, "focused": true,
             "nodes": [], "floating_nodes": []},
            {"id": 31, "name": "EVE - Bob (Launcher)", "type": "con",
             "window_properties": {"class": "evelauncher"},
             "nodes": [], "floating_nodes": []},
            {"id": 32, "name": "split wrapper", "type": "con", "app_id": null,
             "window_properties": null,
             "nodes": [
               {"id": 33, "name": "EVE - Carol", "type": "con", "app_id": null,
                "window_properties": {"class": "steam_app_8500"},
                "nodes": [], "floating_nodes": []}
             ],
             "floating_nodes": []}
          ],
          "floating_nodes": [
            {"id": 34, "name": "EVE - Alice", "type": "floating_con",
             "app_id": "org.eve.client", "nodes": [], "floating_nodes": []}
          ]
        }
      ],
      "floating_nodes": []
    },
    {
      "id": 11, "name": "DP-2", "type": "output",
      "nodes": [
        {
          "id": 21, "name": "2", "type": "workspace",
          "nodes": [
            {"id": 40, "name": "EVE - Dana", "type": "con", "app_id": null,
             "window_properties": {"class": "steam_app_8500"},
             "nodes": [], "floating_nodes": []},
            {"id": 41, "name": "firefox", "type": "con", "app_id": "firefox",
             "nodes": [], "floating_nodes": []}
          ],
          "floating_nodes": []
        }
      ],
      "floating_nodes": []
    }
  ],
  "floating_nodes": []
}`

func parseTree(t *testing.T) treeNode {
	t.Helper()
	var root treeNode
	if err := json.Unmarshal([]byte(fleetTree), &root); err != nil {
		t.Fatalf("failed to parse test tree: %v", err)
	}
	return root
}

func TestWindowsFromTree(t *testing.T) {
	windows := windowsFromTree(parseTree(t))

	if len(windows) != 4 {
		t.Fatalf("got %d windows %v, want 4", len(windows), windows)
	}

	byID := make(map[uint64]int)
	for i, w := range windows {
		byID[w.ID] = i
	}

	bob := windows[byID[30]]
	if bob.Title != "Bob" || bob.Monitor != "DP-1" {
		t.Errorf("Bob = %+v, want title Bob on DP-1", bob)
	}

	// Floating windows are walked too.
	alice := windows[byID[34]]
	if alice.Title != "Alice" || alice.Monitor != "DP-1" {
		t.Errorf("Alice = %+v, want title Alice on DP-1", alice)
	}

	// Nested container windows inherit the top-level output name.
	carol := windows[byID[33]]
	if carol.Title != "Carol" || carol.Monitor != "DP-1" {
		t.Errorf("Carol = %+v, want title Carol on DP-1", carol)
	}

	dana := windows[byID[40]]
	if dana.Monitor != "DP-2" {
		t.Errorf("Dana = %+v, want monitor DP-2", dana)
	}

	// The launcher (31) and firefox (41) must be excluded.
	if _, ok := byID[31]; ok {
		t.Error("launcher window leaked through the filter")
	}
	if _, ok := byID[41]; ok {
		t.Error("non-EVE window leaked through the filter")
	}
}

func TestCollectLeaves_SkipsSplitWrappers(t *testing.T) {
	leaves := collectLeaves(parseTree(t), "", nil)
	for _, l := range leaves {
		if l.node.ID == 32 {
			t.Fatal("wrapper container with null app_id and null window_properties treated as window")
		}
	}
}

func TestCollectLeaves_FocusedWindow(t *testing.T) {
	var focused uint64
	for _, l := range collectLeaves(parseTree(t), "", nil) {
		if l.node.Focused {
			focused = l.node.ID
		}
	}
	if focused != 30 {
		t.Fatalf("focused id = %d, want 30", focused)
	}
}

func TestParseOutputs(t *testing.T) {
	data := []byte(`[
		{"name":"DP-1","active":true,"rect":{"x":0,"y":0,"width":2560,"height":1440}},
		{"name":"DP-2","active":true,"rect":{"x":2560,"y":0,"width":1920,"height":1080}},
		{"name":"HDMI-A-1","active":false,"rect":{"x":0,"y":0,"width":0,"height":0}}
	]`)
	monitors, err := parseOutputs(data)
	if err != nil {
		t.Fatalf("parseOutputs error: %v", err)
	}
	if len(monitors) != 2 {
		t.Fatalf("got %d monitors, want 2 (inactive skipped)", len(monitors))
	}
	if monitors[1].Name != "DP-2" || monitors[1].X != 2560 {
		t.Errorf("monitor 1 = %+v", monitors[1])
	}
}

func TestParseOutputs_Garbage(t *testing.T) {
	if _, err := parseOutputs([]byte("{")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
