package kwin

import (
	"testing"

	"github.com/evemux/evemux/internal/wm"
)

func TestParseClientList(t *testing.T) {
	out := `0x06e00008  0 citadel EVE - Bob
0x06e00009  0 citadel EVE - Alice Longname
0x04000003 -1 citadel Plasma
garbage line
`
	rows := parseClientList(out)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].ID != "0x06e00008" || rows[0].Title != "EVE - Bob" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Title != "EVE - Alice Longname" {
		t.Errorf("multi-word title = %q, want %q", rows[1].Title, "EVE - Alice Longname")
	}
}

func TestParseGeometryList(t *testing.T) {
	out := `0x06e00008  0 2560 0    1920 1040 citadel EVE - Bob
0x06e00009  0 bad  0    1920 1040 citadel EVE - Alice
0x04000003 -1 0    0    2560 1440 citadel Desktop
`
	rows := parseGeometryList(out)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (malformed geometry skipped)", len(rows))
	}
	want := wm.Rect{X: 2560, Y: 0, Width: 1920, Height: 1040}
	if rows[0].Rect != want || rows[0].Title != "EVE - Bob" {
		t.Errorf("row 0 = %+v, want rect %+v title %q", rows[0], want, "EVE - Bob")
	}
}

func TestParseXrandrQuery(t *testing.T) {
	out := `Screen 0: minimum 320 x 200, current 4480 x 1440, maximum 16384 x 16384
DP-1 connected primary 2560x1440+0+0 (normal left inverted right x axis y axis) 597mm x 336mm
DP-2 connected 1920x1080+2560+0 (normal left inverted right x axis y axis) 527mm x 296mm
HDMI-1 disconnected (normal left inverted right x axis y axis)
DP-3 connected (normal left inverted right x axis y axis)
`
	monitors := parseXrandrQuery(out)
	if len(monitors) != 2 {
		t.Fatalf("got %d monitors %v, want 2", len(monitors), monitors)
	}
	if monitors[0] != (wm.Monitor{Name: "DP-1", X: 0, Y: 0, Width: 2560, Height: 1440}) {
		t.Errorf("monitor 0 = %+v", monitors[0])
	}
	if monitors[1] != (wm.Monitor{Name: "DP-2", X: 2560, Y: 0, Width: 1920, Height: 1080}) {
		t.Errorf("monitor 1 = %+v", monitors[1])
	}
}

func TestHexID_PadsToEightDigits(t *testing.T) {
	if got := hexID(0x6e00008); got != "0x06e00008" {
		t.Fatalf("hexID = %q, want 0x06e00008", got)
	}
	// Round trip through the codec.
	if id := wm.ParseHexID(hexID(0x6e00008)); id != 0x6e00008 {
		t.Fatalf("round trip = %#x, want 0x6e00008", id)
	}
}
