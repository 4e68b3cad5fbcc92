package session

import "testing"

func clearSessionEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	t.Setenv("SWAYSOCK", "")
	t.Setenv("XDG_SESSION_TYPE", "")
	t.Setenv("XDG_CURRENT_DESKTOP", "")
}

func TestDetect_Hyprland(t *testing.T) {
	clearSessionEnv(t)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")
	t.Setenv("SWAYSOCK", "/run/user/1000/sway.sock") // hyprland wins
	if got := Detect(); got != BackendHypr {
		t.Fatalf("Detect() = %q, want %q", got, BackendHypr)
	}
}

func TestDetect_Sway(t *testing.T) {
	clearSessionEnv(t)
	t.Setenv("SWAYSOCK", "/run/user/1000/sway.sock")
	if got := Detect(); got != BackendSway {
		t.Fatalf("Detect() = %q, want %q", got, BackendSway)
	}
}

func TestDetect_KDEWayland(t *testing.T) {
	clearSessionEnv(t)
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("XDG_CURRENT_DESKTOP", "KDE")
	if got := Detect(); got != BackendKWin {
		t.Fatalf("Detect() = %q, want %q", got, BackendKWin)
	}
}

func TestDetect_DefaultsToX11(t *testing.T) {
	clearSessionEnv(t)
	t.Setenv("XDG_SESSION_TYPE", "x11")
	if got := Detect(); got != BackendX11 {
		t.Fatalf("Detect() = %q, want %q", got, BackendX11)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Backend{
		"x11":      BackendX11,
		"KDE":      BackendKWin,
		"sway":     BackendSway,
		"hypr":     BackendHypr,
		"Hyprland": BackendHypr,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := Parse("gnome"); err == nil {
		t.Error("Parse(\"gnome\") succeeded, want error")
	}
}
