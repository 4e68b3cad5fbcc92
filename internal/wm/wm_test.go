package wm

import "testing"

func TestMatchTitle_StripsPrefix(t *testing.T) {
	title, ok := MatchTitle("EVE - Bob")
	if !ok {
		t.Fatal("expected match for \"EVE - Bob\"")
	}
	if title != "Bob" {
		t.Fatalf("title = %q, want %q", title, "Bob")
	}
}

func TestMatchTitle_ExcludesLauncher(t *testing.T) {
	if _, ok := MatchTitle("EVE - Bob (Launcher)"); ok {
		t.Fatal("launcher title must not match even with the EVE prefix")
	}
}

func TestMatchTitle_RequiresPrefix(t *testing.T) {
	for _, raw := range []string{"", "Bob", "eve - Bob", "Firefox - EVE - Bob"} {
		if _, ok := MatchTitle(raw); ok {
			t.Errorf("MatchTitle(%q) matched, want no match", raw)
		}
	}
}
