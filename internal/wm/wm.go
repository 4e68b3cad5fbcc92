// Package wm defines the window-management capability contract shared by all
// backends, along with the canonical data model the layout engine and cycle
// state operate on. Nothing in this package touches a compositor.
package wm

import (
	"errors"
	"strings"
)

// TitlePrefix marks an EVE client window. The prefix is stripped from stored
// titles, so a WindowRecord title is the bare character name.
const TitlePrefix = "EVE - "

// launcherMark excludes the EVE launcher, whose title also starts with TitlePrefix.
const launcherMark = "Launcher"

// ErrNoActiveWindow is returned when the backend reports no focused window.
var ErrNoActiveWindow = errors.New("no active window")

// ErrWindowNotFound is returned when an operation targets a window the
// backend no longer knows about.
var ErrWindowNotFound = errors.New("window not found")

// Rect describes a rectangular region in virtual-desktop coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window is one EVE client window as seen in a single enumeration snapshot.
// ID is the canonical 64-bit identifier (backend-scoped, see ParseWindowID);
// Monitor is the name of the monitor hosting the window, or "" when the
// backend could not determine it.
type Window struct {
	ID      uint64
	Title   string
	Monitor string
}

// Monitor is one active display in the current topology snapshot.
type Monitor struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Manager is the capability contract every backend implements. All calls are
// blocking round trips; implementations must be safe to call sequentially
// from a single goroutine and must never panic on transport failures.
type Manager interface {
	// ListWindows enumerates EVE client windows (launcher excluded, prefix
	// stripped). A single unparseable entry is skipped, never fatal.
	ListWindows() ([]Window, error)
	// ActiveWindow returns the canonical id of the focused window, or
	// ErrNoActiveWindow.
	ActiveWindow() (uint64, error)
	// Activate requests foreground focus for the window. Idempotent:
	// activating the already-focused window is a no-op, not an error.
	Activate(id uint64) error
	// FindWindow looks up a window by exact (unstripped) title. Absence is
	// reported via ok=false, not an error.
	FindWindow(title string) (id uint64, ok bool, err error)
	// MoveResize repositions and resizes the window in one logical call.
	// Backends whose transport rejects the request for a fullscreen window
	// exit fullscreen and retry exactly once before failing.
	MoveResize(id uint64, r Rect) error
	// Minimize hides the window from normal view, recoverably.
	Minimize(id uint64) error
	// Restore undoes Minimize.
	Restore(id uint64) error
	// Monitors queries the current topology. Never cached; ordering is
	// query order and not stable across calls.
	Monitors() ([]Monitor, error)
}

// MatchTitle reports whether a raw window title belongs to an EVE client
// (not the launcher) and returns the title with the application prefix
// stripped.
func MatchTitle(raw string) (string, bool) {
	if !strings.HasPrefix(raw, TitlePrefix) {
		return "", false
	}
	if strings.Contains(raw, launcherMark) {
		return "", false
	}
	return strings.TrimPrefix(raw, TitlePrefix), true
}
