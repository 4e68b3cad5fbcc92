package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCharactersFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.txt")
	content := "Bob\n\n# scouts\nAlice\n  Carol  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	names := LoadCharactersFrom(path)
	want := []string{"Bob", "Alice", "Carol"}
	if len(names) != len(want) {
		t.Fatalf("got %d names %v, want %v", len(names), names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadCharactersFrom_Missing(t *testing.T) {
	if names := LoadCharactersFrom(filepath.Join(t.TempDir(), "nope.txt")); names != nil {
		t.Fatalf("expected nil for missing file, got %v", names)
	}
}

func TestOrderIndex(t *testing.T) {
	rank := OrderIndex([]string{"Bob", "Alice"})
	if rank("Bob") != 0 || rank("Alice") != 1 {
		t.Fatalf("rank(Bob)=%d rank(Alice)=%d, want 0 and 1", rank("Bob"), rank("Alice"))
	}
	// Unlisted characters sort after every listed one.
	if rank("Carol") != 2 {
		t.Fatalf("rank(Carol) = %d, want 2", rank("Carol"))
	}
}
