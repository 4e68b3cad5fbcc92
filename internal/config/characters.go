package config

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadCharacters reads the optional characters.txt next to the config file.
// Each line is one character name (without the "EVE - " prefix); blank lines
// and #-comments are ignored. Returns nil when the file does not exist.
func LoadCharacters() []string {
	dir, err := Dir()
	if err != nil {
		return nil
	}
	return LoadCharactersFrom(filepath.Join(dir, "characters.txt"))
}

// LoadCharactersFrom reads a character ordering file from an explicit path.
func LoadCharactersFrom(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// OrderIndex builds a name -> position map for sorting windows by the
// characters.txt ordering. Names not present map to len(order), so unknown
// characters sort after the listed ones while keeping their relative order.
func OrderIndex(order []string) func(name string) int {
	idx := make(map[string]int, len(order))
	for i, name := range order {
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return len(order)
	}
}
