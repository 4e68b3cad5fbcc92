package wm

import "strconv"

// Canonical window identifiers are uint64 everywhere above the adapter
// boundary. Each backend owns its native encoding: KWin and Hyprland speak
// hexadecimal strings, Sway speaks decimal container ids, X11 speaks 32-bit
// wire integers. Id 0 is reserved as "invalid"; enumerators drop records
// whose id parses to 0 so one corrupt entry cannot abort a whole listing.

// ParseHexID parses a hexadecimal window id, with or without a 0x prefix.
// Returns 0 on malformed input.
func ParseHexID(s string) uint64 {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	id, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return id
}

// ParseDecimalID parses a decimal window id. Returns 0 on malformed input.
func ParseDecimalID(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ParseWindowID parses a native id of unknown encoding: 0x-prefixed forms
// are hexadecimal, all-digit forms are decimal, remaining valid hex forms
// are hexadecimal. Returns 0 on malformed input.
func ParseWindowID(s string) uint64 {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return ParseHexID(s)
	}
	if isDigits(s) {
		return ParseDecimalID(s)
	}
	return ParseHexID(s)
}

// FormatHexID renders a canonical id in Hyprland's native address form.
func FormatHexID(id uint64) string {
	return "0x" + strconv.FormatUint(id, 16)
}

// FormatDecimalID renders a canonical id in Sway's native container-id form.
func FormatDecimalID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
