package importer

import "strings"

// stripControl removes ASCII control characters (C0 range plus DEL) from
// header and note text.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// SanitizeText neutralizes spreadsheet formula injection: a trimmed value
// starting with '=', '+', '-' or '@' gets a single leading apostrophe.
// The apostrophe itself is not a trigger character, so sanitizing an
// already-sanitized string is a no-op and export/re-import round-trips
// preserve the text byte-for-byte.
func SanitizeText(s string) string {
	s = stripControl(s)
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
