package importer

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// Format is the closed set of recognized import layouts. Dispatch on it is
// exhaustive: adding a format means the compiler points at every switch.
type Format int

const (
	FormatUnknown Format = iota
	FormatCanonical
	FormatLegacy
	FormatPivot
	FormatWorkbook
)

func (f Format) String() string {
	switch f {
	case FormatCanonical:
		return "canonical"
	case FormatLegacy:
		return "legacy"
	case FormatPivot:
		return "pivot"
	case FormatWorkbook:
		return "workbook"
	default:
		return "unknown"
	}
}

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// Detect inspects raw file bytes and returns the format tag. Workbooks are
// recognized by the ZIP container magic before any header inspection; CSV
// formats by characteristic header names, in priority order.
func Detect(data []byte) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatWorkbook
	}
	rows, err := readCSV(data)
	if err != nil || len(rows) == 0 {
		return FormatUnknown
	}
	if f := detectHeader(rows[0]); f != FormatUnknown {
		return f
	}
	// The pivot export may carry one throwaway title row above the header.
	if len(rows) > 1 && detectHeader(rows[1]) == FormatPivot {
		return FormatPivot
	}
	return FormatUnknown
}

func detectHeader(header []string) Format {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(stripControl(h)))
	}
	has := func(pred func(string) bool) bool {
		for _, c := range cells {
			if pred(c) {
				return true
			}
		}
		return false
	}
	equals := func(want string) bool {
		return has(func(c string) bool { return c == want })
	}
	containsBoth := func(a, b string) bool {
		return has(func(c string) bool {
			return strings.Contains(c, a) && strings.Contains(c, b)
		})
	}

	if equals("type") && equals("side") &&
		containsBoth("amount", "ml") && containsBoth("left", "ml") {
		return FormatCanonical
	}
	if containsBoth("feed", "time") && containsBoth("pump", "time") &&
		has(func(c string) bool { return strings.Contains(c, "izq") || strings.Contains(c, "iq") }) {
		return FormatLegacy
	}
	if equals("date") && equals("feeding") && equals("pump") {
		return FormatPivot
	}
	return FormatUnknown
}

// readCSV reads the whole input with variable column counts; the parsers
// validate counts per row themselves.
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}
