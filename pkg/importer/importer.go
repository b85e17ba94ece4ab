package importer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Whole-file errors. These are fatal: the pipeline returns zero candidates
// and exactly one error.
const (
	ErrUnrecognizedFormat = "Unrecognized file format"
	ErrNoDataRows         = "No data rows found"
)

// Row-scoped errors. Deliberately non-reflective: they name the category of
// failure and never echo the offending cell value.
const (
	errColumnCount     = "column count mismatch"
	errMissingDateTime = "missing date or time"
	errInvalidDateTime = "invalid date/time format"
	errInvalidType     = "invalid session type"
	errMissingAmount   = "missing or invalid amount"
	errAmountMax       = "amount exceeds maximum"
	errDurationMax     = "duration exceeds maximum"
	errFutureDate      = "date is in the future"
	errTooManyRows     = "File exceeds maximum row count"
)

// Pipeline turns raw file bytes into canonical candidate records. Parsing is
// a single sequential pass; a failed row is recorded and skipped, never
// retried, and a failed detection is terminal for the call.
type Pipeline struct {
	limits Limits
}

func New(limits Limits) *Pipeline {
	return &Pipeline{limits: limits}
}

func NewDefault() *Pipeline {
	return New(DefaultLimits())
}

func (p *Pipeline) Limits() Limits {
	return p.limits
}

// Parse detects the layout and dispatches to the matching row parser.
// now anchors the future-date check and is injected for testability.
func (p *Pipeline) Parse(data []byte, now time.Time) *Result {
	if bytes.HasPrefix(data, zipMagic) {
		return p.parseWorkbook(data, now)
	}
	rows, err := readCSV(data)
	if err != nil || len(rows) == 0 {
		return &Result{Errors: []string{ErrUnrecognizedFormat}}
	}
	format, headerIdx := detectCSV(rows)
	switch format {
	case FormatCanonical:
		return p.parseCanonical(rows, now)
	case FormatLegacy:
		return p.parseLegacy(rows, now)
	case FormatPivot:
		return p.parsePivot(rows, headerIdx, now)
	default:
		return &Result{Errors: []string{ErrUnrecognizedFormat}}
	}
}

func detectCSV(rows [][]string) (Format, int) {
	if f := detectHeader(rows[0]); f != FormatUnknown {
		return f, 0
	}
	if len(rows) > 1 && detectHeader(rows[1]) == FormatPivot {
		return FormatPivot, 1
	}
	return FormatUnknown, 0
}

func (r *Result) addRecord(rec Record) {
	r.Records = append(r.Records, rec)
	switch rec.Type {
	case SessionPumping:
		r.PumpingCount++
	default:
		r.FeedingCount++
	}
}

// rowErr appends one error for the 1-based file row n.
func (r *Result) rowErr(n int, msg string) {
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", n, msg))
}

// parseNumber parses a numeric cell, rejecting non-finite values outright so
// Infinity/NaN can never reach a candidate.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// positiveNumber is parseNumber restricted to values > 0; a zero cell means
// "absent", not "zero".
func positiveNumber(s string) (float64, bool) {
	v, ok := parseNumber(s)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
