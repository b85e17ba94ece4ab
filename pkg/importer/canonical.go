package importer

import (
	"strings"
	"time"
)

// Logical fields of the 13-column canonical export. Columns are resolved
// through this closed enum so a renamed or missing column is caught in one
// place instead of surfacing as a stray empty lookup.
type canonicalField int

const (
	fieldDate canonicalField = iota
	fieldTime
	fieldType
	fieldAmountML
	fieldAmountOz
	fieldSide
	fieldLeftML
	fieldLeftOz
	fieldRightML
	fieldRightOz
	fieldDuration
	fieldNotes
	fieldSource
	canonicalFieldCount
)

var canonicalHeaderNames = [canonicalFieldCount]string{
	"date",
	"time",
	"type",
	"amount (ml)",
	"amount (oz)",
	"side",
	"left (ml)",
	"left (oz)",
	"right (ml)",
	"right (oz)",
	"duration (min)",
	"notes",
	"source",
}

// canonicalIndex maps logical fields to column positions for one file, so
// column order is enforced by the header and not hard-coded.
type canonicalIndex [canonicalFieldCount]int

func buildCanonicalIndex(header []string) canonicalIndex {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(stripControl(h)))] = i
	}
	var idx canonicalIndex
	for f := canonicalField(0); f < canonicalFieldCount; f++ {
		if col, ok := byName[canonicalHeaderNames[f]]; ok {
			idx[f] = col
		} else {
			idx[f] = -1
		}
	}
	return idx
}

func (idx canonicalIndex) cell(row []string, f canonicalField) string {
	return cellAt(row, idx[f])
}

const canonicalTimeLayout = "2006-01-02 15:04"

func (p *Pipeline) parseCanonical(rows [][]string, now time.Time) *Result {
	res := &Result{}
	header := rows[0]
	idx := buildCanonicalIndex(header)

	if len(rows) < 2 {
		return &Result{Errors: []string{ErrNoDataRows}}
	}

	for i, row := range rows[1:] {
		n := i + 2
		if len(row) != len(header) {
			res.rowErr(n, errColumnCount)
			continue
		}

		date := idx.cell(row, fieldDate)
		tm := idx.cell(row, fieldTime)
		if date == "" || tm == "" {
			res.rowErr(n, errMissingDateTime)
			continue
		}
		ts, err := time.ParseInLocation(canonicalTimeLayout, date+" "+tm, time.Local)
		if err != nil {
			res.rowErr(n, errInvalidDateTime)
			continue
		}

		var sessionType SessionType
		switch strings.ToLower(idx.cell(row, fieldType)) {
		case string(SessionFeeding):
			sessionType = SessionFeeding
		case string(SessionPumping):
			sessionType = SessionPumping
		default:
			res.rowErr(n, errInvalidType)
			continue
		}

		rec := Record{
			Timestamp:  ts,
			Type:       sessionType,
			Source:     SourceImported,
			Confidence: 1.0,
		}

		// Prefer the metric column; fall back to oz. amount_entered keeps
		// whichever column the source actually populated.
		if ml, ok := positiveNumber(idx.cell(row, fieldAmountML)); ok {
			rec.AmountML = ml
			rec.AmountEntered = ml
			rec.UnitEntered = UnitML
		} else if oz, ok := positiveNumber(idx.cell(row, fieldAmountOz)); ok {
			rec.AmountML = OzToMl(oz)
			rec.AmountEntered = oz
			rec.UnitEntered = UnitOz
		} else {
			res.rowErr(n, errMissingAmount)
			continue
		}

		switch side := strings.ToLower(idx.cell(row, fieldSide)); side {
		case SideLeft, SideRight, SideBoth, SideUnknown:
			rec.Side = &side
		}

		rec.AmountLeftML = sideAmount(idx.cell(row, fieldLeftML), idx.cell(row, fieldLeftOz))
		rec.AmountRightML = sideAmount(idx.cell(row, fieldRightML), idx.cell(row, fieldRightOz))

		if d, ok := positiveNumber(idx.cell(row, fieldDuration)); ok {
			rec.DurationMin = &d
		}
		if notes := idx.cell(row, fieldNotes); notes != "" {
			clean := SanitizeText(notes)
			rec.Notes = &clean
		}
		if src := strings.ToLower(idx.cell(row, fieldSource)); src != "" {
			rec.Source = src
		}

		p.emit(res, n, rec, now)
	}
	return res
}

// sideAmount resolves a per-breast volume: metric column preferred, oz
// fallback, absent when neither holds a positive finite value.
func sideAmount(mlCell, ozCell string) *float64 {
	if ml, ok := positiveNumber(mlCell); ok {
		return &ml
	}
	if oz, ok := positiveNumber(ozCell); ok {
		v := OzToMl(oz)
		return &v
	}
	return nil
}
