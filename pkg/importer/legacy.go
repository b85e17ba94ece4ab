package importer

import (
	"strings"
	"time"
)

// Legacy bilingual export, 8 positional columns:
// Date, Feed Time, Feed Amount (oz), Feed Notes, Pump Time, Pump IZQ,
// Pump DER, Pump Total. Amounts are oz-only. One row can carry a feeding
// and a pumping session independently; each branch has its own error path
// so a malformed pump portion never suppresses a valid feed portion.
const (
	legacyColDate = iota
	legacyColFeedTime
	legacyColFeedAmount
	legacyColFeedNotes
	legacyColPumpTime
	legacyColPumpLeft
	legacyColPumpRight
	legacyColPumpTotal
	legacyColCount
)

const legacyDateLayout = "02-Jan-06"
const legacyTimeLayout = "3:04 PM"

func (p *Pipeline) parseLegacy(rows [][]string, now time.Time) *Result {
	res := &Result{}
	if len(rows) < 2 {
		return &Result{Errors: []string{ErrNoDataRows}}
	}

	for i, row := range rows[1:] {
		n := i + 2
		if len(row) < legacyColCount {
			res.rowErr(n, errColumnCount)
			continue
		}

		day, err := time.ParseInLocation(legacyDateLayout, cellAt(row, legacyColDate), time.Local)
		if err != nil {
			res.rowErr(n, errInvalidDateTime)
			continue
		}

		if feedTime := cellAt(row, legacyColFeedTime); feedTime != "" {
			p.emitLegacyFeed(res, n, row, day, feedTime, now)
		}
		if pumpTime := cellAt(row, legacyColPumpTime); pumpTime != "" {
			p.emitLegacyPump(res, n, row, day, pumpTime, now)
		}
	}
	return res
}

func (p *Pipeline) emitLegacyFeed(res *Result, n int, row []string, day time.Time, feedTime string, now time.Time) {
	ts, ok := combineLegacyTime(day, feedTime)
	if !ok {
		res.rowErr(n, errInvalidDateTime)
		return
	}
	oz, ok := positiveNumber(cellAt(row, legacyColFeedAmount))
	if !ok {
		res.rowErr(n, errMissingAmount)
		return
	}
	rec := Record{
		Timestamp:     ts,
		Type:          SessionFeeding,
		AmountML:      OzToMl(oz),
		AmountEntered: oz,
		UnitEntered:   UnitOz,
		Source:        SourceImported,
		Confidence:    1.0,
	}
	if notes := cellAt(row, legacyColFeedNotes); notes != "" {
		clean := SanitizeText(notes)
		rec.Notes = &clean
	}
	p.emit(res, n, rec, now)
}

func (p *Pipeline) emitLegacyPump(res *Result, n int, row []string, day time.Time, pumpTime string, now time.Time) {
	ts, ok := combineLegacyTime(day, pumpTime)
	if !ok {
		res.rowErr(n, errInvalidDateTime)
		return
	}
	oz, ok := positiveNumber(cellAt(row, legacyColPumpTotal))
	if !ok {
		res.rowErr(n, errMissingAmount)
		return
	}
	rec := Record{
		Timestamp:     ts,
		Type:          SessionPumping,
		AmountML:      OzToMl(oz),
		AmountEntered: oz,
		UnitEntered:   UnitOz,
		Source:        SourceImported,
		Confidence:    1.0,
	}
	if left, ok := positiveNumber(cellAt(row, legacyColPumpLeft)); ok {
		v := OzToMl(left)
		rec.AmountLeftML = &v
	}
	if right, ok := positiveNumber(cellAt(row, legacyColPumpRight)); ok {
		v := OzToMl(right)
		rec.AmountRightML = &v
	}
	if rec.AmountLeftML != nil || rec.AmountRightML != nil {
		side := SideBoth
		rec.Side = &side
	}
	p.emit(res, n, rec, now)
}

func combineLegacyTime(day time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse(legacyTimeLayout, strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, time.Local), true
}
