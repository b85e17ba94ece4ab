package importer

import (
	"strings"
	"time"
)

// Pivot-table daily summary: one row per calendar day, one column per
// session category. Each non-zero category cell becomes a daily-aggregate
// candidate pinned at local noon — a day total is not a point-in-time event,
// and noon keeps it inside the right calendar day in any reasonable view.
const pivotDateLayout = "1/2/2006"

const pivotAggregateNote = "daily aggregate from pivot table"

func (p *Pipeline) parsePivot(rows [][]string, headerIdx int, now time.Time) *Result {
	res := &Result{}
	header := rows[headerIdx]

	dateCol, feedingCol, pumpCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(stripControl(h))) {
		case "date":
			dateCol = i
		case "feeding":
			feedingCol = i
		case "pump":
			pumpCol = i
		}
	}

	if len(rows) <= headerIdx+1 {
		return &Result{Errors: []string{ErrNoDataRows}}
	}

	for i, row := range rows[headerIdx+1:] {
		n := headerIdx + i + 2

		dateCell := cellAt(row, dateCol)
		// The exporting app appends a summary row labeled literally
		// "Grand Total"; it is a footer, not a data error.
		if dateCell == "Grand Total" {
			continue
		}
		day, err := time.ParseInLocation(pivotDateLayout, dateCell, time.Local)
		if err != nil {
			res.rowErr(n, errInvalidDateTime)
			continue
		}
		noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.Local)

		if oz, ok := pivotAmount(cellAt(row, feedingCol)); ok {
			p.emit(res, n, pivotRecord(noon, SessionFeeding, oz), now)
		}
		if oz, ok := pivotAmount(cellAt(row, pumpCol)); ok {
			p.emit(res, n, pivotRecord(noon, SessionPumping, oz), now)
		}
	}
	return res
}

// pivotAmount parses a category total; cells may carry comma thousands
// separators. Zero or blank means no sessions that day, not an error.
func pivotAmount(s string) (float64, bool) {
	return positiveNumber(strings.ReplaceAll(s, ",", ""))
}

func pivotRecord(noon time.Time, sessionType SessionType, oz float64) Record {
	notes := pivotAggregateNote
	return Record{
		Timestamp:      noon,
		Type:           sessionType,
		AmountML:       OzToMl(oz),
		AmountEntered:  oz,
		UnitEntered:    UnitOz,
		Notes:          &notes,
		Source:         SourceImported,
		Confidence:     1.0,
		DailyAggregate: true,
	}
}
