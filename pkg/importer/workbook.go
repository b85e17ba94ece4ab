package importer

import (
	"bytes"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Binary workbook export from the pump-tracking device. No header matching:
// the first worksheet's first seven columns are always read positionally.
const (
	wbColDate = iota
	wbColType
	wbColTime
	wbColLeft
	wbColRight
	wbColTotal
	wbColNote
)

func (p *Pipeline) parseWorkbook(data []byte, now time.Time) *Result {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return &Result{Errors: []string{ErrUnrecognizedFormat}}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Result{Errors: []string{ErrNoDataRows}}
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return &Result{Errors: []string{ErrUnrecognizedFormat}}
	}
	if len(rows) > p.limits.MaxWorkbookRows {
		return &Result{Errors: []string{errTooManyRows}}
	}

	// Whatever header text the device writes is ignored; a first row whose
	// date cell does not parse is treated as that header.
	start := 0
	if len(rows) > 0 {
		if _, ok := workbookDate(cellAt(rows[0], wbColDate)); !ok {
			start = 1
		}
	}
	if len(rows) <= start {
		return &Result{Errors: []string{ErrNoDataRows}}
	}

	res := &Result{}
	for i, row := range rows[start:] {
		n := start + i + 1
		p.parseWorkbookRow(res, n, row, now)
	}
	return res
}

func (p *Pipeline) parseWorkbookRow(res *Result, n int, row []string, now time.Time) {
	day, ok := workbookDate(cellAt(row, wbColDate))
	if !ok {
		res.rowErr(n, errInvalidDateTime)
		return
	}
	clock, ok := workbookClock(cellAt(row, wbColTime))
	if !ok {
		res.rowErr(n, errInvalidDateTime)
		return
	}
	ts := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)

	sessionType := SessionFeeding
	switch typeCell := strings.ToLower(cellAt(row, wbColType)); {
	case typeCell == "" || strings.HasPrefix(typeCell, "feed"):
		sessionType = SessionFeeding
	case strings.HasPrefix(typeCell, "pump"):
		sessionType = SessionPumping
	default:
		res.rowErr(n, errInvalidType)
		return
	}

	rec := Record{
		Timestamp:  ts,
		Type:       sessionType,
		Source:     SourceImported,
		Confidence: 1.0,
	}

	left, hasLeft := positiveNumber(cellAt(row, wbColLeft))
	right, hasRight := positiveNumber(cellAt(row, wbColRight))
	if total, ok := positiveNumber(cellAt(row, wbColTotal)); ok {
		rec.AmountML = OzToMl(total)
		rec.AmountEntered = total
	} else if hasLeft || hasRight {
		sum := left + right
		rec.AmountML = OzToMl(sum)
		rec.AmountEntered = sum
	} else {
		res.rowErr(n, errMissingAmount)
		return
	}
	rec.UnitEntered = UnitOz

	if hasLeft {
		v := OzToMl(left)
		rec.AmountLeftML = &v
	}
	if hasRight {
		v := OzToMl(right)
		rec.AmountRightML = &v
	}
	switch {
	case hasLeft && hasRight:
		side := SideBoth
		rec.Side = &side
	case hasLeft:
		side := SideLeft
		rec.Side = &side
	case hasRight:
		side := SideRight
		rec.Side = &side
	}

	if note := cellAt(row, wbColNote); note != "" {
		clean := SanitizeText(note)
		rec.Notes = &clean
	}

	p.emit(res, n, rec, now)
}

// workbookDate accepts native date cells (spreadsheet serials under raw
// reads) as well as common text shapes.
func workbookDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if serial, ok := parseNumber(s); ok && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "1/2/2006", "1/2/06", "02-Jan-06"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// workbookClock accepts a fractional-day serial or text time-of-day.
func workbookClock(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if serial, ok := parseNumber(s); ok && serial >= 0 && serial < 1 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	upper := strings.ToUpper(s)
	for _, layout := range []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, upper); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
