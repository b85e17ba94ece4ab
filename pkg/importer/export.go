package importer

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CanonicalHeader is the exact 13-column header of the canonical export.
var CanonicalHeader = []string{
	"Date", "Time", "Type",
	"Amount (ml)", "Amount (oz)",
	"Side",
	"Left (ml)", "Left (oz)",
	"Right (ml)", "Right (oz)",
	"Duration (min)", "Notes", "Source",
}

// WriteCanonical serializes records to the canonical export CSV. The
// originally entered amount is written to its own column verbatim and the
// counterpart column is derived. A re-import resolves through the metric
// column, so the canonical amount survives within conversion tolerance.
func WriteCanonical(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CanonicalHeader); err != nil {
		return err
	}
	for _, rec := range records {
		var ml, oz float64
		if rec.UnitEntered == UnitOz {
			oz = rec.AmountEntered
			ml = rec.AmountML
		} else {
			ml = rec.AmountEntered
			oz = MlToOz(rec.AmountML)
		}

		row := []string{
			rec.Timestamp.Format("2006-01-02"),
			rec.Timestamp.Format("15:04"),
			string(rec.Type),
			formatAmount(ml),
			formatAmount(oz),
			derefStr(rec.Side),
			formatOptional(rec.AmountLeftML),
			formatConverted(rec.AmountLeftML),
			formatOptional(rec.AmountRightML),
			formatConverted(rec.AmountRightML),
			formatOptional(rec.DurationMin),
			SanitizeText(derefStr(rec.Notes)),
			rec.Source,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatAmount(*v)
}

func formatConverted(ml *float64) string {
	if ml == nil {
		return ""
	}
	return formatAmount(MlToOz(*ml))
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
