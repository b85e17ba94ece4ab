package importer

import (
	"errors"
	"math"
	"time"
)

// validate screens one candidate against the configured bounds. It returns
// a fixed, parameter-free message and false when the record must be dropped.
// Source normalization happens here as well; it never rejects.
func (p *Pipeline) validate(rec *Record, now time.Time) (string, bool) {
	if math.IsNaN(rec.AmountML) || math.IsInf(rec.AmountML, 0) || rec.AmountML <= 0 {
		return errMissingAmount, false
	}
	// Pivot day totals legitimately exceed the per-session cap; this is the
	// one documented exemption.
	if !rec.DailyAggregate && rec.AmountML > p.limits.MaxAmountML {
		return errAmountMax, false
	}
	if rec.DurationMin != nil {
		d := *rec.DurationMin
		if math.IsNaN(d) || math.IsInf(d, 0) || d > p.limits.MaxDurationMin {
			return errDurationMax, false
		}
	}
	if rec.Timestamp.After(now.Add(p.limits.MaxFutureSkew)) {
		return errFutureDate, false
	}
	rec.Source = NormalizeSource(rec.Source)
	return "", true
}

// ValidateRecord applies the same screening to records built outside the
// file parsers (manual entry, structured entries from the vision service).
func (p *Pipeline) ValidateRecord(rec *Record, now time.Time) error {
	if msg, ok := p.validate(rec, now); !ok {
		return errors.New(msg)
	}
	return nil
}

// emit validates rec and either adds it to the result or records the row
// error. Validation never aborts the file.
func (p *Pipeline) emit(res *Result, rowNum int, rec Record, now time.Time) {
	if msg, ok := p.validate(&rec, now); !ok {
		res.rowErr(rowNum, msg)
	} else {
		res.addRecord(rec)
	}
}
