package importer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		Timestamp:     testNow().Add(-time.Hour),
		Type:          SessionFeeding,
		AmountML:      120,
		AmountEntered: 120,
		UnitEntered:   UnitML,
		Source:        SourceManual,
		Confidence:    1.0,
	}
}

func TestValidateRecordAccepts(t *testing.T) {
	rec := validRecord()
	require.NoError(t, NewDefault().ValidateRecord(&rec, testNow()))
}

func TestValidateRecordRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"zero amount", func(r *Record) { r.AmountML = 0 }},
		{"negative amount", func(r *Record) { r.AmountML = -10 }},
		{"nan amount", func(r *Record) { r.AmountML = math.NaN() }},
		{"infinite amount", func(r *Record) { r.AmountML = math.Inf(1) }},
		{"amount over cap", func(r *Record) { r.AmountML = 500.5 }},
		{"duration over cap", func(r *Record) { d := 600.5; r.DurationMin = &d }},
		{"nan duration", func(r *Record) { d := math.NaN(); r.DurationMin = &d }},
		{"far future", func(r *Record) { r.Timestamp = testNow().Add(25 * time.Hour) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			assert.Error(t, NewDefault().ValidateRecord(&rec, testNow()))
		})
	}
}

func TestValidateRecordBoundaryValues(t *testing.T) {
	p := NewDefault()

	rec := validRecord()
	rec.AmountML = 500
	assert.NoError(t, p.ValidateRecord(&rec, testNow()), "cap itself is allowed")

	rec = validRecord()
	d := 600.0
	rec.DurationMin = &d
	assert.NoError(t, p.ValidateRecord(&rec, testNow()))

	rec = validRecord()
	rec.Timestamp = testNow().Add(23 * time.Hour)
	assert.NoError(t, p.ValidateRecord(&rec, testNow()), "within the future skew allowance")
}

func TestValidateRecordNormalizesSource(t *testing.T) {
	rec := validRecord()
	rec.Source = "telepathy"
	require.NoError(t, NewDefault().ValidateRecord(&rec, testNow()))
	assert.Equal(t, SourceImported, rec.Source)
}

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, SourceManual, NormalizeSource("manual"))
	assert.Equal(t, SourceOCR, NormalizeSource("ocr"))
	assert.Equal(t, SourceAIVision, NormalizeSource("ai_vision"))
	assert.Equal(t, SourceImported, NormalizeSource(""))
	assert.Equal(t, SourceImported, NormalizeSource("anything else"))
}
