package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pivotCSV(rows ...string) []byte {
	return []byte(pivotHeaderLine + "\n" + strings.Join(rows, "\n") + "\n")
}

func pivotNow() time.Time {
	return time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local)
}

func TestParsePivotDayRow(t *testing.T) {
	res := NewDefault().Parse(pivotCSV("10/19/2025,33.00,34.50,67.50"), pivotNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.FeedingCount)
	assert.Equal(t, 1, res.PumpingCount)

	noon := time.Date(2025, 10, 19, 12, 0, 0, 0, time.Local)

	feed := res.Records[0]
	assert.Equal(t, SessionFeeding, feed.Type)
	assert.Equal(t, noon, feed.Timestamp)
	assert.Equal(t, OzToMl(33), feed.AmountML)
	assert.Equal(t, 33.0, feed.AmountEntered)
	assert.Equal(t, UnitOz, feed.UnitEntered)
	assert.True(t, feed.DailyAggregate)
	require.NotNil(t, feed.Notes)
	assert.Equal(t, pivotAggregateNote, *feed.Notes)

	pump := res.Records[1]
	assert.Equal(t, SessionPumping, pump.Type)
	assert.Equal(t, noon, pump.Timestamp)
	assert.Equal(t, OzToMl(34.5), pump.AmountML)
	assert.True(t, pump.DailyAggregate)
}

func TestParsePivotDayTotalsExemptFromAmountCap(t *testing.T) {
	// 33 oz is 976 ml, far above the 500 ml per-session cap. A day total is
	// still a valid candidate.
	res := NewDefault().Parse(pivotCSV("10/19/2025,33.00,0,33.00"), pivotNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	assert.Greater(t, res.Records[0].AmountML, 500.0)
}

func TestParsePivotSkipsGrandTotalFooter(t *testing.T) {
	res := NewDefault().Parse(pivotCSV(
		"10/19/2025,33.00,34.50,67.50",
		"Grand Total,33.00,34.50,67.50",
	), pivotNow())

	assert.Empty(t, res.Errors)
	assert.Len(t, res.Records, 2)
}

func TestParsePivotZeroCellsProduceNoCandidates(t *testing.T) {
	res := NewDefault().Parse(pivotCSV("10/19/2025,0,,0"), pivotNow())

	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Records)
}

func TestParsePivotThousandsSeparators(t *testing.T) {
	data := []byte(pivotHeaderLine + "\n" + `10/19/2025,"1,033.00",0,"1,033.00"` + "\n")
	res := NewDefault().Parse(data, pivotNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 1033.0, res.Records[0].AmountEntered)
}

func TestParsePivotWithTitleRow(t *testing.T) {
	data := []byte("Weekly Summary\n" + pivotHeaderLine + "\n10/19/2025,33.00,34.50,67.50\n")
	res := NewDefault().Parse(data, pivotNow())

	assert.Empty(t, res.Errors)
	assert.Len(t, res.Records, 2)
}

func TestParsePivotBadDate(t *testing.T) {
	res := NewDefault().Parse(pivotCSV("yesterday,33.00,34.50,67.50"), pivotNow())

	assert.Empty(t, res.Records)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: "+errInvalidDateTime, res.Errors[0])
}
