package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyCSV(rows ...string) []byte {
	return []byte(legacyHeaderLine + "\n" + strings.Join(rows, "\n") + "\n")
}

func TestParseLegacyRowWithBothSessions(t *testing.T) {
	data := legacyCSV("06-Feb-26,10:30 am,4.0,sleepy feed,2:15 PM,2.0,2.5,4.5")
	res := NewDefault().Parse(data, testNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.FeedingCount)
	assert.Equal(t, 1, res.PumpingCount)

	feed := res.Records[0]
	assert.Equal(t, SessionFeeding, feed.Type)
	assert.Equal(t, time.Date(2026, 2, 6, 10, 30, 0, 0, time.Local), feed.Timestamp)
	assert.Equal(t, OzToMl(4), feed.AmountML)
	assert.Equal(t, 4.0, feed.AmountEntered)
	assert.Equal(t, UnitOz, feed.UnitEntered)
	require.NotNil(t, feed.Notes)
	assert.Equal(t, "sleepy feed", *feed.Notes)

	pump := res.Records[1]
	assert.Equal(t, SessionPumping, pump.Type)
	assert.Equal(t, time.Date(2026, 2, 6, 14, 15, 0, 0, time.Local), pump.Timestamp)
	assert.Equal(t, OzToMl(4.5), pump.AmountML)
	require.NotNil(t, pump.AmountLeftML)
	assert.Equal(t, OzToMl(2), *pump.AmountLeftML)
	require.NotNil(t, pump.AmountRightML)
	assert.Equal(t, OzToMl(2.5), *pump.AmountRightML)
	require.NotNil(t, pump.Side)
	assert.Equal(t, SideBoth, *pump.Side)
}

func TestParseLegacyFeedOnly(t *testing.T) {
	data := legacyCSV("06-Feb-26,8:00 AM,3.5,,,,,")
	res := NewDefault().Parse(data, testNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	assert.Equal(t, SessionFeeding, res.Records[0].Type)
	assert.Nil(t, res.Records[0].Side)
}

func TestParseLegacyPumpOnly(t *testing.T) {
	data := legacyCSV("06-Feb-26,,,,9:45 PM,,,5.0")
	res := NewDefault().Parse(data, testNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	pump := res.Records[0]
	assert.Equal(t, SessionPumping, pump.Type)
	assert.Equal(t, time.Date(2026, 2, 6, 21, 45, 0, 0, time.Local), pump.Timestamp)
	assert.Nil(t, pump.AmountLeftML)
	assert.Nil(t, pump.AmountRightML)
	assert.Nil(t, pump.Side)
}

func TestParseLegacyBranchesFailIndependently(t *testing.T) {
	// Feed portion has a bad amount; the pump portion on the same row still
	// produces a candidate.
	data := legacyCSV("07-Feb-26,9:00 AM,abc,,1:00 PM,,,3.0")
	res := NewDefault().Parse(data, testNow())

	require.Len(t, res.Records, 1)
	assert.Equal(t, SessionPumping, res.Records[0].Type)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: "+errMissingAmount, res.Errors[0])
}

func TestParseLegacyBadDateSkipsWholeRow(t *testing.T) {
	data := legacyCSV("2026-02-06,10:30 AM,4.0,,2:15 PM,,,4.5")
	res := NewDefault().Parse(data, testNow())

	assert.Empty(t, res.Records)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: "+errInvalidDateTime, res.Errors[0])
}

func TestParseLegacyLowercaseMeridiem(t *testing.T) {
	data := legacyCSV("06-Feb-26,10:30 pm,4.0,,,,,")
	res := NewDefault().Parse(data, testNow())

	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 22, res.Records[0].Timestamp.Hour())
}

func TestParseLegacyShortRow(t *testing.T) {
	data := legacyCSV("06-Feb-26,10:30 AM,4.0")
	res := NewDefault().Parse(data, testNow())

	assert.Empty(t, res.Records)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: "+errColumnCount, res.Errors[0])
}
