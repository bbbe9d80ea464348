package gtfsfeed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitkit/txc-gtfs/model"
)

func sampleFeed() *EagerFeed {
	return NewFeed(
		[]*model.Agency{{AgencyID: "A1", AgencyName: "Sample Buses", AgencyURL: "https://example.org", AgencyTimezone: "Europe/London"}},
		[]*model.Stop{
			{StopID: "S1", StopName: "Stop One", StopLat: 51.50, StopLon: -0.10},
			{StopID: "S2", StopName: "Stop Two", StopLat: 51.51, StopLon: -0.11},
		},
		[]*model.GtfsRoute{{RouteID: "SVC1:L1", AgencyID: "A1", RouteShortName: "1", RouteType: 3}},
		[]*model.Trip{{RouteID: "SVC1:L1", ServiceID: "SVC1", TripID: "VJ1"}},
		[]*model.StopTime{
			{TripID: "VJ1", ArrivalTime: 8 * 3600, DepartureTime: 8 * 3600, StopID: "S1", StopSequence: 1},
			{TripID: "VJ1", ArrivalTime: 8*3600 + 300, DepartureTime: 8*3600 + 300, StopID: "S2", StopSequence: 2},
		},
		[]*model.Calendar{{ServiceID: "SVC1", Monday: true, StartDate: "20260101", EndDate: "20261231"}},
		nil,
		nil,
	)
}

func TestWriteDirThenOpenEagerRoundTrips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(sampleFeed(), dir))

	feed, err := OpenEager(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.AgencyCount())
	assert.Equal(t, 2, feed.StopCount())
	assert.Equal(t, 1, feed.RouteCount())
	assert.Equal(t, 1, feed.TripCount())
	assert.Equal(t, 2, feed.StopTimeCount())
	require.Len(t, feed.Calendars(), 1)
	assert.True(t, feed.Calendars()[0].Monday)
}

func TestWriteDirOmitsEmptyOptionalTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(sampleFeed(), dir))
	assert.NoFileExists(t, filepath.Join(dir, "shapes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "frequencies.txt"))
	assert.FileExists(t, filepath.Join(dir, "calendar.txt"))
}

func TestWriteZipThenOpenLazyRoundTrips(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, WriteZip(sampleFeed(), zipPath))

	feed, err := OpenLazy(zipPath)
	require.NoError(t, err)
	defer feed.Close()

	assert.Equal(t, 2, feed.StopCount())
	require.Len(t, feed.Trips(), 1)
	assert.Equal(t, "VJ1", feed.Trips()[0].TripID)
	assert.NoError(t, feed.Err())
}

func TestLazyFeedCountOrLenAvoidsFullParseUntilNeeded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(sampleFeed(), dir))

	feed, err := OpenLazy(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, feed.StopTimeCount())
	stopTimes := feed.StopTimes()
	require.Len(t, stopTimes, 2)
	assert.Equal(t, 2, feed.StopTimeCount())
}

func TestOpenEagerMissingRequiredFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(sampleFeed(), dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "stops.txt")))

	_, err := OpenEager(dir)
	require.Error(t, err)
}

func TestOpenLazyNonexistentPathFails(t *testing.T) {
	_, err := OpenLazy(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestParseTimeOfDayAndFormatRoundTrip(t *testing.T) {
	secs, err := ParseTimeOfDay("08:05:00")
	require.NoError(t, err)
	assert.Equal(t, 8*3600+5*60, secs)
	assert.Equal(t, "08:05:00", FormatTimeOfDay(secs))
}

func TestParseTimeOfDayAllowsOvernightHours(t *testing.T) {
	secs, err := ParseTimeOfDay("25:00:00")
	require.NoError(t, err)
	assert.Equal(t, 25*3600, secs)
	assert.Equal(t, "25:00:00", FormatTimeOfDay(secs))
}

func TestParseTimeOfDayRejectsMalformed(t *testing.T) {
	_, err := ParseTimeOfDay("not-a-time")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("08:70:00")
	assert.Error(t, err)
}
