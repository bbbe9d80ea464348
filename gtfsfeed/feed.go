// Package gtfsfeed implements the GTFS feed layer: eager and lazy readers
// over a directory or ZIP archive of CSV tables, and a writer that
// round-trips a feed back to either form. Both readers expose the same
// Feed capability interface, per the narrow-dispatch design used
// throughout this toolkit instead of a shared base class.
package gtfsfeed

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"

	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/model"
)

func init() {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return gocsv.LazyCSVReader(bom.NewReader(in))
	})
}

// Required tables; a feed missing any of these fails to open.
var requiredFiles = []string{"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// All recognized tables, required or optional.
var allFiles = []string{
	"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt",
	"calendar.txt", "calendar_dates.txt", "shapes.txt", "frequencies.txt", "feed_info.txt",
}

// Feed is the capability interface both the eager and lazy readers
// implement; the filter and converter layers depend only on this, never on
// a concrete reader type.
type Feed interface {
	Agencies() []*model.Agency
	Stops() []*model.Stop
	Routes() []*model.GtfsRoute
	Trips() []*model.Trip
	StopTimes() []*model.StopTime
	Calendars() []*model.Calendar
	CalendarDates() []*model.CalendarDate
	Shapes() []*model.AggregatedShape
	Frequencies() []*model.Frequency
	FeedInfo() *model.FeedInfo

	AgencyCount() int
	StopCount() int
	RouteCount() int
	TripCount() int
	StopTimeCount() int
}

func decodeCSV[T any](r io.Reader, fileName string) ([]T, error) {
	var rows []T
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, &txcerrors.GtfsParseError{FileName: fileName, LineNumber: 0, Column: "", Reason: err.Error()}
	}
	return rows, nil
}

func missingRequired(src source) []string {
	var missing []string
	for _, name := range requiredFiles {
		rc, ok, err := src.open(name)
		if rc != nil {
			rc.Close()
		}
		if err != nil || !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
