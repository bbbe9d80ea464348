package gtfsfeed

import (
	"strconv"

	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/model"
)

// EagerFeed parses every recognized table fully on Open; queries are pure
// slice/field reads with no further IO.
type EagerFeed struct {
	agencies      []*model.Agency
	stops         []*model.Stop
	routes        []*model.GtfsRoute
	trips         []*model.Trip
	stopTimes     []*model.StopTime
	calendars     []*model.Calendar
	calendarDates []*model.CalendarDate
	shapes        []*model.AggregatedShape
	frequencies   []*model.Frequency
	feedInfo      *model.FeedInfo
}

// OpenEager opens path (a directory or ZIP archive) and parses every
// recognized table immediately.
func OpenEager(path string) (*EagerFeed, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, &txcerrors.GtfsFileNotFoundError{Path: path, MissingFiles: requiredFiles}
	}
	if zs, ok := src.(*zipSource); ok {
		defer zs.close()
	}

	if missing := missingRequired(src); len(missing) > 0 {
		return nil, &txcerrors.GtfsFileNotFoundError{Path: path, MissingFiles: missing}
	}

	f := &EagerFeed{}

	if err := loadTable(src, "agency.txt", func(rows []csvAgency) {
		for _, r := range rows {
			f.agencies = append(f.agencies, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	if err := loadTable(src, "stops.txt", func(rows []csvStop) {
		for _, r := range rows {
			f.stops = append(f.stops, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	if err := loadTable(src, "routes.txt", func(rows []csvRoute) {
		for _, r := range rows {
			f.routes = append(f.routes, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	if err := loadTable(src, "trips.txt", func(rows []csvTrip) {
		for _, r := range rows {
			f.trips = append(f.trips, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	stopTimes, err := loadStopTimes(src)
	if err != nil {
		return nil, err
	}
	f.stopTimes = stopTimes

	if err := loadTable(src, "calendar.txt", func(rows []csvCalendar) {
		for _, r := range rows {
			f.calendars = append(f.calendars, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	if err := loadTable(src, "calendar_dates.txt", func(rows []csvCalendarDate) {
		for _, r := range rows {
			f.calendarDates = append(f.calendarDates, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	var flatShapes []*model.Shape
	if err := loadTable(src, "shapes.txt", func(rows []csvShape) {
		for _, r := range rows {
			flatShapes = append(flatShapes, r.toModel())
		}
	}); err != nil {
		return nil, err
	}
	f.shapes = aggregateShapes(flatShapes)

	if err := loadTable(src, "frequencies.txt", func(rows []csvFrequency) {
		for _, r := range rows {
			f.frequencies = append(f.frequencies, r.toModel())
		}
	}); err != nil {
		return nil, err
	}

	feedInfoRows, err := tryLoad[csvFeedInfo](src, "feed_info.txt")
	if err != nil {
		return nil, err
	}
	if len(feedInfoRows) > 0 {
		fi := feedInfoRows[0].toModel()
		f.feedInfo = fi
	}

	return f, nil
}

func loadTable[T any](src source, fileName string, apply func([]T)) error {
	rows, err := tryLoad[T](src, fileName)
	if err != nil {
		return err
	}
	apply(rows)
	return nil
}

func tryLoad[T any](src source, fileName string) ([]T, error) {
	rc, ok, err := src.open(fileName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	defer rc.Close()
	return decodeCSV[T](rc, fileName)
}

func loadStopTimes(src source) ([]*model.StopTime, error) {
	rows, err := tryLoad[csvStopTime](src, "stop_times.txt")
	if err != nil {
		return nil, err
	}
	out := make([]*model.StopTime, 0, len(rows))
	for i, r := range rows {
		arrival, err := ParseTimeOfDay(r.ArrivalTime)
		if err != nil {
			return nil, &txcerrors.GtfsParseError{FileName: "stop_times.txt", LineNumber: i + 2, Column: "arrival_time", Reason: err.Error()}
		}
		departure, err := ParseTimeOfDay(r.DepartureTime)
		if err != nil {
			return nil, &txcerrors.GtfsParseError{FileName: "stop_times.txt", LineNumber: i + 2, Column: "departure_time", Reason: err.Error()}
		}
		pickup, dropOff := 0, 0
		if r.PickupType != "" {
			pickup, _ = strconv.Atoi(r.PickupType)
		}
		if r.DropOffType != "" {
			dropOff, _ = strconv.Atoi(r.DropOffType)
		}
		dist := 0.0
		hasDist := r.ShapeDistTraveled != ""
		if hasDist {
			dist, _ = strconv.ParseFloat(r.ShapeDistTraveled, 64)
		}
		out = append(out, &model.StopTime{
			TripID: r.TripID, ArrivalTime: arrival, DepartureTime: departure,
			StopID: r.StopID, StopSequence: r.StopSequence, StopHeadsign: r.StopHeadsign,
			PickupType: pickup, DropOffType: dropOff, ShapeDistTraveled: dist, HasShapeDist: hasDist,
		})
	}
	return out, nil
}

// NewFeed constructs an EagerFeed directly from already-built entities,
// bypassing CSV decoding entirely. The converter uses this to materialize
// its output as a Feed that can be queried or written without a disk
// round-trip.
func NewFeed(
	agencies []*model.Agency,
	stops []*model.Stop,
	routes []*model.GtfsRoute,
	trips []*model.Trip,
	stopTimes []*model.StopTime,
	calendars []*model.Calendar,
	calendarDates []*model.CalendarDate,
	shapes []*model.AggregatedShape,
) *EagerFeed {
	return &EagerFeed{
		agencies: agencies, stops: stops, routes: routes, trips: trips,
		stopTimes: stopTimes, calendars: calendars, calendarDates: calendarDates, shapes: shapes,
	}
}

func (f *EagerFeed) Agencies() []*model.Agency             { return f.agencies }
func (f *EagerFeed) Stops() []*model.Stop                  { return f.stops }
func (f *EagerFeed) Routes() []*model.GtfsRoute            { return f.routes }
func (f *EagerFeed) Trips() []*model.Trip                  { return f.trips }
func (f *EagerFeed) StopTimes() []*model.StopTime          { return f.stopTimes }
func (f *EagerFeed) Calendars() []*model.Calendar          { return f.calendars }
func (f *EagerFeed) CalendarDates() []*model.CalendarDate  { return f.calendarDates }
func (f *EagerFeed) Shapes() []*model.AggregatedShape      { return f.shapes }
func (f *EagerFeed) Frequencies() []*model.Frequency       { return f.frequencies }
func (f *EagerFeed) FeedInfo() *model.FeedInfo             { return f.feedInfo }

func (f *EagerFeed) AgencyCount() int    { return len(f.agencies) }
func (f *EagerFeed) StopCount() int      { return len(f.stops) }
func (f *EagerFeed) RouteCount() int     { return len(f.routes) }
func (f *EagerFeed) TripCount() int      { return len(f.trips) }
func (f *EagerFeed) StopTimeCount() int  { return len(f.stopTimes) }
