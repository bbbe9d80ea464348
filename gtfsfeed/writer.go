package gtfsfeed

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/transitkit/txc-gtfs/ioutil"
	"github.com/transitkit/txc-gtfs/model"
)

func init() {
	// klauspost/compress's flate is a drop-in, faster DEFLATE
	// implementation; registering it makes archive/zip use it for any
	// level instead of the standard library's compressor.
	zip.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})
}

type table struct {
	fileName string
	required bool
	columns  []string
	rows     []ioutil.Row
}

func buildTables(f Feed) []table {
	agencyRows := make([]ioutil.Row, 0, f.AgencyCount())
	for _, a := range f.Agencies() {
		agencyRows = append(agencyRows, rowOf(agencyToCSV(a)))
	}

	stopRows := make([]ioutil.Row, 0, f.StopCount())
	for _, s := range f.Stops() {
		stopRows = append(stopRows, rowOf(stopToCSV(s)))
	}

	routeRows := make([]ioutil.Row, 0, f.RouteCount())
	for _, r := range f.Routes() {
		routeRows = append(routeRows, rowOf(routeToCSV(r)))
	}

	tripRows := make([]ioutil.Row, 0, f.TripCount())
	for _, t := range f.Trips() {
		tripRows = append(tripRows, rowOf(tripToCSV(t)))
	}

	stopTimeRows := make([]ioutil.Row, 0, f.StopTimeCount())
	for _, st := range f.StopTimes() {
		stopTimeRows = append(stopTimeRows, rowOf(stopTimeToCSV(st)))
	}

	calendars := f.Calendars()
	calendarRows := make([]ioutil.Row, 0, len(calendars))
	for _, c := range calendars {
		calendarRows = append(calendarRows, rowOf(calendarToCSV(c)))
	}

	calendarDates := f.CalendarDates()
	calendarDateRows := make([]ioutil.Row, 0, len(calendarDates))
	for _, c := range calendarDates {
		calendarDateRows = append(calendarDateRows, rowOf(calendarDateToCSV(c)))
	}

	shapes := f.Shapes()
	shapeRows := make([]ioutil.Row, 0)
	for _, shape := range shapes {
		for _, flat := range flattenForWriter(shape) {
			shapeRows = append(shapeRows, rowOf(shapeToCSV(flat)))
		}
	}

	frequencies := f.Frequencies()
	frequencyRows := make([]ioutil.Row, 0, len(frequencies))
	for _, fr := range frequencies {
		frequencyRows = append(frequencyRows, rowOf(frequencyToCSV(fr)))
	}

	var feedInfoRows []ioutil.Row
	if fi := f.FeedInfo(); fi != nil {
		feedInfoRows = append(feedInfoRows, rowOf(feedInfoToCSV(fi)))
	}

	return []table{
		{"agency.txt", true, agencyColumns, agencyRows},
		{"stops.txt", true, stopColumns, stopRows},
		{"routes.txt", true, routeColumns, routeRows},
		{"trips.txt", true, tripColumns, tripRows},
		{"stop_times.txt", true, stopTimeColumns, stopTimeRows},
		{"calendar.txt", false, calendarColumns, calendarRows},
		{"calendar_dates.txt", false, calendarDateColumns, calendarDateRows},
		{"shapes.txt", false, shapeColumns, shapeRows},
		{"frequencies.txt", false, frequencyColumns, frequencyRows},
		{"feed_info.txt", false, feedInfoColumns, feedInfoRows},
	}
}

func flattenForWriter(shape *model.AggregatedShape) []*model.Shape {
	rows := make([]*model.Shape, 0, len(shape.Points))
	for _, p := range shape.Points {
		rows = append(rows, &model.Shape{
			ShapeID: shape.ShapeID, ShapePtLat: p.Lat, ShapePtLon: p.Lon,
			ShapePtSequence: p.Sequence, ShapeDistTraveled: p.DistTraveled,
		})
	}
	return rows
}

// rowOf converts a tagged csv* struct into an ioutil.Row via a minimal
// reflection-free switch would be verbose; gocsv already did the tag work
// on read, so on write we build rows with the same struct tag order by
// hand per table (see tables.go's *Columns slices and *ToCSV helpers).
func rowOf(v interface{}) ioutil.Row {
	switch t := v.(type) {
	case csvAgency:
		return ioutil.Row{"agency_id": t.AgencyID, "agency_name": t.AgencyName, "agency_url": t.AgencyURL, "agency_timezone": t.AgencyTimezone, "agency_lang": t.AgencyLang, "agency_phone": t.AgencyPhone, "agency_fare_url": t.AgencyFareURL, "agency_email": t.AgencyEmail}
	case csvStop:
		return ioutil.Row{
			"stop_id": t.StopID, "stop_code": t.StopCode, "stop_name": t.StopName, "stop_desc": t.StopDesc,
			"stop_lat": fmt.Sprintf("%g", t.StopLat), "stop_lon": fmt.Sprintf("%g", t.StopLon), "zone_id": t.ZoneID,
			"stop_url": t.StopURL, "location_type": t.LocationType, "parent_station": t.ParentStation,
			"wheelchair_boarding": t.WheelchairBoarding, "level_id": t.LevelID, "platform_code": t.PlatformCode,
		}
	case csvRoute:
		return ioutil.Row{
			"route_id": t.RouteID, "agency_id": t.AgencyID, "route_short_name": t.RouteShortName,
			"route_long_name": t.RouteLongName, "route_desc": t.RouteDesc, "route_type": fmt.Sprintf("%d", t.RouteType),
			"route_url": t.RouteURL, "route_color": t.RouteColor, "route_text_color": t.RouteTextColor,
			"route_sort_order": t.RouteSortOrder, "continuous_pickup": t.ContinuousPickup, "continuous_drop_off": t.ContinuousDropOff,
		}
	case csvTrip:
		return ioutil.Row{
			"route_id": t.RouteID, "service_id": t.ServiceID, "trip_id": t.TripID, "trip_headsign": t.TripHeadsign,
			"trip_short_name": t.TripShortName, "direction_id": t.DirectionID, "block_id": t.BlockID,
			"shape_id": t.ShapeID, "wheelchair_accessible": t.WheelchairAccessible, "bikes_allowed": t.BikesAllowed,
		}
	case csvStopTime:
		return ioutil.Row{
			"trip_id": t.TripID, "arrival_time": t.ArrivalTime, "departure_time": t.DepartureTime, "stop_id": t.StopID,
			"stop_sequence": fmt.Sprintf("%d", t.StopSequence), "stop_headsign": t.StopHeadsign,
			"pickup_type": t.PickupType, "drop_off_type": t.DropOffType, "shape_dist_traveled": t.ShapeDistTraveled,
		}
	case csvCalendar:
		return ioutil.Row{
			"service_id": t.ServiceID, "monday": t.Monday, "tuesday": t.Tuesday, "wednesday": t.Wednesday,
			"thursday": t.Thursday, "friday": t.Friday, "saturday": t.Saturday, "sunday": t.Sunday,
			"start_date": t.StartDate, "end_date": t.EndDate,
		}
	case csvCalendarDate:
		return ioutil.Row{"service_id": t.ServiceID, "date": t.Date, "exception_type": fmt.Sprintf("%d", t.ExceptionType)}
	case csvShape:
		return ioutil.Row{
			"shape_id": t.ShapeID, "shape_pt_lat": fmt.Sprintf("%g", t.ShapePtLat), "shape_pt_lon": fmt.Sprintf("%g", t.ShapePtLon),
			"shape_pt_sequence": fmt.Sprintf("%d", t.ShapePtSequence), "shape_dist_traveled": t.ShapeDistTraveled,
		}
	case csvFrequency:
		return ioutil.Row{"trip_id": t.TripID, "start_time": t.StartTime, "end_time": t.EndTime, "headway_secs": fmt.Sprintf("%d", t.HeadwaySecs), "exact_times": t.ExactTimes}
	case csvFeedInfo:
		return ioutil.Row{
			"feed_publisher_name": t.FeedPublisherName, "feed_publisher_url": t.FeedPublisherURL, "feed_lang": t.FeedLang,
			"feed_start_date": t.FeedStartDate, "feed_end_date": t.FeedEndDate, "feed_version": t.FeedVersion,
			"feed_contact_email": t.FeedContactEmail, "feed_contact_url": t.FeedContactURL,
		}
	default:
		return nil
	}
}

// WriteDir writes f's tables as CSV files into dir, creating it if
// necessary. Empty optional tables are omitted; the five required tables
// are always written, even if empty.
func WriteDir(f Feed, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, t := range buildTables(f) {
		if !t.required && len(t.rows) == 0 {
			continue
		}
		path := filepath.Join(dir, t.fileName)
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		err = ioutil.WriteRows(out, t.columns, t.rows)
		closeErr := out.Close()
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}
	return nil
}

// WriteZip writes f's tables as a GTFS ZIP archive at zipPath.
func WriteZip(f Feed, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, t := range buildTables(f) {
		if !t.required && len(t.rows) == 0 {
			continue
		}
		w, err := zw.Create(t.fileName)
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", t.fileName, err)
		}
		if err := ioutil.WriteRows(w, t.columns, t.rows); err != nil {
			return fmt.Errorf("writing %s: %w", t.fileName, err)
		}
	}
	return zw.Close()
}
