package gtfsfeed

import (
	"strconv"

	"github.com/transitkit/txc-gtfs/model"
)

// The csv* row types below carry gocsv struct tags for the on-disk column
// names. They exist only at the decode/encode boundary; everywhere else the
// feed works in terms of the model package's plain entity types.

type csvAgency struct {
	AgencyID       string `csv:"agency_id"`
	AgencyName     string `csv:"agency_name"`
	AgencyURL      string `csv:"agency_url"`
	AgencyTimezone string `csv:"agency_timezone"`
	AgencyLang     string `csv:"agency_lang"`
	AgencyPhone    string `csv:"agency_phone"`
	AgencyFareURL  string `csv:"agency_fare_url"`
	AgencyEmail    string `csv:"agency_email"`
}

func (c csvAgency) toModel() *model.Agency {
	return &model.Agency{
		AgencyID: c.AgencyID, AgencyName: c.AgencyName, AgencyURL: c.AgencyURL,
		AgencyTimezone: c.AgencyTimezone, AgencyLang: c.AgencyLang,
		AgencyPhone: c.AgencyPhone, AgencyFareURL: c.AgencyFareURL, AgencyEmail: c.AgencyEmail,
	}
}

func agencyToCSV(a *model.Agency) csvAgency {
	return csvAgency{
		AgencyID: a.AgencyID, AgencyName: a.AgencyName, AgencyURL: a.AgencyURL,
		AgencyTimezone: a.AgencyTimezone, AgencyLang: a.AgencyLang,
		AgencyPhone: a.AgencyPhone, AgencyFareURL: a.AgencyFareURL, AgencyEmail: a.AgencyEmail,
	}
}

var agencyColumns = []string{"agency_id", "agency_name", "agency_url", "agency_timezone", "agency_lang", "agency_phone", "agency_fare_url", "agency_email"}

type csvStop struct {
	StopID             string  `csv:"stop_id"`
	StopCode           string  `csv:"stop_code"`
	StopName           string  `csv:"stop_name"`
	StopDesc           string  `csv:"stop_desc"`
	StopLat            float64 `csv:"stop_lat"`
	StopLon            float64 `csv:"stop_lon"`
	ZoneID             string  `csv:"zone_id"`
	StopURL            string  `csv:"stop_url"`
	LocationType       string  `csv:"location_type"`
	ParentStation      string  `csv:"parent_station"`
	WheelchairBoarding string  `csv:"wheelchair_boarding"`
	LevelID            string  `csv:"level_id"`
	PlatformCode       string  `csv:"platform_code"`
}

func (c csvStop) toModel() *model.Stop {
	return &model.Stop{
		StopID: c.StopID, StopCode: c.StopCode, StopName: c.StopName, StopDesc: c.StopDesc,
		StopLat: c.StopLat, StopLon: c.StopLon, ZoneID: c.ZoneID, StopURL: c.StopURL,
		LocationType: c.LocationType, ParentStation: c.ParentStation,
		WheelchairBoarding: c.WheelchairBoarding, LevelID: c.LevelID, PlatformCode: c.PlatformCode,
	}
}

func stopToCSV(s *model.Stop) csvStop {
	return csvStop{
		StopID: s.StopID, StopCode: s.StopCode, StopName: s.StopName, StopDesc: s.StopDesc,
		StopLat: s.StopLat, StopLon: s.StopLon, ZoneID: s.ZoneID, StopURL: s.StopURL,
		LocationType: s.LocationType, ParentStation: s.ParentStation,
		WheelchairBoarding: s.WheelchairBoarding, LevelID: s.LevelID, PlatformCode: s.PlatformCode,
	}
}

var stopColumns = []string{"stop_id", "stop_code", "stop_name", "stop_desc", "stop_lat", "stop_lon", "zone_id", "stop_url", "location_type", "parent_station", "wheelchair_boarding", "level_id", "platform_code"}

type csvRoute struct {
	RouteID           string `csv:"route_id"`
	AgencyID          string `csv:"agency_id"`
	RouteShortName    string `csv:"route_short_name"`
	RouteLongName     string `csv:"route_long_name"`
	RouteDesc         string `csv:"route_desc"`
	RouteType         int    `csv:"route_type"`
	RouteURL          string `csv:"route_url"`
	RouteColor        string `csv:"route_color"`
	RouteTextColor    string `csv:"route_text_color"`
	RouteSortOrder    string `csv:"route_sort_order"`
	ContinuousPickup  string `csv:"continuous_pickup"`
	ContinuousDropOff string `csv:"continuous_drop_off"`
}

func (c csvRoute) toModel() *model.GtfsRoute {
	sortOrder := 0
	if c.RouteSortOrder != "" {
		sortOrder, _ = strconv.Atoi(c.RouteSortOrder)
	}
	return &model.GtfsRoute{
		RouteID: c.RouteID, AgencyID: c.AgencyID, RouteShortName: c.RouteShortName,
		RouteLongName: c.RouteLongName, RouteDesc: c.RouteDesc, RouteType: c.RouteType,
		RouteURL: c.RouteURL, RouteColor: c.RouteColor, RouteTextColor: c.RouteTextColor,
		RouteSortOrder: sortOrder, ContinuousPickup: c.ContinuousPickup, ContinuousDropOff: c.ContinuousDropOff,
	}
}

func routeToCSV(r *model.GtfsRoute) csvRoute {
	sortOrder := ""
	if r.RouteSortOrder != 0 {
		sortOrder = strconv.Itoa(r.RouteSortOrder)
	}
	return csvRoute{
		RouteID: r.RouteID, AgencyID: r.AgencyID, RouteShortName: r.RouteShortName,
		RouteLongName: r.RouteLongName, RouteDesc: r.RouteDesc, RouteType: r.RouteType,
		RouteURL: r.RouteURL, RouteColor: r.RouteColor, RouteTextColor: r.RouteTextColor,
		RouteSortOrder: sortOrder, ContinuousPickup: r.ContinuousPickup, ContinuousDropOff: r.ContinuousDropOff,
	}
}

var routeColumns = []string{"route_id", "agency_id", "route_short_name", "route_long_name", "route_desc", "route_type", "route_url", "route_color", "route_text_color", "route_sort_order", "continuous_pickup", "continuous_drop_off"}

type csvTrip struct {
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	TripID               string `csv:"trip_id"`
	TripHeadsign         string `csv:"trip_headsign"`
	TripShortName        string `csv:"trip_short_name"`
	DirectionID          string `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible string `csv:"wheelchair_accessible"`
	BikesAllowed         string `csv:"bikes_allowed"`
}

func (c csvTrip) toModel() *model.Trip {
	return &model.Trip{
		RouteID: c.RouteID, ServiceID: c.ServiceID, TripID: c.TripID, TripHeadsign: c.TripHeadsign,
		TripShortName: c.TripShortName, DirectionID: c.DirectionID, BlockID: c.BlockID,
		ShapeID: c.ShapeID, WheelchairAccessible: c.WheelchairAccessible, BikesAllowed: c.BikesAllowed,
	}
}

func tripToCSV(t *model.Trip) csvTrip {
	return csvTrip{
		RouteID: t.RouteID, ServiceID: t.ServiceID, TripID: t.TripID, TripHeadsign: t.TripHeadsign,
		TripShortName: t.TripShortName, DirectionID: t.DirectionID, BlockID: t.BlockID,
		ShapeID: t.ShapeID, WheelchairAccessible: t.WheelchairAccessible, BikesAllowed: t.BikesAllowed,
	}
}

var tripColumns = []string{"route_id", "service_id", "trip_id", "trip_headsign", "trip_short_name", "direction_id", "block_id", "shape_id", "wheelchair_accessible", "bikes_allowed"}

type csvStopTime struct {
	TripID            string `csv:"trip_id"`
	ArrivalTime       string `csv:"arrival_time"`
	DepartureTime     string `csv:"departure_time"`
	StopID            string `csv:"stop_id"`
	StopSequence      int    `csv:"stop_sequence"`
	StopHeadsign      string `csv:"stop_headsign"`
	PickupType        string `csv:"pickup_type"`
	DropOffType       string `csv:"drop_off_type"`
	ShapeDistTraveled string `csv:"shape_dist_traveled"`
}

func stopTimeToCSV(st *model.StopTime) csvStopTime {
	dist := ""
	if st.HasShapeDist {
		dist = strconv.FormatFloat(st.ShapeDistTraveled, 'f', -1, 64)
	}
	return csvStopTime{
		TripID: st.TripID, ArrivalTime: FormatTimeOfDay(st.ArrivalTime), DepartureTime: FormatTimeOfDay(st.DepartureTime),
		StopID: st.StopID, StopSequence: st.StopSequence, StopHeadsign: st.StopHeadsign,
		PickupType: strconv.Itoa(st.PickupType), DropOffType: strconv.Itoa(st.DropOffType),
		ShapeDistTraveled: dist,
	}
}

var stopTimeColumns = []string{"trip_id", "arrival_time", "departure_time", "stop_id", "stop_sequence", "stop_headsign", "pickup_type", "drop_off_type", "shape_dist_traveled"}

type csvCalendar struct {
	ServiceID string `csv:"service_id"`
	Monday    string `csv:"monday"`
	Tuesday   string `csv:"tuesday"`
	Wednesday string `csv:"wednesday"`
	Thursday  string `csv:"thursday"`
	Friday    string `csv:"friday"`
	Saturday  string `csv:"saturday"`
	Sunday    string `csv:"sunday"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

func (c csvCalendar) toModel() *model.Calendar {
	return &model.Calendar{
		ServiceID: c.ServiceID,
		Monday:    c.Monday == "1", Tuesday: c.Tuesday == "1", Wednesday: c.Wednesday == "1",
		Thursday: c.Thursday == "1", Friday: c.Friday == "1", Saturday: c.Saturday == "1", Sunday: c.Sunday == "1",
		StartDate: c.StartDate, EndDate: c.EndDate,
	}
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func calendarToCSV(c *model.Calendar) csvCalendar {
	return csvCalendar{
		ServiceID: c.ServiceID, Monday: boolDigit(c.Monday), Tuesday: boolDigit(c.Tuesday),
		Wednesday: boolDigit(c.Wednesday), Thursday: boolDigit(c.Thursday), Friday: boolDigit(c.Friday),
		Saturday: boolDigit(c.Saturday), Sunday: boolDigit(c.Sunday), StartDate: c.StartDate, EndDate: c.EndDate,
	}
}

var calendarColumns = []string{"service_id", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "start_date", "end_date"}

type csvCalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}

func (c csvCalendarDate) toModel() *model.CalendarDate {
	return &model.CalendarDate{ServiceID: c.ServiceID, Date: c.Date, ExceptionType: c.ExceptionType}
}

func calendarDateToCSV(c *model.CalendarDate) csvCalendarDate {
	return csvCalendarDate{ServiceID: c.ServiceID, Date: c.Date, ExceptionType: c.ExceptionType}
}

var calendarDateColumns = []string{"service_id", "date", "exception_type"}

type csvShape struct {
	ShapeID           string  `csv:"shape_id"`
	ShapePtLat        float64 `csv:"shape_pt_lat"`
	ShapePtLon        float64 `csv:"shape_pt_lon"`
	ShapePtSequence   int     `csv:"shape_pt_sequence"`
	ShapeDistTraveled string  `csv:"shape_dist_traveled"`
}

func (c csvShape) toModel() *model.Shape {
	dist := 0.0
	if c.ShapeDistTraveled != "" {
		dist, _ = strconv.ParseFloat(c.ShapeDistTraveled, 64)
	}
	return &model.Shape{ShapeID: c.ShapeID, ShapePtLat: c.ShapePtLat, ShapePtLon: c.ShapePtLon, ShapePtSequence: c.ShapePtSequence, ShapeDistTraveled: dist}
}

func shapeToCSV(s *model.Shape) csvShape {
	return csvShape{ShapeID: s.ShapeID, ShapePtLat: s.ShapePtLat, ShapePtLon: s.ShapePtLon, ShapePtSequence: s.ShapePtSequence, ShapeDistTraveled: strconv.FormatFloat(s.ShapeDistTraveled, 'f', -1, 64)}
}

var shapeColumns = []string{"shape_id", "shape_pt_lat", "shape_pt_lon", "shape_pt_sequence", "shape_dist_traveled"}

type csvFrequency struct {
	TripID      string `csv:"trip_id"`
	StartTime   string `csv:"start_time"`
	EndTime     string `csv:"end_time"`
	HeadwaySecs int    `csv:"headway_secs"`
	ExactTimes  string `csv:"exact_times"`
}

func (c csvFrequency) toModel() *model.Frequency {
	return &model.Frequency{TripID: c.TripID, StartTime: c.StartTime, EndTime: c.EndTime, HeadwaySecs: c.HeadwaySecs, ExactTimes: c.ExactTimes}
}

func frequencyToCSV(f *model.Frequency) csvFrequency {
	return csvFrequency{TripID: f.TripID, StartTime: f.StartTime, EndTime: f.EndTime, HeadwaySecs: f.HeadwaySecs, ExactTimes: f.ExactTimes}
}

var frequencyColumns = []string{"trip_id", "start_time", "end_time", "headway_secs", "exact_times"}

type csvFeedInfo struct {
	FeedPublisherName string `csv:"feed_publisher_name"`
	FeedPublisherURL  string `csv:"feed_publisher_url"`
	FeedLang          string `csv:"feed_lang"`
	FeedStartDate     string `csv:"feed_start_date"`
	FeedEndDate       string `csv:"feed_end_date"`
	FeedVersion       string `csv:"feed_version"`
	FeedContactEmail  string `csv:"feed_contact_email"`
	FeedContactURL    string `csv:"feed_contact_url"`
}

func (c csvFeedInfo) toModel() *model.FeedInfo {
	return &model.FeedInfo{
		FeedPublisherName: c.FeedPublisherName, FeedPublisherURL: c.FeedPublisherURL, FeedLang: c.FeedLang,
		FeedStartDate: c.FeedStartDate, FeedEndDate: c.FeedEndDate, FeedVersion: c.FeedVersion,
		FeedContactEmail: c.FeedContactEmail, FeedContactURL: c.FeedContactURL,
	}
}

func feedInfoToCSV(f *model.FeedInfo) csvFeedInfo {
	return csvFeedInfo{
		FeedPublisherName: f.FeedPublisherName, FeedPublisherURL: f.FeedPublisherURL, FeedLang: f.FeedLang,
		FeedStartDate: f.FeedStartDate, FeedEndDate: f.FeedEndDate, FeedVersion: f.FeedVersion,
		FeedContactEmail: f.FeedContactEmail, FeedContactURL: f.FeedContactURL,
	}
}

var feedInfoColumns = []string{"feed_publisher_name", "feed_publisher_url", "feed_lang", "feed_start_date", "feed_end_date", "feed_version", "feed_contact_email", "feed_contact_url"}

// aggregateShapes groups flat shapes.txt rows into model.AggregatedShape,
// ordered by shape_pt_sequence within each shape.
func aggregateShapes(rows []*model.Shape) []*model.AggregatedShape {
	order := make([]string, 0)
	byID := make(map[string]*model.AggregatedShape)
	for _, r := range rows {
		agg, ok := byID[r.ShapeID]
		if !ok {
			agg = &model.AggregatedShape{ShapeID: r.ShapeID}
			byID[r.ShapeID] = agg
			order = append(order, r.ShapeID)
		}
		agg.Points = append(agg.Points, model.ShapePoint{
			Lat: r.ShapePtLat, Lon: r.ShapePtLon, Sequence: r.ShapePtSequence,
			DistTraveled: r.ShapeDistTraveled, HasDistTraveled: r.ShapeDistTraveled != 0,
		})
	}
	out := make([]*model.AggregatedShape, 0, len(order))
	for _, id := range order {
		agg := byID[id]
		sortShapePoints(agg.Points)
		out = append(out, agg)
	}
	return out
}

func sortShapePoints(points []model.ShapePoint) {
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].Sequence < points[j-1].Sequence; j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}
