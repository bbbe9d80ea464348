// Package filter provides index-backed lookup helpers over a GTFS feed:
// by route, trip, stop, service, and date. Indexes are built lazily on
// first use and cached for the Filter's lifetime; feeds are immutable so
// the cache never needs to invalidate.
package filter

import (
	"sort"
	"sync"

	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/model"
)

// Filter answers index-backed queries over a Feed.
type Filter struct {
	feed gtfsfeed.Feed

	once struct {
		stopByID, routeByID, tripByID, calendarByServiceID     sync.Once
		tripsByRoute, stopTimesByTrip, stopTimesByStop         sync.Once
		tripsByService, calendarDatesByServiceAndDate          sync.Once
	}

	stopByID            map[string]*model.Stop
	routeByID           map[string]*model.GtfsRoute
	tripByID            map[string]*model.Trip
	calendarByServiceID map[string]*model.Calendar

	tripsByRoute    map[string][]*model.Trip
	stopTimesByTrip map[string][]*model.StopTime
	stopTimesByStop map[string][]*model.StopTime
	tripsByService  map[string][]*model.Trip

	calendarDatesByServiceAndDate map[string]map[string]int // service_id -> date -> exception_type
}

// New wraps feed with a Filter; feed must not change after this call.
func New(feed gtfsfeed.Feed) *Filter {
	return &Filter{feed: feed}
}

func (f *Filter) buildStopByID() {
	f.once.stopByID.Do(func() {
		f.stopByID = make(map[string]*model.Stop, f.feed.StopCount())
		for _, s := range f.feed.Stops() {
			f.stopByID[s.StopID] = s
		}
	})
}

func (f *Filter) buildRouteByID() {
	f.once.routeByID.Do(func() {
		f.routeByID = make(map[string]*model.GtfsRoute, f.feed.RouteCount())
		for _, r := range f.feed.Routes() {
			f.routeByID[r.RouteID] = r
		}
	})
}

func (f *Filter) buildTripByID() {
	f.once.tripByID.Do(func() {
		f.tripByID = make(map[string]*model.Trip, f.feed.TripCount())
		for _, t := range f.feed.Trips() {
			f.tripByID[t.TripID] = t
		}
	})
}

func (f *Filter) buildCalendarByServiceID() {
	f.once.calendarByServiceID.Do(func() {
		f.calendarByServiceID = make(map[string]*model.Calendar)
		for _, c := range f.feed.Calendars() {
			f.calendarByServiceID[c.ServiceID] = c
		}
	})
}

func (f *Filter) buildTripsByRoute() {
	f.once.tripsByRoute.Do(func() {
		f.tripsByRoute = make(map[string][]*model.Trip)
		for _, t := range f.feed.Trips() {
			f.tripsByRoute[t.RouteID] = append(f.tripsByRoute[t.RouteID], t)
		}
	})
}

func (f *Filter) buildStopTimesByTrip() {
	f.once.stopTimesByTrip.Do(func() {
		f.stopTimesByTrip = make(map[string][]*model.StopTime)
		for _, st := range f.feed.StopTimes() {
			f.stopTimesByTrip[st.TripID] = append(f.stopTimesByTrip[st.TripID], st)
		}
		for tripID := range f.stopTimesByTrip {
			rows := f.stopTimesByTrip[tripID]
			sort.Slice(rows, func(i, j int) bool { return rows[i].StopSequence < rows[j].StopSequence })
		}
	})
}

func (f *Filter) buildStopTimesByStop() {
	f.once.stopTimesByStop.Do(func() {
		f.stopTimesByStop = make(map[string][]*model.StopTime)
		for _, st := range f.feed.StopTimes() {
			f.stopTimesByStop[st.StopID] = append(f.stopTimesByStop[st.StopID], st)
		}
	})
}

func (f *Filter) buildTripsByService() {
	f.once.tripsByService.Do(func() {
		f.tripsByService = make(map[string][]*model.Trip)
		for _, t := range f.feed.Trips() {
			f.tripsByService[t.ServiceID] = append(f.tripsByService[t.ServiceID], t)
		}
	})
}

func (f *Filter) buildCalendarDatesIndex() {
	f.once.calendarDatesByServiceAndDate.Do(func() {
		f.calendarDatesByServiceAndDate = make(map[string]map[string]int)
		for _, cd := range f.feed.CalendarDates() {
			byDate, ok := f.calendarDatesByServiceAndDate[cd.ServiceID]
			if !ok {
				byDate = make(map[string]int)
				f.calendarDatesByServiceAndDate[cd.ServiceID] = byDate
			}
			byDate[cd.Date] = cd.ExceptionType
		}
	})
}

// GetStop returns the stop with the given id, or nil if absent.
func (f *Filter) GetStop(id string) *model.Stop {
	f.buildStopByID()
	return f.stopByID[id]
}

// GetRoute returns the route with the given id, or nil if absent.
func (f *Filter) GetRoute(id string) *model.GtfsRoute {
	f.buildRouteByID()
	return f.routeByID[id]
}

// GetTrip returns the trip with the given id, or nil if absent.
func (f *Filter) GetTrip(id string) *model.Trip {
	f.buildTripByID()
	return f.tripByID[id]
}

// GetCalendar returns the calendar with the given service_id, or nil if
// absent.
func (f *Filter) GetCalendar(serviceID string) *model.Calendar {
	f.buildCalendarByServiceID()
	return f.calendarByServiceID[serviceID]
}

// TripsForRoute returns every trip whose route_id matches id.
func (f *Filter) TripsForRoute(id string) []*model.Trip {
	f.buildTripsByRoute()
	return f.tripsByRoute[id]
}

// StopTimesForRoute returns every stop_time belonging to a trip on route id.
func (f *Filter) StopTimesForRoute(id string) []*model.StopTime {
	var out []*model.StopTime
	for _, t := range f.TripsForRoute(id) {
		out = append(out, f.StopTimesForTrip(t.TripID)...)
	}
	return out
}

// StopsForRoute returns the stops served by route id, deduplicated,
// preserving first-seen order.
func (f *Filter) StopsForRoute(id string) []*model.Stop {
	seen := make(map[string]bool)
	var out []*model.Stop
	for _, st := range f.StopTimesForRoute(id) {
		if seen[st.StopID] {
			continue
		}
		seen[st.StopID] = true
		if s := f.GetStop(st.StopID); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// StopTimesForTrip returns trip id's stop_times in strictly increasing
// stop_sequence.
func (f *Filter) StopTimesForTrip(id string) []*model.StopTime {
	f.buildStopTimesByTrip()
	return f.stopTimesByTrip[id]
}

// TripsServingStop returns the deduplicated set of trips that call at
// stop id.
func (f *Filter) TripsServingStop(id string) []*model.Trip {
	f.buildStopTimesByStop()
	f.buildTripByID()
	seen := make(map[string]bool)
	var out []*model.Trip
	for _, st := range f.stopTimesByStop[id] {
		if seen[st.TripID] {
			continue
		}
		seen[st.TripID] = true
		if t := f.tripByID[st.TripID]; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// RoutesServingStop returns the deduplicated set of routes that call at
// stop id.
func (f *Filter) RoutesServingStop(id string) []*model.GtfsRoute {
	f.buildRouteByID()
	seen := make(map[string]bool)
	var out []*model.GtfsRoute
	for _, t := range f.TripsServingStop(id) {
		if seen[t.RouteID] {
			continue
		}
		seen[t.RouteID] = true
		if r := f.routeByID[t.RouteID]; r != nil {
			out = append(out, r)
		}
	}
	return out
}

const dateLayout = "2006-01-02"

// ActiveServicesOn returns the service_ids active on date (YYYY-MM-DD): a
// service is active iff start_date <= date <= end_date and the weekday flag
// for date is true, unless a calendar_dates exception for that exact date
// overrides the flag (type 1 forces active, type 2 forces inactive).
func (f *Filter) ActiveServicesOn(date string) ([]string, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	f.buildCalendarByServiceID()
	f.buildCalendarDatesIndex()

	gtfsDate := d.Format("20060102")
	var active []string
	for _, cal := range f.feed.Calendars() {
		if active2, ok := f.serviceActiveOn(cal, gtfsDate, d); ok && active2 {
			active = append(active, cal.ServiceID)
		}
	}
	// Services that exist only via calendar_dates additions (no calendar row).
	for serviceID, byDate := range f.calendarDatesByServiceAndDate {
		if _, hasCalendar := f.calendarByServiceID[serviceID]; hasCalendar {
			continue
		}
		if byDate[gtfsDate] == 1 {
			active = append(active, serviceID)
		}
	}
	return active, nil
}

// serviceActiveOn implements the service-active law: active iff
// start_date <= D <= end_date AND (the weekday flag, overridden by any
// calendar_dates exception for that exact date: type 1 forces active,
// type 2 forces inactive).
func (f *Filter) serviceActiveOn(cal *model.Calendar, gtfsDate string, d timeOnly) (bool, bool) {
	if gtfsDate < cal.StartDate || gtfsDate > cal.EndDate {
		return false, true
	}
	weekday := weekdayFlag(cal, d)
	exceptionType := 0
	if exc, ok := f.calendarDatesByServiceAndDate[cal.ServiceID]; ok {
		exceptionType = exc[gtfsDate]
	}
	switch exceptionType {
	case 1:
		return true, true
	case 2:
		return false, true
	default:
		return weekday, true
	}
}

// TripsOnDate returns every trip whose service_id is active on date.
func (f *Filter) TripsOnDate(date string) ([]*model.Trip, error) {
	services, err := f.ActiveServicesOn(date)
	if err != nil {
		return nil, err
	}
	f.buildTripsByService()
	var out []*model.Trip
	for _, s := range services {
		out = append(out, f.tripsByService[s]...)
	}
	return out, nil
}

func newInvalidDateError(date string) error {
	return &txcerrors.InvalidDateError{DateString: date, ExpectedFormat: "YYYY-MM-DD"}
}
