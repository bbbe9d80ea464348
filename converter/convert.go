package converter

import (
	"log/slog"
	"sort"
	"time"

	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/model"
)

// ConversionResult is the output of a successful Convert call.
type ConversionResult struct {
	Feed     gtfsfeed.Feed
	Stats    Stats
	Warnings []model.Warning
}

// Convert runs the deterministic TXC→GTFS pipeline over doc, returning a
// queryable/writable Feed plus stats and warnings. Convert never aborts on
// a single bad entity; every skip is recorded as a warning. It fails only
// when the minimum viable output (at least one trip with at least two
// stop_times) cannot be produced.
func Convert(doc *model.TxcDocument, opts ConversionOptions, logger *slog.Logger) (*ConversionResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	var warnings []model.Warning

	agencies := produceAgencies(doc, opts)

	retained := retainedStopCodes(doc)
	stops, stopWarnings := produceStops(doc, retained)
	warnings = append(warnings, stopWarnings...)

	routes := produceRoutes(doc)

	calendars, calendarDates, calWarnings := produceCalendars(doc, opts)
	warnings = append(warnings, calWarnings...)

	trips, tripShapeKey, skippedTrips := produceTrips(doc)

	var stopTimes []*model.StopTime
	for _, vj := range doc.VehicleJourneys {
		if vj.ResolvedPattern() == nil || vj.ResolvedService() == nil {
			continue
		}
		rows, stWarnings := produceStopTimes(vj)
		stopTimes = append(stopTimes, rows...)
		warnings = append(warnings, stWarnings...)
	}

	var shapes []*model.AggregatedShape
	if opts.IncludeShapes {
		var tripShapeID map[string]string
		shapes, tripShapeID = produceShapes(doc, tripShapeKey)
		for _, t := range trips {
			if shapeID, ok := tripShapeID[t.TripID]; ok {
				t.ShapeID = shapeID
			}
		}
	}

	sortDeterministic(agencies, stops, routes, trips, stopTimes, calendars, calendarDates, shapes)

	stats := Stats{
		Agencies: len(agencies), Stops: len(stops), Routes: len(routes),
		Trips: len(trips), StopTimes: len(stopTimes), Calendars: len(calendars),
		Shapes: len(shapes), SkippedJourneys: skippedTrips,
	}

	logger.Info("txc to gtfs conversion complete",
		"agencies", stats.Agencies, "stops", stats.Stops, "routes", stats.Routes,
		"trips", stats.Trips, "stop_times", stats.StopTimes, "calendars", stats.Calendars,
		"skipped_journeys", stats.SkippedJourneys, "warnings", len(warnings),
		"duration", time.Since(start))

	if !hasViableOutput(trips, stopTimes) {
		return nil, &txcerrors.ConversionError{
			Stats:    statsMap(stats),
			Warnings: warnings,
			Reason:   "no trip with at least two stop_times was produced",
		}
	}

	feed := gtfsfeed.NewFeed(agencies, stops, routes, trips, stopTimes, calendars, calendarDates, shapes)

	return &ConversionResult{Feed: feed, Stats: stats, Warnings: warnings}, nil
}

func hasViableOutput(trips []*model.Trip, stopTimes []*model.StopTime) bool {
	counts := make(map[string]int, len(trips))
	for _, st := range stopTimes {
		counts[st.TripID]++
	}
	for _, t := range trips {
		if counts[t.TripID] >= 2 {
			return true
		}
	}
	return false
}

func statsMap(s Stats) map[string]int {
	return map[string]int{
		"agencies": s.Agencies, "stops": s.Stops, "routes": s.Routes,
		"trips": s.Trips, "stop_times": s.StopTimes, "calendars": s.Calendars,
		"shapes": s.Shapes, "skipped_journeys": s.SkippedJourneys,
	}
}

// sortDeterministic sorts every output collection by its primary id so
// byte-identical inputs and options always produce byte-identical CSV.
func sortDeterministic(
	agencies []*model.Agency,
	stops []*model.Stop,
	routes []*model.GtfsRoute,
	trips []*model.Trip,
	stopTimes []*model.StopTime,
	calendars []*model.Calendar,
	calendarDates []*model.CalendarDate,
	shapes []*model.AggregatedShape,
) {
	sort.Slice(agencies, func(i, j int) bool { return agencies[i].AgencyID < agencies[j].AgencyID })
	sort.Slice(stops, func(i, j int) bool { return stops[i].StopID < stops[j].StopID })
	sort.Slice(routes, func(i, j int) bool { return routes[i].RouteID < routes[j].RouteID })
	sort.Slice(trips, func(i, j int) bool { return trips[i].TripID < trips[j].TripID })
	sort.SliceStable(stopTimes, func(i, j int) bool {
		if stopTimes[i].TripID != stopTimes[j].TripID {
			return stopTimes[i].TripID < stopTimes[j].TripID
		}
		return stopTimes[i].StopSequence < stopTimes[j].StopSequence
	})
	sort.Slice(calendars, func(i, j int) bool { return calendars[i].ServiceID < calendars[j].ServiceID })
	sort.SliceStable(calendarDates, func(i, j int) bool {
		if calendarDates[i].ServiceID != calendarDates[j].ServiceID {
			return calendarDates[i].ServiceID < calendarDates[j].ServiceID
		}
		return calendarDates[i].Date < calendarDates[j].Date
	})
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].ShapeID < shapes[j].ShapeID })
}
