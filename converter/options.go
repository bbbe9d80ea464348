// Package converter implements the deterministic TXC→GTFS conversion
// pipeline: agencies, stops, routes, calendars, trips, stop times, and
// (optionally) shapes, in that order, with accumulated warnings and stats.
package converter

import (
	"time"

	"github.com/transitkit/txc-gtfs/calendar"
)

// ConversionOptions parameterizes a single conversion run. The zero value
// is valid: shapes are skipped, no region's bank holidays are applied, and
// the calendar window is taken from each Service (a Service with no EndDate
// gets a window of one year from its StartDate).
type ConversionOptions struct {
	IncludeShapes bool
	// Region selects which bank holidays apply to OperatingProfile
	// BankHolidayOperation expansion. Empty/unrecognized means none.
	Region string
	// CalendarStart/CalendarEnd clamp every generated calendar's window,
	// when provided.
	CalendarStart *time.Time
	CalendarEnd   *time.Time
	// DefaultAgencyTimezone is used for every agency's agency_timezone;
	// empty means "Europe/London". TXC input supplies no timezone.
	DefaultAgencyTimezone string
}

func (o ConversionOptions) region() calendar.Region {
	return calendar.ParseRegion(o.Region)
}

func (o ConversionOptions) agencyTimezone() string {
	if o.DefaultAgencyTimezone != "" {
		return o.DefaultAgencyTimezone
	}
	return "Europe/London"
}

// Stats reports per-kind counts produced (and skipped) by a conversion run.
type Stats struct {
	Agencies        int
	Stops           int
	Routes          int
	Trips           int
	StopTimes       int
	Calendars       int
	Shapes          int
	SkippedJourneys int
}
