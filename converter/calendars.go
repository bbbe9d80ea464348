package converter

import (
	"time"

	"github.com/transitkit/txc-gtfs/calendar"
	"github.com/transitkit/txc-gtfs/model"
)

type calendarAccumulator struct {
	profile *model.OperatingProfile
	window  calendar.Window
}

// produceCalendars groups every VehicleJourney's effective OperatingProfile
// by its stable fingerprint, expanding each distinct profile into a GTFS
// calendar plus any calendar_dates rows. When the same profile is shared by
// services with different validity windows, the widest enclosing window is
// used so every trip referencing that service_id stays in range.
func produceCalendars(doc *model.TxcDocument, opts ConversionOptions) ([]*model.Calendar, []*model.CalendarDate, []model.Warning) {
	var warnings []model.Warning
	acc := make(map[string]*calendarAccumulator)
	order := make([]string, 0)

	for _, vj := range doc.VehicleJourneys {
		svc := vj.ResolvedService()
		if svc == nil {
			continue
		}
		profile := vj.EffectiveOperatingProfile()
		fp := calendar.ServiceID(profile)
		win := serviceWindow(svc, opts)

		if existing, ok := acc[fp]; ok {
			if win.Start.Before(existing.window.Start) {
				existing.window.Start = win.Start
			}
			if win.End.After(existing.window.End) {
				existing.window.End = win.End
			}
		} else {
			acc[fp] = &calendarAccumulator{profile: profile, window: win}
			order = append(order, fp)
		}
	}

	region := opts.region()
	var calendars []*model.Calendar
	var calendarDates []*model.CalendarDate
	for _, fp := range order {
		a := acc[fp]
		cal, dates, warns := calendar.Generate(a.profile, a.window, region)
		calendars = append(calendars, cal)
		calendarDates = append(calendarDates, dates...)
		warnings = append(warnings, warns...)
	}
	return calendars, calendarDates, warnings
}

// defaultWindowHorizon is the validity span assumed for a Service with no
// EndDate: one year from its StartDate. Deriving the default from the
// service's own StartDate, rather than the wall clock, keeps conversion
// deterministic — the same TXC input and options always produce the same
// calendar.txt bytes.
const defaultWindowHorizon = 365 * 24 * time.Hour

func serviceWindow(svc *model.Service, opts ConversionOptions) calendar.Window {
	start := svc.StartDate
	end := svc.StartDate.Add(defaultWindowHorizon)
	if svc.EndDate != nil {
		end = *svc.EndDate
	}
	if opts.CalendarStart != nil && opts.CalendarStart.After(start) {
		start = *opts.CalendarStart
	}
	if opts.CalendarEnd != nil && opts.CalendarEnd.Before(end) {
		end = *opts.CalendarEnd
	}
	return calendar.Window{Start: start, End: end}
}
