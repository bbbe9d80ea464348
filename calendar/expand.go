// Package calendar expands a TXC OperatingProfile plus a Service's
// validity window into GTFS calendar.txt / calendar_dates.txt rows.
package calendar

import (
	"time"

	"github.com/transitkit/txc-gtfs/model"
)

// Window is an inclusive date range, already clamped to
// ConversionOptions.CalendarStart/End where provided.
type Window struct {
	Start time.Time
	End   time.Time
}

// Generate expands profile over window into one GTFS calendar row plus any
// calendar_dates rows for bank-holiday and special-day operations. region
// selects which bank-holiday dates apply; pass RegionNone to suppress
// bank-holiday expansion entirely.
func Generate(profile *model.OperatingProfile, window Window, region Region) (*model.Calendar, []*model.CalendarDate, []model.Warning) {
	var warnings []model.Warning
	serviceID := ServiceID(profile)

	cal := &model.Calendar{
		ServiceID: serviceID,
		StartDate: window.Start.Format("20060102"),
		EndDate:   window.End.Format("20060102"),
	}

	if profile == nil {
		warnings = append(warnings, model.Warning{Kind: "missing_operating_profile", EntityType: "OperatingProfile", EntityID: serviceID, Reason: "no operating profile; defaulting to no service days"})
		return cal, nil, warnings
	}

	setWeekdays(cal, profile.RegularDayType, &warnings, serviceID)

	var dates []*model.CalendarDate
	if profile.BankHolidayOperation != nil && region != RegionNone {
		dates = append(dates, expandBankHolidays(serviceID, profile.BankHolidayOperation.DaysOfOperation, 1, window, region)...)
		dates = append(dates, expandBankHolidays(serviceID, profile.BankHolidayOperation.DaysOfNonOperation, 2, window, region)...)
	}
	if profile.SpecialDaysOperation != nil {
		dates = append(dates, expandRanges(serviceID, profile.SpecialDaysOperation.DaysOfOperation, 1, window)...)
		dates = append(dates, expandRanges(serviceID, profile.SpecialDaysOperation.DaysOfNonOperation, 2, window)...)
	}

	return cal, dates, warnings
}

func setWeekdays(cal *model.Calendar, dayType model.RegularDayType, warnings *[]model.Warning, serviceID string) {
	switch dayType.Kind {
	case model.DayTypeMondayToFriday:
		cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday, cal.Friday = true, true, true, true, true
	case model.DayTypeMondayToSaturday:
		cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday, cal.Friday, cal.Saturday = true, true, true, true, true, true
	case model.DayTypeWeekend:
		cal.Saturday, cal.Sunday = true, true
	case model.DayTypeAny:
		cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday = true, true, true, true
		cal.Friday, cal.Saturday, cal.Sunday = true, true, true
	case model.DayTypeHolidaysOnly:
		// all flags remain false; operation happens exclusively via
		// calendar_dates additions.
	case model.DayTypeSpecificDays:
		for _, d := range dayType.Days {
			switch d {
			case model.Monday:
				cal.Monday = true
			case model.Tuesday:
				cal.Tuesday = true
			case model.Wednesday:
				cal.Wednesday = true
			case model.Thursday:
				cal.Thursday = true
			case model.Friday:
				cal.Friday = true
			case model.Saturday:
				cal.Saturday = true
			case model.Sunday:
				cal.Sunday = true
			}
		}
	default: // DayTypeOther
		*warnings = append(*warnings, model.Warning{
			Kind: "unrecognized_day_type", EntityType: "OperatingProfile", EntityID: serviceID,
			Reason: "unrecognized RegularDayType " + dayType.Raw + "; no weekday service days assumed",
		})
	}
}

func expandBankHolidays(serviceID string, names []string, exceptionType int, window Window, region Region) []*model.CalendarDate {
	if len(names) == 0 {
		return nil
	}
	var out []*model.CalendarDate
	for year := window.Start.Year(); year <= window.End.Year(); year++ {
		holidays := BankHolidays(region, year)
		for _, name := range names {
			d, ok := holidays[name]
			if !ok {
				continue
			}
			if d.Before(window.Start) || d.After(window.End) {
				continue
			}
			out = append(out, &model.CalendarDate{ServiceID: serviceID, Date: d.Format("20060102"), ExceptionType: exceptionType})
		}
	}
	return out
}

func expandRanges(serviceID string, ranges []model.SpecialDayRange, exceptionType int, window Window) []*model.CalendarDate {
	var out []*model.CalendarDate
	for _, r := range ranges {
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if d.Before(window.Start) || d.After(window.End) {
				continue
			}
			out = append(out, &model.CalendarDate{ServiceID: serviceID, Date: d.Format("20060102"), ExceptionType: exceptionType})
		}
	}
	return out
}
