package txcparser

import (
	"github.com/transitkit/txc-gtfs/model"
)

// parseOperatingProfile extracts an OperatingProfile from a TXC
// <OperatingProfile> node. Special-day ranges with an unparseable StartDate
// are skipped with a warning; an unparseable EndDate makes the range a
// single day at its StartDate, with no warning. The profile itself is never
// dropped for a bad sub-element.
func parseOperatingProfile(n *node, warn warnFunc, entityType, entityID string) *model.OperatingProfile {
	profile := &model.OperatingProfile{
		RegularDayType: parseRegularDayType(n.child("RegularDayType")),
	}

	if bh := n.child("BankHolidayOperation"); bh != nil {
		profile.BankHolidayOperation = &model.BankHolidayOperation{
			DaysOfOperation:    holidayNames(bh.child("DaysOfOperation")),
			DaysOfNonOperation: holidayNames(bh.child("DaysOfNonOperation")),
		}
	}

	if sd := n.child("SpecialDaysOperation"); sd != nil {
		special := &model.SpecialDaysOperation{}
		special.DaysOfOperation = parseDateRanges(sd.child("DaysOfOperation"), warn, entityType, entityID)
		special.DaysOfNonOperation = parseDateRanges(sd.child("DaysOfNonOperation"), warn, entityType, entityID)
		profile.SpecialDaysOperation = special
	}

	if so := n.child("ServicedOrganisationDayType"); so != nil {
		for _, ref := range so.allChildren("ServicedOrganisationRef") {
			profile.ServicingOrganisations = append(profile.ServicingOrganisations, ref.text)
		}
	}

	return profile
}

func holidayNames(container *node) []string {
	if container == nil {
		return nil
	}
	var out []string
	for _, c := range container.children {
		out = append(out, c.name)
	}
	return out
}

func parseDateRanges(container *node, warn warnFunc, entityType, entityID string) []model.SpecialDayRange {
	if container == nil {
		return nil
	}
	var out []model.SpecialDayRange
	for _, dr := range container.allChildren("DateRange") {
		startText := dr.childText("StartDate")
		endText := dr.childText("EndDate")
		start, err := parseCivilDate(startText)
		if err != nil {
			warn("malformed_element", entityType, entityID, "unparseable special day StartDate: "+err.Error())
			continue
		}
		end := start
		if endText != "" {
			if e, err := parseCivilDate(endText); err == nil {
				end = e
			}
		}
		out = append(out, model.SpecialDayRange{Start: start, End: end})
	}
	return out
}

var weekdayElementNames = map[string]model.DayOfWeek{
	"Monday":    model.Monday,
	"Tuesday":   model.Tuesday,
	"Wednesday": model.Wednesday,
	"Thursday":  model.Thursday,
	"Friday":    model.Friday,
	"Saturday":  model.Saturday,
	"Sunday":    model.Sunday,
}

func parseRegularDayType(n *node) model.RegularDayType {
	if n == nil {
		// Element entirely absent: TXC's default is every day.
		return model.RegularDayType{Kind: model.DayTypeAny}
	}

	if days := n.child("DaysOfWeek"); days != nil {
		switch {
		case days.child("MondayToFriday") != nil:
			return model.RegularDayType{Kind: model.DayTypeMondayToFriday}
		case days.child("MondayToSaturday") != nil:
			return model.RegularDayType{Kind: model.DayTypeMondayToSaturday}
		case days.child("Weekend") != nil:
			return model.RegularDayType{Kind: model.DayTypeWeekend}
		}
		var explicit []model.DayOfWeek
		for name, dow := range weekdayElementNames {
			if days.child(name) != nil {
				explicit = append(explicit, dow)
			}
		}
		if len(explicit) > 0 {
			return model.RegularDayType{Kind: model.DayTypeSpecificDays, Days: sortDays(explicit)}
		}
	}

	if n.child("HolidaysOnly") != nil {
		return model.RegularDayType{Kind: model.DayTypeHolidaysOnly}
	}

	raw := n.text
	if raw == "" {
		return model.RegularDayType{Kind: model.DayTypeAny}
	}
	return model.RegularDayType{Kind: model.DayTypeOther, Raw: raw}
}

func sortDays(days []model.DayOfWeek) []model.DayOfWeek {
	// Stable Monday..Sunday ordering, small fixed set so a simple
	// selection pass is clearer than pulling in sort.Slice.
	out := make([]model.DayOfWeek, 0, len(days))
	for d := model.Monday; d <= model.Sunday; d++ {
		for _, have := range days {
			if have == d {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
