package calendar

import "time"

// Region is the closed set of UK bank-holiday jurisdictions a conversion
// can select, matching ConversionOptions.Region.
type Region int

const (
	RegionNone Region = iota
	RegionEngland
	RegionScotland
	RegionWales
	RegionNorthernIreland
)

// BankHolidays returns the named bank holidays observed in region for the
// given year, keyed by the TXC BankHolidayOperation element name (e.g.
// "ChristmasDay", "GoodFriday"). England and Wales share an identical
// holiday set; Scotland and Northern Ireland each diverge on several dates,
// per UK government bank holiday conventions.
func BankHolidays(region Region, year int) map[string]time.Time {
	easter := calculateEaster(year)
	out := map[string]time.Time{
		"NewYearsDay":  date(year, time.January, 1),
		"ChristmasDay": observedFixed(year, time.December, 25),
		"BoxingDay":    observedBoxingDay(year),
		"GoodFriday":   easter.AddDate(0, 0, -2),
		"MayDay":       firstMondayOnOrAfter(year, time.May, 1),
	}

	switch region {
	case RegionScotland:
		out["2ndJanuary"] = observedFixed(year, time.January, 2)
		out["SummerBankHoliday"] = firstMondayOnOrAfter(year, time.August, 1)
		out["StAndrewsDay"] = date(year, time.November, 30)
	default:
		// England, Wales, Northern Ireland, and unset-region requests all
		// observe the August bank holiday on the last Monday of August.
		out["EasterMonday"] = easter.AddDate(0, 0, 1)
		out["SpringBankHoliday"] = lastMondayOf(year, time.May)
		out["SummerBankHoliday"] = lastMondayOf(year, time.August)
	}

	if region == RegionNorthernIreland {
		out["StPatricksDay"] = observedFixed(year, time.March, 17)
		out["BattleOfTheBoyne"] = date(year, time.July, 12)
	}

	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// observedFixed shifts a fixed date that falls on a weekend to the next
// available weekday, the standard UK "in lieu" substitution rule.
func observedFixed(year int, month time.Month, day int) time.Time {
	d := date(year, month, day)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// observedBoxingDay applies the same in-lieu rule as observedFixed, but
// must also avoid colliding with an already-shifted Christmas Day.
func observedBoxingDay(year int) time.Time {
	d := date(year, time.December, 26)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 2)
	case time.Monday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func firstMondayOnOrAfter(year int, month time.Month, day int) time.Time {
	d := date(year, month, day)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func lastMondayOf(year int, month time.Month) time.Time {
	// Start at the last day of the month and walk backwards.
	d := date(year, month+1, 0)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// calculateEaster computes Easter Sunday via the Gregorian Western algorithm.
func calculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseRegion maps the ConversionOptions.Region enum string to a Region.
func ParseRegion(s string) Region {
	switch s {
	case "england":
		return RegionEngland
	case "scotland":
		return RegionScotland
	case "wales":
		return RegionWales
	case "northern_ireland":
		return RegionNorthernIreland
	default:
		return RegionNone
	}
}
