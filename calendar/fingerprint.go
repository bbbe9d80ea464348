package calendar

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/transitkit/txc-gtfs/model"
)

// Fingerprint returns a stable, deterministic textual fingerprint of an
// OperatingProfile: two profiles with identical operating semantics always
// fingerprint identically, regardless of element ordering in the source
// document.
func Fingerprint(p *model.OperatingProfile) string {
	if p == nil {
		return "nil"
	}
	s := fmt.Sprintf("day=%d", p.RegularDayType.Kind)
	if p.RegularDayType.Kind == model.DayTypeSpecificDays {
		s += fmt.Sprintf(":%v", p.RegularDayType.Days)
	}
	if p.RegularDayType.Kind == model.DayTypeOther {
		s += ":" + p.RegularDayType.Raw
	}
	if p.BankHolidayOperation != nil {
		s += ";bh+" + joinSorted(p.BankHolidayOperation.DaysOfOperation)
		s += ";bh-" + joinSorted(p.BankHolidayOperation.DaysOfNonOperation)
	}
	if p.SpecialDaysOperation != nil {
		s += ";sd+" + joinRanges(p.SpecialDaysOperation.DaysOfOperation)
		s += ";sd-" + joinRanges(p.SpecialDaysOperation.DaysOfNonOperation)
	}
	if len(p.ServicingOrganisations) > 0 {
		s += ";so" + joinSorted(p.ServicingOrganisations)
	}
	return s
}

// ServiceID derives the GTFS service_id for an OperatingProfile:
// "calendar_{sha1(fingerprint)[:8]}".
func ServiceID(p *model.OperatingProfile) string {
	sum := sha1.Sum([]byte(Fingerprint(p)))
	return "calendar_" + hex.EncodeToString(sum[:])[:8]
}

func joinSorted(items []string) string {
	cp := append([]string(nil), items...)
	sort.Strings(cp)
	out := ""
	for _, i := range cp {
		out += "," + i
	}
	return out
}

func joinRanges(ranges []model.SpecialDayRange) string {
	out := ""
	for _, r := range ranges {
		out += fmt.Sprintf(",%s..%s", r.Start.Format("20060102"), r.End.Format("20060102"))
	}
	return out
}
