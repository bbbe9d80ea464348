package txcparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxTimeOfDay is the latest accepted seconds-from-midnight value,
// 47:59:59, accommodating overnight trips per the spec.
const maxTimeOfDay = (47*3600 + 59*60 + 59) * time.Second

// parseTimeOfDay normalizes "HH:MM[:SS]" to a duration of seconds-from-
// midnight. Rejects negative values and anything past 47:59:59.
func parseTimeOfDay(s string) (time.Duration, error) {
	orig := s
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("time %q: expected HH:MM[:SS]", orig)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 {
		return 0, fmt.Errorf("time %q: bad hours", orig)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time %q: bad minutes", orig)
	}
	ss := 0
	if len(parts) == 3 {
		ss, err = strconv.Atoi(parts[2])
		if err != nil || ss < 0 || ss > 59 {
			return 0, fmt.Errorf("time %q: bad seconds", orig)
		}
	}
	total := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second
	if total > maxTimeOfDay {
		return 0, fmt.Errorf("time %q: exceeds 47:59:59", orig)
	}
	return total, nil
}

// parseCivilDate parses a TXC "YYYY-MM-DD" date.
func parseCivilDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
