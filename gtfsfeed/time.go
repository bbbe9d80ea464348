package gtfsfeed

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeOfDay converts a GTFS "H:MM:SS" or "HH:MM:SS" field into seconds
// from midnight. Hours may exceed 23 for overnight trips; negative values
// and malformed strings are rejected.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected H:MM:SS, found %d parts in %q", len(parts), s)
	}
	hms := [3]int{}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("non-integer component %q in %q", p, s)
		}
		hms[i] = v
	}
	if hms[0] < 0 {
		return 0, fmt.Errorf("negative hour in %q", s)
	}
	if hms[1] < 0 || hms[1] > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hms[2] < 0 || hms[2] > 59 {
		return 0, fmt.Errorf("invalid second in %q", s)
	}
	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}

// FormatTimeOfDay renders seconds-from-midnight as "HH:MM:SS", preserving
// hours beyond 23 for overnight trips.
func FormatTimeOfDay(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
