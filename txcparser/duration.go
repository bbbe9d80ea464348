package txcparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseISODuration normalizes an ISO-8601-style duration such as "PT1M30S"
// or "PT00H05M" to a time.Duration. Accepts lowercase variants and omitted
// components (hours/minutes/seconds are each optional); rejects anything
// without a "P" prefix.
func parseISODuration(s string) (time.Duration, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "P") {
		return 0, fmt.Errorf("duration %q: missing P prefix", orig)
	}
	rest := upper[1:]
	timePart := ""
	if idx := strings.IndexByte(rest, 'T'); idx >= 0 {
		// Date part (days/weeks) before T is not used by TXC run times,
		// but is tolerated and ignored.
		timePart = rest[idx+1:]
	} else {
		timePart = rest
	}

	var hours, minutes int
	var seconds float64

	num := strings.Builder{}
	for _, c := range timePart {
		switch {
		case c >= '0' && c <= '9', c == '.':
			num.WriteRune(c)
		case c == 'H':
			v, err := strconv.Atoi(num.String())
			if err != nil {
				return 0, fmt.Errorf("duration %q: bad hours component", orig)
			}
			hours = v
			num.Reset()
		case c == 'M':
			v, err := strconv.Atoi(num.String())
			if err != nil {
				return 0, fmt.Errorf("duration %q: bad minutes component", orig)
			}
			minutes = v
			num.Reset()
		case c == 'S':
			v, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return 0, fmt.Errorf("duration %q: bad seconds component", orig)
			}
			seconds = v
			num.Reset()
		default:
			return 0, fmt.Errorf("duration %q: unexpected character %q", orig, c)
		}
	}
	if num.Len() > 0 {
		return 0, fmt.Errorf("duration %q: trailing digits without unit", orig)
	}

	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
	return total, nil
}
