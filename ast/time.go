package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeCentiseconds parses an ASS timestamp of the form H:MM:SS.cc (one digit hour,
// two-digit minute and second, two-digit centisecond) into total centiseconds. It enforces the
// constraint from spec.md §8: 0 <= minutes < 60, 0 <= seconds < 60, 0 <= centiseconds < 100.
func ParseTimeCentiseconds(s string) (int, error) {
	s = strings.TrimSpace(s)

	hmsParts := strings.SplitN(s, ":", 3)
	if len(hmsParts) != 3 {
		return 0, fmt.Errorf("malformed time %q: expected H:MM:SS.cc", s)
	}

	hours, err := strconv.Atoi(hmsParts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: bad hour: %w", s, err)
	}

	minutes, err := strconv.Atoi(hmsParts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: bad minute: %w", s, err)
	}
	if minutes < 0 || minutes >= 60 {
		return 0, fmt.Errorf("malformed time %q: minute %d out of range [0,60)", s, minutes)
	}

	secParts := strings.SplitN(hmsParts[2], ".", 2)
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: bad second: %w", s, err)
	}
	if seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("malformed time %q: second %d out of range [0,60)", s, seconds)
	}

	centiseconds := 0
	if len(secParts) == 2 {
		frac := secParts[1]
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		centiseconds, err = strconv.Atoi(frac)
		if err != nil {
			return 0, fmt.Errorf("malformed time %q: bad centisecond: %w", s, err)
		}
	}
	if centiseconds < 0 || centiseconds >= 100 {
		return 0, fmt.Errorf("malformed time %q: centisecond %d out of range [0,100)", s, centiseconds)
	}

	total := hours*360000 + minutes*6000 + seconds*100 + centiseconds
	return total, nil
}

// FormatTimeCentiseconds renders total centiseconds back to ASS's H:MM:SS.cc form.
func FormatTimeCentiseconds(cs int) string {
	if cs < 0 {
		cs = 0
	}
	hours := cs / 360000
	cs -= hours * 360000
	minutes := cs / 6000
	cs -= minutes * 6000
	seconds := cs / 100
	cs -= seconds * 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, cs)
}

// SaturatingSub returns max(a-b, 0), the duration rule from spec.md §3 and §8.
func SaturatingSub(a, b int) int {
	d := a - b
	if d < 0 {
		return 0
	}
	return d
}
