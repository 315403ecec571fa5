package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthPrefixes = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// ParseMonthYear parses display dates like "Jan 2022", "April 2026" or
// "Present". The result is the first day of the month in UTC.
func ParseMonthYear(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "present") {
		return now, true
	}

	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) < 3 {
		return time.Time{}, false
	}

	month, ok := monthPrefixes[strings.ToLower(fields[0][:3])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// Duration renders the span between two display dates as
// "2 years, 3 months". Unparseable dates yield an empty string.
func Duration(startDate, endDate string, now time.Time) string {
	start, ok := ParseMonthYear(startDate, now)
	if !ok {
		return ""
	}
	end, ok := ParseMonthYear(endDate, now)
	if !ok {
		return ""
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	years, rest := months/12, months%12

	switch {
	case years == 0:
		return plural(rest, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + ", " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// TruncateText cuts text to maxLength runes and appends an ellipsis.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
