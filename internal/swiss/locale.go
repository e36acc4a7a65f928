// Package swiss parses and formats Swiss-locale dates and numbers as they
// appear in ZKB statement exports: dates as DD.MM.YYYY, numbers with an
// apostrophe thousands separator and a comma decimal separator.
package swiss

import (
	"strconv"
	"strings"
	"time"
)

// DateFormat is the statement date layout.
const DateFormat = "02.01.2006"

// ParseDate parses a DD.MM.YYYY date. It reports ok=false for blank input or
// anything that does not split into three numeric parts. Day and month ranges
// are deliberately not validated: out-of-range components roll over via the
// normal time.Date arithmetic (31.04 becomes 01.05), matching the bank
// exports' own tolerance.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ParseNumber parses a Swiss-formatted decimal like "1'234,56". Blank or
// unparsable input yields 0; this is a silent fallback, not an error, so
// empty numeric columns read as zero.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	cleaned := strings.ReplaceAll(s, "'", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatDate renders a date as DD.MM.YYYY for export.
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// FormatNumber renders an amount with two decimals and a comma separator.
// Zero renders as the empty string, mirroring the empty numeric columns of
// the input format.
func FormatNumber(f float64) string {
	if f == 0 {
		return ""
	}
	return strings.Replace(strconv.FormatFloat(f, 'f', 2, 64), ".", ",", 1)
}
