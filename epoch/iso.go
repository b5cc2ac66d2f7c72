package epoch

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	isoPattern = regexp.MustCompile(
		`^(-?\d{1,6})-(\d{1,2})-(\d{1,2})(?:[Tt](\d{1,2}):(\d{1,2})(?::(\d{1,2}(?:\.\d+)?))?)?$`)
	shortFormPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
)

// ParseISOToJD parses a FITS-style date/time string of the form
// "YYYY-MM-DD[THH:MM:SS[.s]]", or the "DD/MM/YY" shortform, and
// returns the corresponding Julian date (spec.md §4.2).
func ParseISOToJD(s string) (float64, error) {
	if m := isoPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		frac, err := dayFraction(m[4], m[5], m[6])
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrParse, s, err)
		}
		return CalendarToJD(year, month, float64(day)+frac), nil
	}
	if m := shortFormPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		yy, _ := strconv.Atoi(m[3])
		year := 1900 + yy
		if yy < 70 {
			year = 2000 + yy
		}
		return CalendarToJD(year, month, float64(day)), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrParse, s)
}

// ParseISOToModifiedJD parses the same forms as ParseISOToJD and
// returns a modified Julian date.
func ParseISOToModifiedJD(s string) (float64, error) {
	jd, err := ParseISOToJD(s)
	if err != nil {
		return 0, err
	}
	return jd - JulianDayModifiedOffset, nil
}

func dayFraction(hh, mm, ss string) (float64, error) {
	if hh == "" {
		return 0, nil
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, err
	}
	var m int
	if mm != "" {
		m, err = strconv.Atoi(mm)
		if err != nil {
			return 0, err
		}
	}
	var s float64
	if ss != "" {
		s, err = strconv.ParseFloat(ss, 64)
		if err != nil {
			return 0, err
		}
	}
	return (float64(h)*3600 + float64(m)*60 + s) / 86400, nil
}
