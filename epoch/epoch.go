// Copyright 2026 The astrowcs authors
// License: MIT

// Package epoch parses the epoch and date strings that appear in WCS
// headers (EQUINOX, DATE-OBS, MJD-OBS) and converts between the three
// representations astronomy code needs: Besselian year, Julian year,
// and Julian date.
//
// The Besselian/Julian <-> JD identities and the Gregorian/Julian
// calendar-to-JD conversion are the same ones used throughout
// "Astronomical Algorithms" (Meeus, ch. 7 and ch. 21); this package
// follows the teacher's (github.com/soniakeys/meeus) constants and
// FloorDiv-based integer arithmetic for CalendarToJD, generalized to
// accept the calendar/epoch spellings a FITS header actually uses.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrParse is returned when an epoch or date string cannot be parsed.
var ErrParse = errors.New("epoch: malformed epoch or date string")

// JulianDayModifiedOffset is the Julian date of MJD 0.
const JulianDayModifiedOffset = 2400000.5

// B1950 and J2000 anchor the Besselian and Julian year identities
// (spec.md §4.2).
const (
	besselianAnchorJD   = 2433282.4235
	besselianAnchorYear = 1950.0
	besselianYearLength = 365.242198781

	julianAnchorJD   = 2451545.0
	julianAnchorYear = 2000.0
	julianYearLength = 365.25
)

// Epoch is the triple (Besselian year, Julian year, Julian date)
// returned by Parse. The three fields describe the same instant.
type Epoch struct {
	Bessel float64
	Julian float64
	JD     float64
}

// BesselianToJD converts a Besselian epoch year to a Julian date.
func BesselianToJD(b float64) float64 {
	return besselianAnchorJD + (b-besselianAnchorYear)*besselianYearLength
}

// JDToBesselian converts a Julian date to a Besselian epoch year.
func JDToBesselian(jd float64) float64 {
	return besselianAnchorYear + (jd-besselianAnchorJD)/besselianYearLength
}

// JulianEpochToJD converts a Julian epoch year to a Julian date.
func JulianEpochToJD(j float64) float64 {
	return julianAnchorJD + (j-julianAnchorYear)*julianYearLength
}

// JDToJulianEpoch converts a Julian date to a Julian epoch year.
func JDToJulianEpoch(jd float64) float64 {
	return julianAnchorYear + (jd-julianAnchorJD)/julianYearLength
}

// FromJD builds an Epoch triple from a Julian date.
func FromJD(jd float64) Epoch {
	return Epoch{Bessel: JDToBesselian(jd), Julian: JDToJulianEpoch(jd), JD: jd}
}

// FromBesselian builds an Epoch triple from a Besselian epoch year.
func FromBesselian(b float64) Epoch {
	return FromJD(BesselianToJD(b))
}

// FromJulianEpoch builds an Epoch triple from a Julian epoch year.
func FromJulianEpoch(j float64) Epoch {
	return FromJD(JulianEpochToJD(j))
}

var (
	besselPattern = regexp.MustCompile(`^[Bb](-?[0-9.]+)$`)
	julianPattern = regexp.MustCompile(`^[Jj](-?[0-9.]+)$`)
	mjdPattern    = regexp.MustCompile(`^(?i)MJD(-?[0-9.]+)$`)
	jdPattern     = regexp.MustCompile(`^(?i)JD(-?[0-9.]+)$`)
	fitsPattern   = regexp.MustCompile(`^[Ff](.+)$`)
	barePattern   = regexp.MustCompile(`^-?[0-9.]+$`)
)

// Parse parses an epoch/date specification and returns the equivalent
// (Besselian, Julian, JD) triple. Recognised forms (spec.md §4.2):
//
//	"B1950"                Besselian year
//	"J2000"                Julian year
//	"MJD53005.0"           modified Julian date
//	"JD2451545.0"          Julian date
//	"F2007-01-14T13:18:59.9" FITS-style calendar date/time
//	"2000"                 bare year, treated as Julian
func Parse(spec string) (Epoch, error) {
	switch {
	case besselPattern.MatchString(spec):
		y, err := strconv.ParseFloat(besselPattern.FindStringSubmatch(spec)[1], 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
		}
		return FromBesselian(y), nil
	case mjdPattern.MatchString(spec):
		v, err := strconv.ParseFloat(mjdPattern.FindStringSubmatch(spec)[1], 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
		}
		return FromJD(v + JulianDayModifiedOffset), nil
	case jdPattern.MatchString(spec):
		v, err := strconv.ParseFloat(jdPattern.FindStringSubmatch(spec)[1], 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
		}
		return FromJD(v), nil
	case fitsPattern.MatchString(spec):
		jd, err := ParseISOToJD(fitsPattern.FindStringSubmatch(spec)[1])
		if err != nil {
			return Epoch{}, err
		}
		return FromJD(jd), nil
	case julianPattern.MatchString(spec):
		y, err := strconv.ParseFloat(julianPattern.FindStringSubmatch(spec)[1], 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
		}
		return FromJulianEpoch(y), nil
	case barePattern.MatchString(spec):
		y, err := strconv.ParseFloat(spec, 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
		}
		return FromJulianEpoch(y), nil
	default:
		return Epoch{}, fmt.Errorf("%w: %s", ErrParse, spec)
	}
}

// gregorianStartJD is the JD of 1582-10-15 00:00 UT, the first day of
// the Gregorian calendar; dates before it use the Julian calendar
// formula.
const gregorianStartJD = 2299160.5

// CalendarToJD converts a proleptic calendar year, month, and
// fractional day to Julian date, using the Julian calendar formula
// before 1582-10-15 and the Gregorian formula on or after it (spec.md
// §4.2), exactly as Meeus ch. 7 describes.
func CalendarToJD(y, m int, d float64) float64 {
	jdGregorian := calendarGregorianToJD(y, m, d)
	if jdGregorian >= gregorianStartJD {
		return jdGregorian
	}
	return calendarJulianToJD(y, m, d)
}

func calendarGregorianToJD(y, m int, d float64) float64 {
	if m <= 2 {
		y--
		m += 12
	}
	a := floorDiv(y, 100)
	b := 2 - a + floorDiv(a, 4)
	return float64(floorDiv64(36525*int64(y+4716), 100)) +
		float64(floorDiv(306*(m+1), 10)+b) + d - 1524.5
}

func calendarJulianToJD(y, m int, d float64) float64 {
	if m <= 2 {
		y--
		m += 12
	}
	return float64(floorDiv64(36525*int64(y+4716), 100)) +
		float64(floorDiv(306*(m+1), 10)) + d - 1524.5
}

func floorDiv(x, y int) int {
	if (x < 0) == (y < 0) {
		return x / y
	}
	return x/y - 1
}

func floorDiv64(x, y int64) int64 {
	if (x < 0) == (y < 0) {
		return x / y
	}
	return x/y - 1
}

// JDToCalendarGregorian returns the proleptic Gregorian calendar date
// for a Julian date, regardless of whether jd falls before the actual
// Gregorian calendar start.
func JDToCalendarGregorian(jd float64) (year, month int, day float64) {
	zf, f := math.Modf(jd + .5)
	z := int64(zf)
	alpha := floorDiv64(z*100-186721625, 3652425)
	a := z + 1 + alpha - floorDiv64(alpha, 4)
	b := a + 1524
	c := floorDiv64(b*100-12210, 36525)
	dd := floorDiv64(36525*c, 100)
	e := int(floorDiv64((b-dd)*1e4, 306001))
	day = float64(int(b-dd)-floorDiv(306001*e, 1e4)) + f
	switch e {
	default:
		month = e - 1
	case 14, 15:
		month = e - 13
	}
	switch month {
	default:
		year = int(c) - 4716
	case 1, 2:
		year = int(c) - 4715
	}
	return
}
