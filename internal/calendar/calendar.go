// Package calendar implements the civil-date arithmetic that the period
// builder needs: adding seconds to a date, reconciling wall/standard/UTC
// representations of the same instant, and converting to and from integer
// second counts. It assumes the proleptic Gregorian calendar and ignores
// leap seconds, mirroring the conventions of the tzdata package.
package calendar

import "time"

// Modifier identifies which clock a Civil value is expressed in.
type Modifier int

const (
	// Wall is the locally observed clock, including any DST adjustment.
	Wall Modifier = iota
	// Standard is the local clock ignoring DST.
	Standard
	// UTC is Coordinated Universal Time.
	UTC
)

func (m Modifier) String() string {
	switch m {
	case Wall:
		return "Wall"
	case Standard:
		return "Standard"
	case UTC:
		return "UTC"
	default:
		return "<UNDEFINED>"
	}
}

// Civil is a proleptic Gregorian civil date and time, second precision.
// It carries no modifier of its own; the modifier is supplied alongside
// it by callers that need to relate it to the other two representations.
type Civil struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// AddSeconds returns c shifted by the given number of seconds, which may
// be negative. It operates purely on the calendar; it has no notion of
// offsets or modifiers.
func AddSeconds(c Civil, seconds int64) Civil {
	return civilFromUnix(ToUnix(c) + seconds)
}

// Convert reinterprets c, understood as being expressed in the "from"
// modifier, as the "to" modifier, given the standard and local (DST)
// offsets in effect. The three modifiers relate to UTC as:
//
//	wall = standard + localOffset = utc + stdOffset + localOffset
func Convert(c Civil, from, to Modifier, stdOffset, localOffset int) Civil {
	utcSeconds := ToUnix(c) - offsetFromUTC(from, stdOffset, localOffset)
	return civilFromUnix(utcSeconds + offsetFromUTC(to, stdOffset, localOffset))
}

// offsetFromUTC returns the number of seconds that must be added to a UTC
// instant to obtain its representation under the given modifier.
func offsetFromUTC(m Modifier, stdOffset, localOffset int) int64 {
	switch m {
	case Wall:
		return int64(stdOffset) + int64(localOffset)
	case Standard:
		return int64(stdOffset)
	case UTC:
		return 0
	default:
		panic("calendar: invalid modifier")
	}
}

// ToUnix converts c, treated as a naive civil datetime with no associated
// modifier, to the number of seconds since the Unix epoch. It may be
// negative for dates before 1970.
func ToUnix(c Civil) int64 {
	days := daysFromCivil(c.Year, int(c.Month), c.Day)
	return days*secondsPerDay + int64(c.Hour)*secondsPerHour + int64(c.Minute)*secondsPerMinute + int64(c.Second)
}

// gregorianEpochOffsetDays is the number of days from 0000-01-01 to the
// Unix epoch, 1970-01-01. daysFromCivil already counts days relative to
// the Unix epoch, so GregorianSeconds only needs to add this constant.
const gregorianEpochOffsetDays = 719528

// GregorianSeconds returns the number of seconds from 0000-01-01 00:00:00
// to c, treating c as a naive civil datetime with no associated modifier.
func GregorianSeconds(c Civil) int64 {
	return ToUnix(c) + gregorianEpochOffsetDays*secondsPerDay
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FromUnix is the inverse of ToUnix.
func FromUnix(s int64) Civil {
	return civilFromUnix(s)
}

// civilFromUnix is the inverse of ToUnix.
func civilFromUnix(s int64) Civil {
	days := s / secondsPerDay
	rem := s % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	y, m, d := civilFromDays(days)
	return Civil{
		Year:   y,
		Month:  time.Month(m),
		Day:    d,
		Hour:   int(rem / secondsPerHour),
		Minute: int(rem % secondsPerHour / secondsPerMinute),
		Second: int(rem % secondsPerMinute),
	}
}

// daysFromCivil returns the number of days from the Unix epoch,
// 1970-01-01, to the given proleptic Gregorian date; it is negative for
// dates before the epoch. The internal year starts in March so that
// February, with its variable length, falls at the end, which keeps the
// arithmetic exact for all years, including negative ones.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}
