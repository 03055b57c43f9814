// Package dateutil adds calendar intervals to dates.
//
// Year, quarter and month use calendar-field arithmetic through
// time.Time.AddDate, which normalizes overflow by carrying into the next
// field: 2021-01-31 plus one month is 2021-02-31, which normalizes to
// 2021-03-03. Week, day, hour, minute and second add a fixed duration, so
// a "day" across a DST change is 24 elapsed hours rather than one wall-clock
// day. Fixed offsets stay exact past the range of time.Duration; results
// further than maxUnixSeconds from the epoch are reported as not
// representable.
package dateutil

import (
	"math"
	"strings"
	"time"
)

// Unit names a calendar interval.
type Unit string

// Recognized units.
const (
	Year    Unit = "year"
	Quarter Unit = "quarter"
	Month   Unit = "month"
	Week    Unit = "week"
	Day     Unit = "day"
	Hour    Unit = "hour"
	Minute  Unit = "minute"
	Second  Unit = "second"
)

// Units lists every recognized unit, largest first.
var Units = []Unit{Year, Quarter, Month, Week, Day, Hour, Minute, Second}

// fixed holds the exact length of the sub-month units.
var fixed = map[Unit]time.Duration{
	Week:   7 * 24 * time.Hour,
	Day:    24 * time.Hour,
	Hour:   time.Hour,
	Minute: time.Minute,
	Second: time.Second,
}

// maxUnixSeconds bounds fixed-offset results to about ±273,790 years around
// the epoch.
const maxUnixSeconds = 8_640_000_000_000

// ParseUnit maps s, in any case, to a Unit.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Units {
		if u == known {
			return u, true
		}
	}
	return "", false
}

// Add returns t moved by amount of the named unit. The second result is
// false, with a zero time, when unit is not recognized or the result lies
// outside the representable range.
func Add(t time.Time, unit string, amount int) (time.Time, bool) {
	u, ok := ParseUnit(unit)
	if !ok {
		return time.Time{}, false
	}
	return AddUnit(t, u, amount)
}

// AddUnit is Add for an already parsed Unit.
func AddUnit(t time.Time, u Unit, amount int) (time.Time, bool) {
	switch u {
	case Year:
		return t.AddDate(amount, 0, 0), true
	case Quarter:
		return t.AddDate(0, 3*amount, 0), true
	case Month:
		return t.AddDate(0, amount, 0), true
	}
	d, ok := fixed[u]
	if !ok {
		return time.Time{}, false
	}
	return shift(t, d, int64(amount))
}

// shift adds n steps of d to t. Products that fit a time.Duration use
// t.Add; larger ones are computed in whole seconds, which every fixed unit
// divides.
func shift(t time.Time, d time.Duration, n int64) (time.Time, bool) {
	step := int64(d)
	if lim := math.MaxInt64 / step; n <= lim && n >= -lim {
		return t.Add(time.Duration(n * step)), true
	}
	secs := step / int64(time.Second)
	if lim := 2 * maxUnixSeconds / secs; n > lim || n < -lim {
		return time.Time{}, false
	}
	unix := t.Unix()
	if unix > maxUnixSeconds || unix < -maxUnixSeconds {
		return time.Time{}, false
	}
	sum := unix + n*secs
	if sum > maxUnixSeconds || sum < -maxUnixSeconds {
		return time.Time{}, false
	}
	return time.Unix(sum, int64(t.Nanosecond())).In(t.Location()), true
}
