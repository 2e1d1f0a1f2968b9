// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// systemdTable implements the identifier set accepted by systemd's time
// span syntax (systemd.time(7)): short unit letters plus the long
// singular/plural spellings, bucketed by byte length and compared
// byte-for-byte rather than through a map, since the identifier set is
// small, fixed and known at compile time.
type systemdTable struct{}

// Systemd returns the TimeUnitTable accepted by systemd-style time spans:
// ns, us, µs, ms, s, m, h, d, w, M, y and their long-form singular/plural
// spellings (nsec, usec, msec, sec, second, seconds, min, minute,
// minutes, hr, hour, hours, day, days, week, weeks, month, months, year,
// years).
func Systemd() TimeUnitTable { return systemdTable{} }

func (systemdTable) IsEmpty() bool { return false }

func (systemdTable) Get(identifier string) (Entry, bool) {
	u, ok := systemdGet(identifier)
	if !ok {
		return Entry{}, false
	}
	return Entry{Unit: u, Multiplier: Identity}, true
}

func systemdGet(id string) (TimeUnit, bool) {
	switch len(id) {
	case 1:
		switch id {
		case "s":
			return Second, true
		case "m":
			return Minute, true
		case "h":
			return Hour, true
		case "d":
			return Day, true
		case "w":
			return Week, true
		case "M":
			return Month, true
		case "y":
			return Year, true
		}
	case 2:
		switch id {
		case "ns":
			return Nanosecond, true
		case "us":
			return Microsecond, true
		case "ms":
			return Millisecond, true
		case "hr":
			return Hour, true
		}
	case 3:
		switch id {
		case "\xc2\xb5s": // µs, UTF-8 encoded
			return Microsecond, true
		case "sec":
			return Second, true
		case "min":
			return Minute, true
		case "day":
			return Day, true
		}
	case 4:
		switch id {
		case "nsec":
			return Nanosecond, true
		case "usec":
			return Microsecond, true
		case "msec":
			return Millisecond, true
		case "hour":
			return Hour, true
		case "days":
			return Day, true
		case "week":
			return Week, true
		case "year":
			return Year, true
		}
	case 5:
		switch id {
		case "hours":
			return Hour, true
		case "weeks":
			return Week, true
		case "month":
			return Month, true
		case "years":
			return Year, true
		}
	case 6:
		switch id {
		case "second":
			return Second, true
		case "minute":
			return Minute, true
		case "months":
			return Month, true
		}
	case 7:
		switch id {
		case "seconds":
			return Second, true
		case "minutes":
			return Minute, true
		}
	}
	return 0, false
}
