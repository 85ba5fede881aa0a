// Package temporal implements the proleptic-Gregorian date/time conversions
// used to encode and decode Bolt's temporal structures: epoch-day and
// nanosecond-of-day arithmetic, and the ISO-8601 string forms used in error
// messages and debug logging. The algorithms mirror java.time's (JSR-310)
// LocalDate/LocalTime/LocalDateTime, since that's what the wire format's
// temporal extension types were designed against.
package temporal

import (
	"fmt"

	"github.com/packstream-go/bolt/packstream/bigint"
)

// daysPer400YearCycle and daysZeroToNineteenSeventy anchor the epoch-day
// conversion: the Gregorian calendar repeats exactly every 400 years, and
// the offset is the number of days from 0000-01-01 to 1970-01-01.
// EpochDayToDate subtracts a further 60 days to count from 0000-03-01.
const (
	daysPer400YearCycle       = 146097
	daysZeroToNineteenSeventy = 719528
)

// Date is a civil calendar date with no time-of-day or offset component.
// Year may be zero or negative; there is no year-zero exclusion, matching
// the proleptic Gregorian calendar used by the wire format.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsLeapYear reports whether y is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except centuries, except those divisible by 400.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DateToEpochDay converts a civil date to the number of days since the Unix
// epoch (1970-01-01), which may be negative for dates before it.
func DateToEpochDay(d Date) int64 {
	y := bigint.FromInt64(int64(d.Year))
	m := int64(d.Month)

	total := y.Mul(bigint.FromInt64(365))
	if d.Year >= 0 {
		total = total.Add(y.Add(bigint.FromInt64(3)).Div(bigint.FromInt64(4)))
		total = total.Sub(y.Add(bigint.FromInt64(99)).Div(bigint.FromInt64(100)))
		total = total.Add(y.Add(bigint.FromInt64(399)).Div(bigint.FromInt64(400)))
	} else {
		total = total.Sub(y.Div(bigint.FromInt64(-4)))
		total = total.Add(y.Div(bigint.FromInt64(-100)))
		total = total.Sub(y.Div(bigint.FromInt64(-400)))
	}

	total = total.Add(bigint.FromInt64((m*367 - 362) / 12))
	total = total.Add(bigint.FromInt64(int64(d.Day) - 1))

	if m > 2 {
		total = total.Sub(bigint.FromInt64(1))
		if !IsLeapYear(d.Year) {
			total = total.Sub(bigint.FromInt64(1))
		}
	}

	total = total.Sub(bigint.FromInt64(daysZeroToNineteenSeventy))
	return total.Int64()
}

// EpochDayToDate is the inverse of DateToEpochDay.
func EpochDayToDate(epochDay int64) Date {
	zeroDay := epochDay + daysZeroToNineteenSeventy - 60

	adjust := int64(0)
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPer400YearCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPer400YearCycle
	}

	yearEst := (400*zeroDay + 591) / daysPer400YearCycle
	dayEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if dayEst < 0 {
		yearEst--
		dayEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust

	marchDayOfYear := dayEst
	marchMonth := (marchDayOfYear*5 + 2) / 153
	day := marchDayOfYear - (marchMonth*306+5)/10 + 1
	month := (marchMonth+2)%12 + 1
	year := yearEst + marchMonth/10

	return Date{Year: int(year), Month: int(month), Day: int(day)}
}

// DateToIsoString formats a date as [-]YYYY-MM-DD, zero-padding the year to at
// least 4 digits and prefixing a sign for negative years.
func DateToIsoString(year, month, day int) string {
	sign := ""
	y := year
	if y < 0 {
		sign = "-"
		y = -y
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, y, month, day)
}
