package temporal

import "github.com/packstream-go/bolt/packstream/bigint"

// LocalDateTime pairs a Date with a LocalTime, with no time zone or offset.
type LocalDateTime struct {
	Date Date
	Time LocalTime
}

// LocalDateTimeToEpochSecond converts dt to the number of whole seconds
// since the Unix epoch (ignoring dt.Time.Nano, which the caller carries
// alongside separately on the wire).
func LocalDateTimeToEpochSecond(dt LocalDateTime) int64 {
	epochDay := DateToEpochDay(dt.Date)
	secondsOfDay := int64(dt.Time.Hour)*3600 + int64(dt.Time.Minute)*60 + int64(dt.Time.Second)
	return epochDay*secondsPerDay + secondsOfDay
}

// EpochSecondAndNanoToLocalDateTime is the inverse of
// LocalDateTimeToEpochSecond. nano is the nanosecond-of-second component,
// expected already normalized to [0, 1e9) (see Duration's constructor for
// why this package requires normalized input rather than folding it in).
func EpochSecondAndNanoToLocalDateTime(epochSecond int64, nano int64) LocalDateTime {
	es := bigint.FromInt64(epochSecond)
	epochDay := FloorDiv(es, secondsPerDay).Int64()
	secondsOfDay := FloorMod(es, secondsPerDay).Int64()

	date := EpochDayToDate(epochDay)
	t := NanoOfDayToLocalTime(secondsOfDay*nanosPerSecond + nano)
	return LocalDateTime{Date: date, Time: t}
}

// FloorDiv divides a by n, a plain int64 divisor, rounding toward negative
// infinity.
func FloorDiv(a bigint.Int, n int64) bigint.Int {
	return a.FloorDiv(bigint.FromInt64(n))
}

// FloorMod is the remainder consistent with FloorDiv: always the same sign
// as n.
func FloorMod(a bigint.Int, n int64) bigint.Int {
	return a.FloorMod(bigint.FromInt64(n))
}
