package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packstream-go/bolt/temporal"
)

func TestIsLeapYear(t *testing.T) {
	for _, y := range []int{2000, 2400, 1600, 2024} {
		assert.Truef(t, temporal.IsLeapYear(y), "expected %d to be a leap year", y)
	}
	for _, y := range []int{1900, 2100, 2300, 2023} {
		assert.Falsef(t, temporal.IsLeapYear(y), "expected %d not to be a leap year", y)
	}
}

func TestDateEpochDayRoundTrip(t *testing.T) {
	dates := []temporal.Date{
		{Year: 1970, Month: 1, Day: 1},
		{Year: 1969, Month: 12, Day: 31},
		{Year: 2024, Month: 2, Day: 29},
		{Year: 1, Month: 1, Day: 1},
		{Year: 0, Month: 1, Day: 1},
		{Year: -1, Month: 12, Day: 31},
		{Year: -9999, Month: 1, Day: 1},
		{Year: 9999, Month: 12, Day: 31},
		{Year: 2000, Month: 6, Day: 15},
	}
	for _, d := range dates {
		epochDay := temporal.DateToEpochDay(d)
		got := temporal.EpochDayToDate(epochDay)
		assert.Equalf(t, d, got, "round trip through epoch day %d", epochDay)
	}
}

func TestDateToEpochDayKnownValues(t *testing.T) {
	assert.Equal(t, int64(0), temporal.DateToEpochDay(temporal.Date{Year: 1970, Month: 1, Day: 1}))
	assert.Equal(t, int64(-1), temporal.DateToEpochDay(temporal.Date{Year: 1969, Month: 12, Day: 31}))
}

func TestDateToIsoString(t *testing.T) {
	assert.Equal(t, "-0042-01-02", temporal.DateToIsoString(-42, 1, 2))
	assert.Equal(t, "2024-02-29", temporal.DateToIsoString(2024, 2, 29))
}
