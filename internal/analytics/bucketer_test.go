package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalDateAroundMidnight(t *testing.T) {
	// 2024-03-10 17:30 UTC is 2024-03-11 00:30 in UTC+7
	ts := time.Date(2024, 3, 10, 17, 30, 0, 0, time.UTC).Unix()

	assert.Equal(t, "2024-03-11", LocalDate(ts, 7))
	assert.Equal(t, "2024-03-10", LocalDate(ts, 0))
	assert.Equal(t, "2024-03-10", LocalDate(ts, -5))
}

func TestLocalDateLateEveningStaysOnDay(t *testing.T) {
	// 23:30 local on March 10 in UTC+7 is 16:30 UTC the same day
	ts := time.Date(2024, 3, 10, 16, 30, 0, 0, time.UTC).Unix()

	assert.Equal(t, "2024-03-10", LocalDate(ts, 7))
}

func TestDayRangeInclusive(t *testing.T) {
	from := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC).Unix()
	to := time.Date(2024, 3, 12, 3, 0, 0, 0, time.UTC).Unix()

	days := Window{From: from, To: to, TZOffset: 7}.DayRange()
	assert.Equal(t, []string{"2024-03-10", "2024-03-11", "2024-03-12"}, days)
}

func TestDayRangeSingleDay(t *testing.T) {
	ts := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC).Unix()

	days := Window{From: ts, To: ts + 3600, TZOffset: 7}.DayRange()
	assert.Equal(t, []string{"2024-03-10"}, days)
}

func TestDayRangeOffsetShiftsEndpoints(t *testing.T) {
	// 17:30 UTC crosses local midnight in UTC+7, so the range gains a day
	from := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC).Unix()
	to := time.Date(2024, 3, 10, 17, 30, 0, 0, time.UTC).Unix()

	assert.Equal(t, []string{"2024-03-10"}, Window{From: from, To: to}.DayRange())
	assert.Equal(t,
		[]string{"2024-03-10", "2024-03-11"},
		Window{From: from, To: to, TZOffset: 7}.DayRange(),
	)
}
