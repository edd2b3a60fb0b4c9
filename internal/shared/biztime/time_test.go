package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayUTC(t *testing.T) {
	MustInit(DefaultTimezone)

	// 2025-06-02 01:00 UTC is 06:00 in Tashkent (UTC+5), so the business
	// day started at 2025-06-01 19:00 UTC.
	instant := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)
	start := StartOfDayUTC(instant)

	assert.Equal(t, time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.UTC, start.Location())
}

func TestDayKey(t *testing.T) {
	MustInit(DefaultTimezone)

	// 22:00 UTC already belongs to the next Tashkent calendar day.
	assert.Equal(t, "2025-06-03", DayKey(time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-02", DayKey(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)))
}

func TestDaysAgoUTC(t *testing.T) {
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	got := DaysAgoUTC(now, 7)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), got)
}

func TestHourAndWeekday(t *testing.T) {
	MustInit(DefaultTimezone)

	// 2025-06-02 09:00 UTC is Monday 14:00 in Tashkent.
	hour, weekday := HourAndWeekday(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 14, hour)
	assert.Equal(t, 1, weekday)

	// 2025-06-01 20:00 UTC crosses into Monday 01:00 Tashkent.
	hour, weekday = HourAndWeekday(time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, hour)
	assert.Equal(t, 1, weekday)
}

func TestInitIgnoresLaterCalls(t *testing.T) {
	MustInit(DefaultTimezone)
	require.NoError(t, Init("America/New_York"))

	// The first initialization wins for the process lifetime.
	assert.Equal(t, DefaultTimezone, Location().String())
}
