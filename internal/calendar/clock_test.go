package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRangeCarriesMinutesIntoHours(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10:00 - 11:00", FormatRange(MustClock("10:00"), 60))
	require.Equal(t, "10:45 - 11:15", FormatRange(MustClock("10:45"), 30))
	require.Equal(t, "09:15 - 10:00", FormatRange(MustClock("09:15"), 45))
	require.Equal(t, "14:00 - 14:30", FormatRange(MustClock("14:00"), 30))
	require.Equal(t, "08:50 - 11:05", FormatRange(MustClock("08:50"), 135))
}

func TestFormatRangeWrapsPastMidnightWithoutMarker(t *testing.T) {
	t.Parallel()

	require.Equal(t, "23:45 - 00:15", FormatRange(MustClock("23:45"), 30))
	require.Equal(t, "23:00 - 00:00", FormatRange(MustClock("23:00"), 60))
}

func TestClockAddReportsCrossedMidnights(t *testing.T) {
	t.Parallel()

	end, days := MustClock("23:45").Add(30)
	require.Equal(t, Clock{Hour: 0, Minute: 15}, end)
	require.Equal(t, 1, days)

	end, days = MustClock("10:00").Add(0)
	require.Equal(t, Clock{Hour: 10}, end)
	require.Zero(t, days)

	end, days = MustClock("00:10").Add(-20)
	require.Equal(t, Clock{Hour: 23, Minute: 50}, end)
	require.Equal(t, -1, days)
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	c, err := ParseClock(" 09:05 ")
	require.NoError(t, err)
	require.Equal(t, "09:05", c.String())

	c, err = ParseClock("7:30")
	require.NoError(t, err)
	require.Equal(t, "07:30", c.String())

	for _, bad := range []string{"", "0930", "24:00", "12:60", "12:5", "ab:cd", "-1:00", "123:00"} {
		_, err := ParseClock(bad)
		require.Error(t, err, bad)
		require.True(t, errors.Is(err, ErrInvalidClock), bad)
	}
}
