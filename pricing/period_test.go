package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveNightlyRate(t *testing.T) {
	periods := []PricePeriod{
		{Start: date(2024, 1, 1), End: date(2024, 1, 31), Nightly: FromMajor(100)},
		{Start: date(2024, 1, 15), End: date(2024, 2, 15), Nightly: FromMajor(150)},
	}

	testCases := []struct {
		name    string
		periods []PricePeriod
		checkIn time.Time
		want    Money
	}{
		{
			name:    "latest starting period wins on overlap",
			periods: periods,
			checkIn: date(2024, 1, 20),
			want:    FromMajor(150),
		},
		{
			name:    "single covering period",
			periods: periods,
			checkIn: date(2024, 1, 5),
			want:    FromMajor(100),
		},
		{
			name:    "no covering period resolves to zero",
			periods: periods,
			checkIn: date(2024, 3, 1),
			want:    0,
		},
		{
			name:    "check-in on period start day matches",
			periods: periods,
			checkIn: date(2024, 1, 1),
			want:    FromMajor(100),
		},
		{
			name:    "check-in late on the end day still matches",
			periods: periods,
			checkIn: time.Date(2024, 2, 15, 22, 30, 0, 0, time.UTC),
			want:    FromMajor(150),
		},
		{
			name:    "order in the catalog does not matter",
			periods: []PricePeriod{periods[1], periods[0]},
			checkIn: date(2024, 1, 20),
			want:    FromMajor(150),
		},
		{
			name:    "empty catalog",
			periods: nil,
			checkIn: date(2024, 1, 20),
			want:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveNightlyRate(tc.periods, tc.checkIn))
		})
	}
}

func TestResolveNightlyRateSingleDayPeriod(t *testing.T) {
	periods := []PricePeriod{
		{Start: date(2024, 6, 1), End: date(2024, 6, 1), Nightly: FromMajor(80)},
	}
	assert.Equal(t, FromMajor(80), ResolveNightlyRate(periods, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Money(0), ResolveNightlyRate(periods, date(2024, 6, 2)))
}
