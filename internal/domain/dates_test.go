package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		source time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain month advance",
			source: date(2024, time.March, 15),
			months: 1,
			want:   date(2024, time.April, 15),
		},
		{
			name:   "zero months is identity",
			source: date(2024, time.March, 15),
			months: 0,
			want:   date(2024, time.March, 15),
		},
		{
			name:   "clamps to leap february",
			source: date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "clamps to non-leap february",
			source: date(2023, time.January, 31),
			months: 1,
			want:   date(2023, time.February, 28),
		},
		{
			name:   "clamps 31st to 30-day month",
			source: date(2024, time.March, 31),
			months: 1,
			want:   date(2024, time.April, 30),
		},
		{
			name:   "crosses year boundary",
			source: date(2024, time.October, 31),
			months: 4,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "twelve months lands on same day",
			source: date(2024, time.February, 29),
			months: 12,
			want:   date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.source, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.source, tt.months, got, tt.want)
			}
		})
	}
}
