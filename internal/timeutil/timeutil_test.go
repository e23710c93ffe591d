package timeutil

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		expected  float64
		tolerance float64
	}{
		{
			name:      "J2000 epoch",
			input:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected:  2451545.0,
			tolerance: 1e-6,
		},
		{
			name:      "2000-01-01 midnight",
			input:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  2451544.5,
			tolerance: 1e-6,
		},
		{
			name:      "Unix epoch",
			input:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  2440587.5,
			tolerance: 1e-6,
		},
		{
			name:      "February leap handling",
			input:     time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC),
			expected:  2460369.75,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.input)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("JulianDay(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFromJulianDay_RoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1987, 6, 19, 4, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, want := range times {
		got := FromJulianDay(JulianDay(want))
		if d := got.Sub(want); d > time.Millisecond || d < -time.Millisecond {
			t.Errorf("round trip for %v drifted by %v (got %v)", want, d, got)
		}
	}
}

func TestLocalToUT(t *testing.T) {
	// 1987-06-19 10:00 IST (+5.5h) is 04:30 UTC.
	local := time.Date(1987, 6, 19, 10, 0, 0, 0, time.UTC)
	got := LocalToUT(local, 5.5)
	want := time.Date(1987, 6, 19, 4, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LocalToUT = %v, want %v", got, want)
	}

	// Negative offsets move the other way.
	got = LocalToUT(local, -4)
	want = time.Date(1987, 6, 19, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LocalToUT(-4) = %v, want %v", got, want)
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name     string
		when     time.Time
		expected int // 0=Sunday
	}{
		{"2000-01-01 was a Saturday", time.Date(2000, 1, 1, 6, 0, 0, 0, time.UTC), 6},
		{"2000-01-02 was a Sunday", time.Date(2000, 1, 2, 6, 0, 0, 0, time.UTC), 0},
		{"2024-02-29 was a Thursday", time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC), 4},
		{"1970-01-01 was a Thursday", time.Date(1970, 1, 1, 6, 0, 0, 0, time.UTC), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekdayIndex(JulianDay(tt.when))
			if got != tt.expected {
				t.Errorf("WeekdayIndex = %d, want %d", got, tt.expected)
			}
		})
	}
}
