package services

import (
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"one night", day(2026, time.March, 10), day(2026, time.March, 11), 1},
		{"three nights", day(2026, time.March, 10), day(2026, time.March, 13), 3},
		{"same day counts as one night", day(2026, time.March, 10), day(2026, time.March, 10), 1},
		{"time of day is ignored",
			time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2026, time.March, 11, 1, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NightsBetween(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("NightsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayInRange(t *testing.T) {
	from := day(2026, time.March, 10)
	to := day(2026, time.March, 12)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"first day inclusive", day(2026, time.March, 10), true},
		{"last day inclusive", day(2026, time.March, 12), true},
		{"middle", time.Date(2026, time.March, 11, 18, 0, 0, 0, time.UTC), true},
		{"before", day(2026, time.March, 9), false},
		{"after", day(2026, time.March, 13), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayInRange(tt.t, from, to); got != tt.want {
				t.Errorf("DayInRange(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestEachDay(t *testing.T) {
	var days []string
	EachDay(day(2026, time.February, 27), day(2026, time.March, 2), func(d time.Time) {
		days = append(days, d.Format("2006-01-02"))
	})

	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if len(days) != len(want) {
		t.Fatalf("len(days) = %d, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}
