package basic

import (
	"fmt"
	"testing"
)

func TestDayOfWeek(t *testing.T) {
	var tests = []struct {
		date LocalDate
		want uint8
	}{
		{LocalDate{Year: 2000, Month: 1, Day: 1}, 7},   // Saturday
		{LocalDate{Year: 2000, Month: 1, Day: 2}, 1},   // Sunday
		{LocalDate{Year: 1999, Month: 12, Day: 31}, 6}, // Friday
		{LocalDate{Year: 2018, Month: 3, Day: 8}, 5},   // Thursday
		{LocalDate{Year: 2018, Month: 3, Day: 11}, 1},  // Sunday
		{LocalDate{Year: 2018, Month: 11, Day: 4}, 1},  // Sunday
		{LocalDate{Year: 2024, Month: 2, Day: 29}, 5},  // Thursday, leap day
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%d-%02d-%02d", tt.date.Year, tt.date.Month, tt.date.Day)
		t.Run(name, func(t *testing.T) {
			got := tt.date.DayOfWeek()
			if got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestEpochRoundTrip(t *testing.T) {
	var tests = []LocalDate{
		{Year: 2000, Month: 1, Day: 1},
		{Year: 1970, Month: 1, Day: 1},
		{Year: 1872, Month: 1, Day: 1},
		{Year: 2037, Month: 12, Day: 31},
		{Year: 1900, Month: 2, Day: 28},
		{Year: 2000, Month: 2, Day: 29},
	}

	for _, date := range tests {
		name := fmt.Sprintf("%d-%02d-%02d", date.Year, date.Month, date.Day)
		t.Run(name, func(t *testing.T) {
			seconds := date.ToEpochSeconds()
			got := ForEpochSeconds(seconds)
			if got != date {
				t.Errorf("got %+v want %+v", got, date)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	var tests = []struct {
		year int16
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestAddDaysCarriesMonthAndYear(t *testing.T) {
	start := LocalDate{Year: 2023, Month: 12, Day: 30}
	got := start.AddDays(5)
	want := LocalDate{Year: 2024, Month: 1, Day: 4}
	if got != want {
		t.Errorf("got %+v want %+v", got, want)
	}
}
