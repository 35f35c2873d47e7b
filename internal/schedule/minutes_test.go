package schedule

import (
	"testing"
	"time"

	"github.com/corteturno/corteturno/internal/httperr"
)

func TestParseHHMM(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"14:30", 870},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseHHMM(tc.in)
		if err != nil {
			t.Fatalf("ParseHHMM(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHHMM(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestParseHHMMInvalid(t *testing.T) {
	for _, in := range []string{"", "9am", "25:00", "09:61", "09:0a"} {
		if _, err := ParseHHMM(in); !httperr.IsBusiness(err, "invalid_schedule") {
			t.Fatalf("ParseHHMM(%q): expected invalid_schedule, got %v", in, err)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(540); got != "09:00" {
		t.Fatalf("expected 09:00, got %s", got)
	}
	if got := FormatMinutes(870); got != "14:30" {
		t.Fatalf("expected 14:30, got %s", got)
	}
	if got := FormatMinutes(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
}

func TestWeekdayName(t *testing.T) {
	// 2026-01-04 es domingo.
	sunday := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	want := []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

	for i, name := range want {
		d := sunday.AddDate(0, 0, i)
		if got := WeekdayName(d); got != name {
			t.Fatalf("day %d: expected %s, got %s", i, name, got)
		}
	}
}
