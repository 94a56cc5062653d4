package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Fatal("expected error for wrong format")
	}
}

func TestWeekdayConvention(t *testing.T) {
	sunday, _ := ParseDate("2026-03-15")
	if Weekday(sunday) != 0 {
		t.Fatalf("expected Sunday to be 0, got %d", Weekday(sunday))
	}
	saturday, _ := ParseDate("2026-03-14")
	if Weekday(saturday) != 6 {
		t.Fatalf("expected Saturday to be 6, got %d", Weekday(saturday))
	}
}

func TestBeginningOfDayUTC(t *testing.T) {
	in := time.Date(2026, 3, 15, 18, 30, 45, 0, time.UTC)
	got := BeginningOfDay(in)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
}
