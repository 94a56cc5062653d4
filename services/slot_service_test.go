package services

import (
	"reflect"
	"sort"
	"testing"

	"locappoint-backend/models"
	"locappoint-backend/utils"
)

func window(weekday, start, end int) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		Weekday:      weekday,
		StartMinutes: start,
		EndMinutes:   end,
		IsActive:     true,
	}
}

func TestGenerateSlotsBasicWindow(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 540, 600)} // 09:00-10:00

	slots := GenerateSlots(windows, nil, 30)

	want := []string{"09:00:00", "09:30:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsDurationMustFit(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 540, 600)} // 09:00-10:00

	slots := GenerateSlots(windows, nil, 45)

	// 09:30 + 45 = 10:15 runs past the window end
	want := []string{"09:00:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsBookedTimeExcluded(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 540, 600)}

	slots := GenerateSlots(windows, []string{"09:30:00"}, 30)

	want := []string{"09:00:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsNoWindows(t *testing.T) {
	slots := GenerateSlots(nil, []string{"09:00:00"}, 30)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateSlotsSortedAcrossWindows(t *testing.T) {
	// Evening shift listed before the morning shift
	windows := []models.AvailabilityWindow{
		window(1, 840, 960), // 14:00-16:00
		window(1, 540, 660), // 09:00-11:00
	}

	slots := GenerateSlots(windows, nil, 60)

	if !sort.StringsAreSorted(slots) {
		t.Fatalf("slots not sorted: %v", slots)
	}
	if slots[0] != "09:00:00" || slots[len(slots)-1] != "15:00:00" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateSlotsStepIsFixedRegardlessOfDuration(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 540, 720)} // 09:00-12:00

	slots := GenerateSlots(windows, nil, 90)

	// 30-minute grid even for a 90-minute service, so consecutive offers
	// overlap each other
	want := []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsOverlapWithoutExactMatchPassesThrough(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 540, 660)} // 09:00-11:00

	// A 60-minute booking at 09:00 occupies until 10:00, but only the exact
	// start time is blocked: 09:30 is still offered. This is the documented
	// collision semantics, not a bug in the generator.
	slots := GenerateSlots(windows, []string{"09:00:00"}, 60)

	want := []string{"09:30:00", "10:00:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsNoDedupAcrossOverlappingWindows(t *testing.T) {
	windows := []models.AvailabilityWindow{
		window(1, 540, 600),
		window(1, 540, 600),
	}

	slots := GenerateSlots(windows, nil, 30)

	want := []string{"09:00:00", "09:00:00", "09:30:00", "09:30:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsEverySlotFitsAWindow(t *testing.T) {
	windows := []models.AvailabilityWindow{
		window(1, 540, 660),  // 09:00-11:00
		window(1, 870, 1020), // 14:30-17:00
	}

	for _, duration := range []int{15, 30, 45, 60, 90} {
		slots := GenerateSlots(windows, nil, duration)
		for _, s := range slots {
			start := utils.ParseTime(s)
			fits := false
			for _, w := range windows {
				if start >= w.StartMinutes && start+duration <= w.EndMinutes {
					fits = true
					break
				}
			}
			if !fits {
				t.Fatalf("duration %d: slot %s does not fit any window", duration, s)
			}
		}
	}
}

func TestGenerateSlotsNeverEmitsBookedTime(t *testing.T) {
	windows := []models.AvailabilityWindow{window(1, 480, 1080)} // 08:00-18:00
	booked := []string{"08:30:00", "10:00:00", "13:30:00", "17:00:00"}

	slots := GenerateSlots(windows, booked, 30)

	taken := make(map[string]bool)
	for _, b := range booked {
		taken[b] = true
	}
	for _, s := range slots {
		if taken[s] {
			t.Fatalf("booked time %s was offered", s)
		}
	}
}
