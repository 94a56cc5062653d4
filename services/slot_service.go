// services/slot_service.go
package services

import (
	"sort"

	"locappoint-backend/models"
	"locappoint-backend/utils"
)

// Slots are offered on a fixed 30-minute grid regardless of service
// duration, so consecutive offers for a long service can be closer together
// than the service itself.
const SlotStepMinutes = 30

// GenerateSlots computes the bookable start times for one calendar date.
// windows are the business's active availability windows for that date's
// weekday, bookedTimes the HH:MM:SS start times already taken (pending or
// confirmed), duration the requested service length in minutes.
//
// Each window is walked independently from its start in 30-minute steps; a
// step is offered when the full duration fits inside that window and its
// start time is not an exact match of a booked time. The collision check is
// by start-time equality, not interval overlap: a slot that overlaps an
// existing booking without sharing its start time is still offered. Results
// are not deduplicated across windows. The final list is sorted by the
// zero-padded time string, which orders chronologically.
func GenerateSlots(windows []models.AvailabilityWindow, bookedTimes []string, duration int) []string {
	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := []string{}
	for _, w := range windows {
		for t := w.StartMinutes; t < w.EndMinutes; t = utils.AddMinutes(t, SlotStepMinutes) {
			if utils.AddMinutes(t, duration) > w.EndMinutes {
				continue
			}
			s := utils.FormatTime(t)
			if booked[s] {
				continue
			}
			slots = append(slots, s)
		}
	}

	sort.Strings(slots)
	return slots
}
