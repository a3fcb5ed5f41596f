package scheduling

import (
	"time"
)

// findFreeSlots scans the date range at a fixed 30-minute step and collects
// every candidate of the requested duration that ends within working hours and
// overlaps nobody's busy intervals. The scan is monotonic in cursor time, so
// the result is chronological.
func findFreeSlots(busyTimes map[string][]BusyInterval, startDate time.Time, endDate time.Time,
	durationMinutes int, hours WorkingHours, loc *time.Location) []AvailableSlot {

	slots := make([]AvailableSlot, 0)

	day := startDate.In(loc)
	cursor := time.Date(day.Year(), day.Month(), day.Day(), hours.Start, 0, 0, 0, loc)

	for cursor.Before(endDate) {
		slotEnd := cursor.Add(time.Duration(durationMinutes) * time.Minute)

		// Only the slot end is tested against the end of the working day; the
		// cursor itself keeps stepping even once it has passed working hours.
		// Candidates wrapping past midnight are never valid.
		if slotEnd.In(loc).Hour() <= hours.End && !crossesDateBoundary(cursor, slotEnd, loc) {
			if isSlotFree(cursor, slotEnd, busyTimes) {
				slots = append(slots, AvailableSlot{
					StartTime: cursor,
					EndTime:   slotEnd,
					Date:      cursor.In(loc).Format(slotDateLayout),
				})
			}
		}

		cursor = cursor.Add(slotStep)
	}

	return slots
}

// crossesDateBoundary reports whether start and end fall on different calendar
// days in the given location. A slot ending exactly at midnight still counts
// as crossing.
func crossesDateBoundary(start, end time.Time, loc *time.Location) bool {
	return start.In(loc).YearDay() != end.In(loc).YearDay()
}

// isSlotFree reports whether [startTime, endTime) overlaps no busy interval of
// any participant.
func isSlotFree(startTime time.Time, endTime time.Time, busyTimes map[string][]BusyInterval) bool {
	for _, intervals := range busyTimes {
		for _, busy := range intervals {
			if startTime.Before(busy.End) && endTime.After(busy.Start) {
				return false
			}
		}
	}
	return true
}
