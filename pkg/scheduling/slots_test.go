package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var defaultHours = WorkingHours{Start: 9, End: 17}

// day returns a clock time on 2024-01-02 (a Tuesday) in UTC.
func day(hour, minute int) time.Time {
	return time.Date(2024, 1, 2, hour, minute, 0, 0, time.UTC)
}

func oneDayRange() (time.Time, time.Time) {
	return day(0, 0), time.Date(2024, 1, 2, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func TestFindFreeSlots_EmptyBusy(t *testing.T) {
	start, end := oneDayRange()

	slots := findFreeSlots(map[string][]BusyInterval{"a@x.com": nil}, start, end, 60, defaultHours, time.UTC)

	assert.NotEmpty(t, slots)
	assert.Equal(t, day(9, 0), slots[0].StartTime)
	assert.Equal(t, day(10, 0), slots[0].EndTime)
	assert.Equal(t, "Tue Jan 02 2024", slots[0].Date)
}

func TestFindFreeSlots_FullWorkdayBusy(t *testing.T) {
	start, end := oneDayRange()
	busy := map[string][]BusyInterval{
		"a@x.com": {{Start: day(9, 0), End: day(17, 0)}},
	}

	slots := findFreeSlots(busy, start, end, 60, defaultHours, time.UTC)

	assert.Empty(t, slots)
}

func TestFindFreeSlots_PartialOverlapRejection(t *testing.T) {
	start, end := oneDayRange()
	busy := map[string][]BusyInterval{
		"a@x.com": {{Start: day(10, 0), End: day(10, 30)}},
	}

	slots := findFreeSlots(busy, start, end, 60, defaultHours, time.UTC)

	starts := make(map[time.Time]bool, len(slots))
	for _, slot := range slots {
		starts[slot.StartTime] = true
	}

	// A slot ending exactly when the busy interval begins does not overlap.
	assert.True(t, starts[day(9, 0)], "slot at 09:00 ends at busy start and must be allowed")
	assert.False(t, starts[day(9, 30)], "slot at 09:30 ends at 10:30 and overlaps")
	assert.False(t, starts[day(10, 0)], "slot at 10:00 overlaps the busy interval")
	assert.True(t, starts[day(10, 30)], "slot at 10:30 starts at busy end and must be allowed")
}

func TestFindFreeSlots_Invariants(t *testing.T) {
	start := day(0, 0)
	end := time.Date(2024, 1, 4, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	busy := map[string][]BusyInterval{
		"a@x.com": {
			{Start: day(9, 0), End: day(12, 0)},
			{Start: time.Date(2024, 1, 3, 13, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)},
		},
		"b@x.com": {
			{Start: day(14, 0), End: day(15, 0)},
		},
	}

	slots := findFreeSlots(busy, start, end, 60, defaultHours, time.UTC)
	assert.NotEmpty(t, slots)

	for i, slot := range slots {
		// Exact requested duration.
		assert.Equal(t, time.Hour, slot.EndTime.Sub(slot.StartTime))

		// Slot end stays within working hours.
		assert.LessOrEqual(t, slot.EndTime.Hour(), defaultHours.End,
			"slot ending %s exceeds working hours", slot.EndTime)

		// Chronological order.
		if i > 0 {
			assert.False(t, slot.StartTime.Before(slots[i-1].StartTime))
		}

		// No overlap with any participant's busy intervals.
		for participant, intervals := range busy {
			for _, interval := range intervals {
				free := !slot.EndTime.After(interval.Start) || !slot.StartTime.Before(interval.End)
				assert.True(t, free, "slot %s-%s overlaps %s busy %s-%s",
					slot.StartTime, slot.EndTime, participant, interval.Start, interval.End)
			}
		}
	}
}

func TestFindFreeSlots_SlotEndingAtWorkdayEndIsAllowed(t *testing.T) {
	start, end := oneDayRange()
	busy := map[string][]BusyInterval{
		"a@x.com": {{Start: day(9, 0), End: day(16, 0)}},
	}

	slots := findFreeSlots(busy, start, end, 60, defaultHours, time.UTC)

	assert.NotEmpty(t, slots)
	assert.Equal(t, day(16, 0), slots[0].StartTime)
	assert.Equal(t, day(17, 0), slots[0].EndTime)
}

func TestFindFreeSlots_ThirtyMinuteStep(t *testing.T) {
	start, end := oneDayRange()

	slots := findFreeSlots(map[string][]BusyInterval{}, start, end, 30, defaultHours, time.UTC)

	assert.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].StartTime.Sub(slots[i-1].StartTime))
	}
}

func TestFindFreeSlots_NoMidnightWrap(t *testing.T) {
	start, end := oneDayRange()
	// Everything between 09:00 and 17:00 is taken; the cursor keeps stepping
	// into the evening but candidates wrapping past midnight must not appear.
	busy := map[string][]BusyInterval{
		"a@x.com": {{Start: day(9, 0), End: day(17, 0)}},
	}

	slots := findFreeSlots(busy, start, end, 90, defaultHours, time.UTC)

	assert.Empty(t, slots)
}

func TestFindFreeSlots_MultipleParticipantsAllConsidered(t *testing.T) {
	start, end := oneDayRange()
	busy := map[string][]BusyInterval{
		"a@x.com": {{Start: day(9, 0), End: day(13, 0)}},
		"b@x.com": {{Start: day(13, 0), End: day(16, 0)}},
	}

	slots := findFreeSlots(busy, start, end, 60, defaultHours, time.UTC)

	// 16:00 is the first candidate free for both; 16:30 still passes the
	// end-hour check because only the hour component of the end is tested.
	assert.Len(t, slots, 2)
	assert.Equal(t, day(16, 0), slots[0].StartTime)
	assert.Equal(t, day(16, 30), slots[1].StartTime)
}
