package schedule

import (
	"fmt"
	"sort"
	"time"

	"roomfinder/internal/models"
)

// Fixed locale strings for the two occupancy states.
const (
	labelAvailable = "利用可能"
	labelOccupied  = "授業中"

	colorAvailable = "green"
	colorOccupied  = "red"

	occupantVacant = "(空室)"

	// Shown when no current or upcoming class exists today.
	msgDayOver = "本日の授業は終了しました"
)

// ComputeStatus derives the occupancy of a room at the given instant
// from its weekly schedule. It is a pure function of (slots, now): the
// caller supplies the clock, so the same frozen time always yields the
// same status.
//
// Slots whose Day is zero apply every day; others apply only when Day
// matches now's weekday (Sunday=0 .. Saturday=6). Among today's slots,
// sorted by start time, the first one whose [start, end) range contains
// the current minute wins; overlapping slots are not rejected, the
// earliest start simply takes precedence.
func ComputeStatus(slots []models.ClassSlot, now time.Time) models.RoomStatus {
	currentDay := int(now.Weekday())
	currentMinutes := MinutesOfDay(now.Hour(), now.Minute())

	today := make([]models.ClassSlot, 0, len(slots))
	for _, s := range slots {
		if s.Day == 0 || s.Day == currentDay {
			today = append(today, s)
		}
	}
	sort.SliceStable(today, func(i, j int) bool {
		return ParseClock(today[i].Start) < ParseClock(today[j].Start)
	})

	status := models.RoomStatus{
		Status:      models.StatusAvailable,
		Label:       labelAvailable,
		Color:       colorAvailable,
		Occupant:    occupantVacant,
		TimeMessage: msgDayOver,
	}

	for _, s := range today {
		start := ParseClock(s.Start)
		end := ParseClock(s.End)
		if currentMinutes >= start && currentMinutes < end {
			status.Status = models.StatusOccupied
			status.Label = labelOccupied
			status.Color = colorOccupied
			status.Occupant = s.Title
			status.TimeMessage = fmt.Sprintf("%s まで (%d分後終了)", s.End, end-currentMinutes)
			return status
		}
	}

	for _, s := range today {
		start := ParseClock(s.Start)
		if currentMinutes < start {
			status.TimeMessage = fmt.Sprintf("次の授業まで %d分 (%s開始)", start-currentMinutes, s.Start)
			break
		}
	}
	return status
}
