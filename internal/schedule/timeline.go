package schedule

import (
	"roomfinder/internal/models"
)

// FreeMarker is shown in timeline cells with no class.
const FreeMarker = "○"

var dayNames = []string{"月", "火", "水", "木", "金"}

// Periods are the five canonical class periods of a weekday. The grid
// only knows about these start times.
var Periods = []models.TimelinePeriod{
	{Name: "1限", Start: "08:50"},
	{Name: "2限", Start: "10:30"},
	{Name: "3限", Start: "13:00"},
	{Name: "4限", Start: "14:40"},
	{Name: "5限", Start: "16:20"},
}

// BuildTimeline produces the fixed 5-weekday x 5-period grid for a
// schedule. A cell is occupied iff a slot exists with that exact day
// and an exactly matching period start string; slots that do not align
// with a canonical period start are invisible to the grid.
func BuildTimeline(slots []models.ClassSlot) models.Timeline {
	tl := models.Timeline{
		Periods: Periods,
		Rows:    make([]models.TimelineRow, 0, len(dayNames)),
	}
	for i, name := range dayNames {
		day := i + 1
		row := models.TimelineRow{
			Day:     day,
			DayName: name,
			Cells:   make([]models.TimelineCell, 0, len(Periods)),
		}
		for _, p := range Periods {
			cell := models.TimelineCell{Title: FreeMarker}
			for _, s := range slots {
				if s.Day == day && s.Start == p.Start {
					cell = models.TimelineCell{Occupied: true, Title: s.Title}
					break
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		tl.Rows = append(tl.Rows, row)
	}
	return tl
}
