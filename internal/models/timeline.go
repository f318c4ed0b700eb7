package models

// TimelineCell is one (day, period) slot of the weekly grid.
type TimelineCell struct {
	Occupied bool   `json:"occupied"`
	Title    string `json:"title"` // class title, or the free marker
}

// TimelineRow is one weekday of the grid.
type TimelineRow struct {
	Day     int            `json:"day"` // 1=Monday .. 5=Friday
	DayName string         `json:"day_name"`
	Cells   []TimelineCell `json:"cells"`
}

// TimelinePeriod is one of the five canonical class periods.
type TimelinePeriod struct {
	Name  string `json:"name"`
	Start string `json:"start"` // "HH:MM"
}

// Timeline is the fixed 5-weekday x 5-period occupancy grid for a room.
type Timeline struct {
	Periods []TimelinePeriod `json:"periods"`
	Rows    []TimelineRow    `json:"rows"`
}
