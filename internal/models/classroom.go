package models

// Classroom is one entry of the static room database. Loaded once at
// startup and read-only for the lifetime of the process.
type Classroom struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Equipment string      `json:"equipment"`
	Schedule  []ClassSlot `json:"schedule"`
	Reviews   []string    `json:"reviews,omitempty"` // seeded reviews shipped with the room data
}

// ClassSlot is one scheduled class occupying a room. Day is 1 (Monday)
// through 5 (Friday); zero means the slot applies every weekday.
type ClassSlot struct {
	Day   int    `json:"day,omitempty"`
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
	Title string `json:"title"`
}
