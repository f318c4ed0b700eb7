package models

// Occupancy classification values.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// RoomStatus is the derived occupancy of a room at some instant. It is
// recomputed on every request and never persisted.
type RoomStatus struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Occupant    string `json:"occupant"`
	TimeMessage string `json:"time_message"`
}
