package ui

// View is the top-level page region.
type View string

const (
	ViewMap    View = "map"
	ViewSearch View = "search"
)

// Tab is the active pane inside a room detail panel.
type Tab string

const (
	TabInfo    Tab = "info"
	TabReviews Tab = "reviews"
)

// State is the whole UI selection state, held explicitly instead of in
// DOM class attributes: which view is shown, which floor map is active,
// which room is selected (empty = none) and which detail tab is open.
type State struct {
	View         View   `json:"view"`
	Floor        string `json:"floor"`
	SelectedRoom string `json:"selected_room,omitempty"`
	Tab          Tab    `json:"tab"`
}

// InitialState is the page-load state: map view, 1F, nothing selected.
func InitialState() State {
	return State{View: ViewMap, Floor: "1F", Tab: TabInfo}
}
