package ui

// Interaction is the raw click as reported by the page: the CSS class
// of the nearest interactive ancestor plus whatever data attributes it
// carried. Classify turns it into a typed Event.
type Interaction struct {
	Target string `json:"target"`
	RoomID string `json:"room_id,omitempty"`
	Floor  string `json:"floor,omitempty"`
	Tab    string `json:"tab,omitempty"`
	Type   string `json:"type,omitempty"`  // category preset: "status" or "equip"
	Value  string `json:"value,omitempty"` // category preset value
	Text   string `json:"text,omitempty"`  // review input text
}

// Event is one classified UI interaction.
type Event interface {
	uiEvent()
}

// RoomSelected is a click on a room card, on a floor map or in search
// results.
type RoomSelected struct {
	RoomID string
}

// CategorySelected is a click on a search category shortcut, presetting
// either the status or the equipment filter.
type CategorySelected struct {
	Type  string
	Value string
}

// TabSwitched toggles the info/reviews tab of the open detail panel.
type TabSwitched struct {
	Tab Tab
}

// ReviewSubmitted is a click on the review submit button next to the
// review input field.
type ReviewSubmitted struct {
	RoomID string
	Text   string
}

// FloorSelected is a click on a floor navigation link.
type FloorSelected struct {
	Floor string
}

// SearchOpened is a click on the search navigation link.
type SearchOpened struct{}

func (RoomSelected) uiEvent()     {}
func (CategorySelected) uiEvent() {}
func (TabSwitched) uiEvent()      {}
func (ReviewSubmitted) uiEvent()  {}
func (FloorSelected) uiEvent()    {}
func (SearchOpened) uiEvent()     {}

// Interactive targets, probed in this order; the first match wins and
// anything else is a no-op. The names are the CSS classes the page
// uses for each control.
const (
	targetRoomCard     = "classroom"
	targetCategoryCard = "category-card"
	targetTabButton    = "tab-button"
	targetReviewSubmit = "submit-review-btn"
	targetFloorLink    = "floor-link"
	targetSearchLink   = "nav-search"
)

// Classify maps a raw interaction to its typed event. Unknown targets
// classify to nil, which Apply treats as a no-op.
func Classify(in Interaction) Event {
	switch in.Target {
	case targetRoomCard:
		return RoomSelected{RoomID: in.RoomID}
	case targetCategoryCard:
		return CategorySelected{Type: in.Type, Value: in.Value}
	case targetTabButton:
		return TabSwitched{Tab: Tab(in.Tab)}
	case targetReviewSubmit:
		return ReviewSubmitted{RoomID: in.RoomID, Text: in.Text}
	case targetFloorLink:
		return FloorSelected{Floor: in.Floor}
	case targetSearchLink:
		return SearchOpened{}
	}
	return nil
}
