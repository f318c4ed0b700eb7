package ui

import (
	"context"
	"errors"
	"time"

	"roomfinder/internal/models"
	"roomfinder/internal/roomdb"
	"roomfinder/internal/schedule"
	"roomfinder/internal/store"
)

// Effect kinds produced by Apply. Exactly one effect per event.
const (
	EffectNone            = "none"
	EffectRoomDetail      = "room_detail"
	EffectSearchResults   = "search_results"
	EffectTabChanged      = "tab_changed"
	EffectReviewAccepted  = "review_accepted"
	EffectValidationError = "validation_error"
	EffectViewReset       = "view_reset"
)

// Validation alert shown for an empty review submission.
const msgEmptyReview = "文字を入力してください"

// Effect is what the page should render after an event: at most one of
// the payload fields is set, according to Kind.
type Effect struct {
	Kind    string          `json:"kind"`
	Detail  *RoomDetail     `json:"detail,omitempty"`
	Results []roomdb.Result `json:"results,omitempty"`
	Equip   string          `json:"equip,omitempty"`
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
}

// RoomDetail is the composed detail panel for one room.
type RoomDetail struct {
	Room     *models.Classroom `json:"room"`
	Status   models.RoomStatus `json:"status"`
	Timeline models.Timeline   `json:"timeline"`
	Reviews  []string          `json:"reviews"`
}

// BuildRoomDetail assembles the detail panel: occupancy at now, the
// weekly grid, and seeded reviews followed by stored ones.
func BuildRoomDetail(ctx context.Context, db *roomdb.Database, reviews *store.ReviewStore, roomID string, now time.Time) (*RoomDetail, error) {
	room, err := db.Get(roomID)
	if err != nil {
		return nil, err
	}
	stored, err := reviews.LoadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	all := make([]string, 0, len(room.Reviews)+len(stored))
	all = append(all, room.Reviews...)
	all = append(all, stored...)
	return &RoomDetail{
		Room:     room,
		Status:   schedule.ComputeStatus(room.Schedule, now),
		Timeline: schedule.BuildTimeline(room.Schedule),
		Reviews:  all,
	}, nil
}

// Dispatcher applies classified events to the UI state. It is the only
// component that both reads the room database and writes the review
// store; handlers never mutate state behind its back.
type Dispatcher struct {
	DB      *roomdb.Database
	Reviews *store.ReviewStore
	Clock   func() time.Time
}

func NewDispatcher(db *roomdb.Database, reviews *store.ReviewStore) *Dispatcher {
	return &Dispatcher{DB: db, Reviews: reviews, Clock: time.Now}
}

// Apply runs one event against the current state and returns the next
// state plus the single effect the page should render. A nil event (an
// unclassifiable interaction) returns the state unchanged with no
// effect. Unknown room ids are silent no-ops, not errors.
func (d *Dispatcher) Apply(ctx context.Context, st State, ev Event) (State, Effect, error) {
	switch ev := ev.(type) {
	case RoomSelected:
		detail, err := BuildRoomDetail(ctx, d.DB, d.Reviews, ev.RoomID, d.Clock())
		if err != nil {
			if errors.Is(err, roomdb.ErrUnknownRoom) {
				return st, Effect{Kind: EffectNone}, nil
			}
			return st, Effect{}, err
		}
		st.View = ViewMap
		st.Floor = roomdb.FloorOf(ev.RoomID)
		st.SelectedRoom = ev.RoomID
		st.Tab = TabInfo
		return st, Effect{Kind: EffectRoomDetail, Detail: detail}, nil

	case CategorySelected:
		// presets overwrite each other: picking a status clears the
		// equipment filter and vice versa, and the keyword always resets
		var equip, status string
		switch ev.Type {
		case "status":
			status = ev.Value
		case "equip":
			equip = ev.Value
		}
		st.View = ViewSearch
		st.SelectedRoom = ""
		st.Tab = TabInfo
		results := roomdb.Search(d.DB, "", equip, status, d.Clock())
		return st, Effect{Kind: EffectSearchResults, Results: results, Equip: equip, Status: status}, nil

	case TabSwitched:
		// tab buttons live inside a detail panel; without a selection
		// there is nothing to toggle
		if st.SelectedRoom == "" {
			return st, Effect{Kind: EffectNone}, nil
		}
		if ev.Tab != TabInfo && ev.Tab != TabReviews {
			return st, Effect{Kind: EffectNone}, nil
		}
		st.Tab = ev.Tab
		return st, Effect{Kind: EffectTabChanged}, nil

	case ReviewSubmitted:
		roomID := ev.RoomID
		if roomID == "" {
			roomID = st.SelectedRoom
		}
		if _, err := d.DB.Get(roomID); err != nil {
			return st, Effect{Kind: EffectNone}, nil
		}
		if err := d.Reviews.AppendRoom(ctx, roomID, ev.Text); err != nil {
			if errors.Is(err, store.ErrEmptyReview) {
				return st, Effect{Kind: EffectValidationError, Message: msgEmptyReview}, nil
			}
			return st, Effect{}, err
		}
		return st, Effect{Kind: EffectReviewAccepted, Message: ev.Text}, nil

	case FloorSelected:
		st.View = ViewMap
		st.Floor = ev.Floor
		st.SelectedRoom = ""
		st.Tab = TabInfo
		return st, Effect{Kind: EffectViewReset}, nil

	case SearchOpened:
		st.View = ViewSearch
		st.SelectedRoom = ""
		st.Tab = TabInfo
		return st, Effect{Kind: EffectViewReset}, nil
	}

	return st, Effect{Kind: EffectNone}, nil
}
