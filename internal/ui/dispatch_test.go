package ui_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roomfinder/internal/models"
	"roomfinder/internal/roomdb"
	"roomfinder/internal/store"
	"roomfinder/internal/ui"
)

// 2026-09-01 11:00 is a Tuesday mid-morning.
var frozenNow = time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)

func newDispatcher(t *testing.T) (*ui.Dispatcher, *store.ReviewStore) {
	t.Helper()
	db := roomdb.NewDatabase()
	db.Add(&models.Classroom{
		ID: "101", Name: "Room 101", Equipment: "Wi-Fi",
		Reviews: []string{"seeded review"},
	})
	db.Add(&models.Classroom{
		ID: "301", Name: "Hall 301", Equipment: "Projector",
		Schedule: []models.ClassSlot{{Day: 2, Start: "10:30", End: "12:00", Title: "Psychology"}},
	})
	reviews := store.NewReviewStore(store.NewMemoryKVStore())
	d := ui.NewDispatcher(db, reviews)
	d.Clock = func() time.Time { return frozenNow }
	return d, reviews
}

func TestClassify(t *testing.T) {
	require.IsType(t, ui.RoomSelected{}, ui.Classify(ui.Interaction{Target: "classroom", RoomID: "101"}))
	require.IsType(t, ui.CategorySelected{}, ui.Classify(ui.Interaction{Target: "category-card"}))
	require.IsType(t, ui.TabSwitched{}, ui.Classify(ui.Interaction{Target: "tab-button", Tab: "reviews"}))
	require.IsType(t, ui.ReviewSubmitted{}, ui.Classify(ui.Interaction{Target: "submit-review-btn"}))
	require.IsType(t, ui.FloorSelected{}, ui.Classify(ui.Interaction{Target: "floor-link", Floor: "2F"}))
	require.IsType(t, ui.SearchOpened{}, ui.Classify(ui.Interaction{Target: "nav-search"}))

	require.Nil(t, ui.Classify(ui.Interaction{Target: "page-footer"}))
	require.Nil(t, ui.Classify(ui.Interaction{}))
}

func TestApply_NilEventIsNoOp(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.InitialState()

	next, effect, err := d.Apply(context.Background(), st, nil)
	require.NoError(t, err)
	require.Equal(t, st, next)
	require.Equal(t, ui.EffectNone, effect.Kind)
}

func TestApply_RoomSelectedFromSearchView(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.InitialState()
	st.View = ui.ViewSearch

	next, effect, err := d.Apply(context.Background(), st, ui.RoomSelected{RoomID: "301"})
	require.NoError(t, err)

	require.Equal(t, ui.ViewMap, next.View)
	require.Equal(t, "3F", next.Floor)
	require.Equal(t, "301", next.SelectedRoom)
	require.Equal(t, ui.TabInfo, next.Tab)

	require.Equal(t, ui.EffectRoomDetail, effect.Kind)
	require.NotNil(t, effect.Detail)
	require.Equal(t, "Hall 301", effect.Detail.Room.Name)
	require.Equal(t, models.StatusOccupied, effect.Detail.Status.Status)
	require.Len(t, effect.Detail.Timeline.Rows, 5)
}

func TestApply_RoomSelectedMergesReviews(t *testing.T) {
	d, reviews := newDispatcher(t)
	require.NoError(t, reviews.AppendRoom(context.Background(), "101", "stored review"))

	_, effect, err := d.Apply(context.Background(), ui.InitialState(), ui.RoomSelected{RoomID: "101"})
	require.NoError(t, err)
	require.Equal(t, []string{"seeded review", "stored review"}, effect.Detail.Reviews)
}

func TestApply_UnknownRoomIsNoOp(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.InitialState()

	next, effect, err := d.Apply(context.Background(), st, ui.RoomSelected{RoomID: "999"})
	require.NoError(t, err)
	require.Equal(t, st, next)
	require.Equal(t, ui.EffectNone, effect.Kind)
}

func TestApply_CategoryStatusPreset(t *testing.T) {
	d, _ := newDispatcher(t)

	next, effect, err := d.Apply(context.Background(), ui.InitialState(),
		ui.CategorySelected{Type: "status", Value: models.StatusAvailable})
	require.NoError(t, err)

	require.Equal(t, ui.ViewSearch, next.View)
	require.Equal(t, ui.EffectSearchResults, effect.Kind)
	require.Equal(t, models.StatusAvailable, effect.Status)
	require.Empty(t, effect.Equip)

	// 301 is occupied Tuesday 11:00, only 101 remains
	require.Len(t, effect.Results, 1)
	require.Equal(t, "101", effect.Results[0].Room.ID)
}

func TestApply_CategoryEquipPresetClearsStatus(t *testing.T) {
	d, _ := newDispatcher(t)

	_, effect, err := d.Apply(context.Background(), ui.InitialState(),
		ui.CategorySelected{Type: "equip", Value: "Projector"})
	require.NoError(t, err)

	require.Equal(t, "Projector", effect.Equip)
	require.Empty(t, effect.Status)
	require.Len(t, effect.Results, 1)
	require.Equal(t, "301", effect.Results[0].Room.ID)
}

func TestApply_TabSwitchRequiresSelection(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.InitialState()

	next, effect, err := d.Apply(context.Background(), st, ui.TabSwitched{Tab: ui.TabReviews})
	require.NoError(t, err)
	require.Equal(t, st, next)
	require.Equal(t, ui.EffectNone, effect.Kind)

	st.SelectedRoom = "101"
	next, effect, err = d.Apply(context.Background(), st, ui.TabSwitched{Tab: ui.TabReviews})
	require.NoError(t, err)
	require.Equal(t, ui.TabReviews, next.Tab)
	require.Equal(t, ui.EffectTabChanged, effect.Kind)
}

func TestApply_ReviewSubmitEmptyTextValidates(t *testing.T) {
	d, reviews := newDispatcher(t)
	st := ui.InitialState()
	st.SelectedRoom = "101"

	next, effect, err := d.Apply(context.Background(), st, ui.ReviewSubmitted{Text: "   "})
	require.NoError(t, err)
	require.Equal(t, st, next)
	require.Equal(t, ui.EffectValidationError, effect.Kind)
	require.Equal(t, "文字を入力してください", effect.Message)

	stored, err := reviews.LoadRoom(context.Background(), "101")
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestApply_ReviewSubmitAppends(t *testing.T) {
	d, reviews := newDispatcher(t)
	st := ui.InitialState()
	st.SelectedRoom = "101"

	_, effect, err := d.Apply(context.Background(), st, ui.ReviewSubmitted{Text: "great light"})
	require.NoError(t, err)
	require.Equal(t, ui.EffectReviewAccepted, effect.Kind)
	require.Equal(t, "great light", effect.Message)

	stored, err := reviews.LoadRoom(context.Background(), "101")
	require.NoError(t, err)
	require.Equal(t, []string{"great light"}, stored)
}

func TestApply_FloorNavResetsSelection(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.State{View: ui.ViewSearch, Floor: "1F", SelectedRoom: "101", Tab: ui.TabReviews}

	next, effect, err := d.Apply(context.Background(), st, ui.FloorSelected{Floor: "2F"})
	require.NoError(t, err)
	require.Equal(t, ui.ViewMap, next.View)
	require.Equal(t, "2F", next.Floor)
	require.Empty(t, next.SelectedRoom)
	require.Equal(t, ui.TabInfo, next.Tab)
	require.Equal(t, ui.EffectViewReset, effect.Kind)
}

func TestApply_SearchNavResetsSelection(t *testing.T) {
	d, _ := newDispatcher(t)
	st := ui.State{View: ui.ViewMap, Floor: "3F", SelectedRoom: "301", Tab: ui.TabReviews}

	next, effect, err := d.Apply(context.Background(), st, ui.SearchOpened{})
	require.NoError(t, err)
	require.Equal(t, ui.ViewSearch, next.View)
	require.Empty(t, next.SelectedRoom)
	require.Equal(t, ui.TabInfo, next.Tab)
	require.Equal(t, ui.EffectViewReset, effect.Kind)
}
