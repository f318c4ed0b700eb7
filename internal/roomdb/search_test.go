package roomdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roomfinder/internal/models"
	"roomfinder/internal/roomdb"
)

// 2026-09-01 11:00 is a Tuesday mid-morning.
var tuesdayNoonish = time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)

func testDatabase() *roomdb.Database {
	db := roomdb.NewDatabase()
	db.Add(&models.Classroom{ID: "101", Name: "Room 101", Equipment: "Projector, Wi-Fi"})
	db.Add(&models.Classroom{
		ID: "103", Name: "PC Lab 103", Equipment: "PC, Projector",
		Schedule: []models.ClassSlot{{Day: 2, Start: "10:30", End: "12:00", Title: "Programming"}},
	})
	db.Add(&models.Classroom{ID: "201", Name: "Room 201", Equipment: "Whiteboard"})
	db.Add(&models.Classroom{ID: "301", Name: "Lab 301", Equipment: "Wi-Fi"})
	return db
}

func ids(results []roomdb.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Room.ID)
	}
	return out
}

func TestSearch_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	results := roomdb.Search(testDatabase(), "", "", "", tuesdayNoonish)
	require.Equal(t, []string{"101", "103", "201", "301"}, ids(results))
}

func TestSearch_KeywordSubstring(t *testing.T) {
	results := roomdb.Search(testDatabase(), "Lab", "", "", tuesdayNoonish)
	require.Equal(t, []string{"103", "301"}, ids(results))

	// matching is case-sensitive
	results = roomdb.Search(testDatabase(), "lab", "", "", tuesdayNoonish)
	require.Empty(t, ids(results))
}

func TestSearch_KeywordTrimmed(t *testing.T) {
	results := roomdb.Search(testDatabase(), "  Lab  ", "", "", tuesdayNoonish)
	require.Equal(t, []string{"103", "301"}, ids(results))
}

func TestSearch_EquipmentSubstring(t *testing.T) {
	results := roomdb.Search(testDatabase(), "", "Projector", "", tuesdayNoonish)
	require.Equal(t, []string{"101", "103"}, ids(results))
}

func TestSearch_AvailableOnly(t *testing.T) {
	// 103 has a Tuesday 10:30-12:00 class, so at 11:00 it is occupied
	results := roomdb.Search(testDatabase(), "", "", models.StatusAvailable, tuesdayNoonish)
	require.Equal(t, []string{"101", "201", "301"}, ids(results))

	// after the class it shows up again
	later := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	results = roomdb.Search(testDatabase(), "", "", models.StatusAvailable, later)
	require.Equal(t, []string{"101", "103", "201", "301"}, ids(results))
}

func TestSearch_ConjunctionOfCriteria(t *testing.T) {
	results := roomdb.Search(testDatabase(), "Lab", "Wi-Fi", "", tuesdayNoonish)
	require.Equal(t, []string{"301"}, ids(results))
}

func TestSearch_CarriesComputedStatus(t *testing.T) {
	results := roomdb.Search(testDatabase(), "PC Lab", "", "", tuesdayNoonish)
	require.Len(t, results, 1)
	require.Equal(t, models.StatusOccupied, results[0].Status.Status)
	require.Equal(t, "Programming", results[0].Status.Occupant)
}
