package roomdb

import (
	"context"
	"database/sql"
	"fmt"

	"roomfinder/internal/models"
)

// Load reads the whole room database from MySQL into memory. Rooms come
// back in seed order (ord column), slots and seeded reviews in primary
// key order, so the in-memory database preserves the insertion order
// search results depend on.
func Load(ctx context.Context, db *sql.DB) (*Database, error) {
	out := NewDatabase()

	rows, err := db.QueryContext(ctx, `SELECT id, name, equipment FROM rooms ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var room models.Classroom
		if err := rows.Scan(&room.ID, &room.Name, &room.Equipment); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out.Add(&room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slotRows, err := db.QueryContext(ctx, `SELECT room_id, day, start_time, end_time, title FROM room_slots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}
	defer slotRows.Close()
	for slotRows.Next() {
		var (
			roomID string
			day    sql.NullInt64
			slot   models.ClassSlot
		)
		if err := slotRows.Scan(&roomID, &day, &slot.Start, &slot.End, &slot.Title); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		if day.Valid {
			slot.Day = int(day.Int64)
		}
		room, err := out.Get(roomID)
		if err != nil {
			// slot for a room that was never seeded; skip it
			continue
		}
		room.Schedule = append(room.Schedule, slot)
	}
	if err := slotRows.Err(); err != nil {
		return nil, err
	}

	reviewRows, err := db.QueryContext(ctx, `SELECT room_id, content FROM room_reviews ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load seeded reviews: %w", err)
	}
	defer reviewRows.Close()
	for reviewRows.Next() {
		var roomID, content string
		if err := reviewRows.Scan(&roomID, &content); err != nil {
			return nil, fmt.Errorf("scan seeded review: %w", err)
		}
		room, err := out.Get(roomID)
		if err != nil {
			continue
		}
		room.Reviews = append(room.Reviews, content)
	}
	return out, reviewRows.Err()
}
