package provenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/db"
)

// Store is a SQLite-backed provenance log.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Append inserts one event. If event.ID is empty a UUID is generated; if the
// timestamp is zero the current time is recorded. Prior events are never
// touched.
func (s *Store) Append(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO provenance_events (id, entry_id, action, actor, timestamp, details)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.EntryID,
		string(event.Action),
		event.Actor,
		event.Timestamp.UTC().Format(time.DateTime),
		event.Details,
	)
	if err != nil {
		return fmt.Errorf("appending provenance event: %w", err)
	}
	return nil
}

// Query returns all events for one entry, oldest first.
func (s *Store) Query(ctx context.Context, entryID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_id, action, actor, timestamp, details
		FROM provenance_events
		WHERE entry_id = ?
		ORDER BY timestamp ASC, rowid ASC`, entryID)
	if err != nil {
		return nil, fmt.Errorf("querying provenance events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// All returns every recorded event grouped by entry ID, oldest first per entry.
func (s *Store) All(ctx context.Context) (map[string][]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_id, action, actor, timestamp, details
		FROM provenance_events
		ORDER BY timestamp ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying provenance events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}

	byEntry := make(map[string][]Event)
	for _, e := range events {
		byEntry[e.EntryID] = append(byEntry[e.EntryID], e)
	}
	return byEntry, nil
}

// DeleteBefore removes events older than the given time and returns the
// number of deleted rows. Retention is the store owner's concern; the tracker
// itself never deletes.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM provenance_events WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old provenance events: %w", err)
	}
	return res.RowsAffected()
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var (
			e      Event
			action string
			ts     string
		)
		if err := rows.Scan(&e.ID, &e.EntryID, &action, &e.Actor, &ts, &e.Details); err != nil {
			return nil, fmt.Errorf("scanning provenance event: %w", err)
		}
		e.Action = Action(action)
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			e.Timestamp = t
		} else if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
