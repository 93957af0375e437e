package provenance

import (
	"context"
	"fmt"
	"sort"
)

// Tracker records and reports provenance through a Log. It holds no state of
// its own beyond what it reads back from the log per call.
type Tracker struct {
	log Log
}

// NewTracker creates a Tracker writing through the given log.
func NewTracker(log Log) *Tracker {
	return &Tracker{log: log}
}

// Record appends one event for an entry. Unknown actions are rejected before
// touching the log.
func (t *Tracker) Record(ctx context.Context, entryID string, action Action, actor, details string) error {
	if entryID == "" {
		return fmt.Errorf("recording provenance: entry id is required")
	}
	if !ValidAction(action) {
		return fmt.Errorf("recording provenance: unknown action %q", action)
	}
	return t.log.Append(ctx, Event{
		EntryID: entryID,
		Action:  action,
		Actor:   actor,
		Details: details,
	})
}

// History returns the full event history for one entry, oldest first.
func (t *Tracker) History(ctx context.Context, entryID string) ([]Event, error) {
	return t.log.Query(ctx, entryID)
}

// AccessCount pairs an entry with how often it was accessed.
type AccessCount struct {
	EntryID  string `json:"entry_id"`
	Accesses int    `json:"accesses"`
}

// Report aggregates the tracked corpus: how many entries have any history,
// the most-accessed ones, and how many were never accessed at all.
type Report struct {
	TotalEntries  int           `json:"total_entries"`
	TopAccessed   []AccessCount `json:"top_accessed"`
	NeverAccessed int           `json:"never_accessed"`
}

// Report summarizes all recorded provenance. topN bounds the most-accessed
// list; topN <= 0 means no bound. Entries with history but zero accessed
// events count as never accessed.
func (t *Tracker) Report(ctx context.Context, topN int) (Report, error) {
	byEntry, err := t.log.All(ctx)
	if err != nil {
		return Report{}, err
	}

	rep := Report{TotalEntries: len(byEntry)}

	var counts []AccessCount
	for entryID, events := range byEntry {
		accesses := 0
		for _, e := range events {
			if e.Action == ActionAccessed {
				accesses++
			}
		}
		if accesses == 0 {
			rep.NeverAccessed++
			continue
		}
		counts = append(counts, AccessCount{EntryID: entryID, Accesses: accesses})
	}

	sort.Slice(counts, func(a, b int) bool {
		if counts[a].Accesses != counts[b].Accesses {
			return counts[a].Accesses > counts[b].Accesses
		}
		return counts[a].EntryID < counts[b].EntryID
	})
	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	rep.TopAccessed = counts
	return rep, nil
}
