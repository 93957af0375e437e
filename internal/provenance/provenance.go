// Package provenance keeps an append-only history of actions taken against
// knowledge entries. Events are never mutated or deleted once recorded; the
// backing log is an external store behind the narrow Log interface.
package provenance

import (
	"context"
	"time"
)

// Action describes what was done to an entry.
type Action string

const (
	ActionCreated  Action = "created"
	ActionAccessed Action = "accessed"
	ActionVoted    Action = "voted"
	ActionUpdated  Action = "updated"
)

// validActions is the set of recognized action values.
var validActions = map[Action]bool{
	ActionCreated: true, ActionAccessed: true,
	ActionVoted: true, ActionUpdated: true,
}

// ValidAction reports whether a is a recognized action.
func ValidAction(a Action) bool { return validActions[a] }

// Event is a single immutable provenance record. EntryID is a back-reference,
// not ownership; an event outlives the entry it describes.
type Event struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entry_id"`
	Action    Action    `json:"action"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// Log is the persistence interface the tracker writes through. The backing
// store (flat file, embedded database) is external and swappable; failures
// propagate to the caller, never retried here.
type Log interface {
	Append(ctx context.Context, event Event) error
	Query(ctx context.Context, entryID string) ([]Event, error)
	All(ctx context.Context) (map[string][]Event, error)
}
