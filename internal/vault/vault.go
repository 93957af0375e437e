// Package vault is the knowledge entry store: a single JSON file holding all
// entries, written atomically with a backup of the previous version. Entry
// validation and tag normalization happen here, at the store boundary, so the
// engine only ever sees canonical records.
package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

const backupSuffix = ".bak"

// vaultFile is the on-disk envelope.
type vaultFile struct {
	Entries []entry.Entry `json:"entries"`
}

// Vault holds the in-memory entry list backed by one JSON file.
type Vault struct {
	path    string
	entries []entry.Entry
	byID    map[string]int
}

// Open loads the vault at path. A missing file yields an empty vault; the
// first Save creates it.
func Open(path string) (*Vault, error) {
	v := &Vault{path: path, byID: make(map[string]int)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading vault %s: %w", path, err)
	}

	var vf vaultFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parsing vault %s: %w", path, err)
	}

	for _, e := range vf.Entries {
		e.Tags = entry.NormalizeTags(e.Tags)
		if _, dup := v.byID[e.ID]; dup {
			return nil, fmt.Errorf("vault %s: duplicate entry id %q", path, e.ID)
		}
		v.byID[e.ID] = len(v.entries)
		v.entries = append(v.entries, e)
	}
	return v, nil
}

// Len returns the number of entries in the vault.
func (v *Vault) Len() int { return len(v.entries) }

// Entries returns a snapshot copy of the vault, in stable corpus order.
// The engine operates on snapshots; mutating the copy never touches the vault.
func (v *Vault) Entries() []entry.Entry {
	out := make([]entry.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Get returns the entry with the given ID.
func (v *Vault) Get(id string) (entry.Entry, bool) {
	i, ok := v.byID[id]
	if !ok {
		return entry.Entry{}, false
	}
	return v.entries[i], true
}

// validate checks an entry at the store boundary.
func validate(e *entry.Entry) error {
	if e.Content == "" {
		return fmt.Errorf("entry content is required")
	}
	if !entry.ValidType(e.Type) {
		return fmt.Errorf("unknown entry type %q", e.Type)
	}
	if e.Status != "" && !entry.ValidStatus(e.Status) {
		return fmt.Errorf("unknown status %q", e.Status)
	}
	return nil
}

// Add stores a new entry, generating an ID and timestamps if absent, and
// returns the canonical record.
func (v *Vault) Add(e entry.Entry) (entry.Entry, error) {
	if err := validate(&e); err != nil {
		return entry.Entry{}, fmt.Errorf("adding entry: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if _, dup := v.byID[e.ID]; dup {
		return entry.Entry{}, fmt.Errorf("adding entry: id %q already exists", e.ID)
	}
	if e.Status == "" {
		e.Status = entry.StatusDraft
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	e.Tags = entry.NormalizeTags(e.Tags)

	v.byID[e.ID] = len(v.entries)
	v.entries = append(v.entries, e)
	return e, nil
}

// Update replaces an existing entry and bumps its UpdatedAt.
func (v *Vault) Update(e entry.Entry) error {
	i, ok := v.byID[e.ID]
	if !ok {
		return fmt.Errorf("updating entry: id %q not found", e.ID)
	}
	if err := validate(&e); err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	e.Tags = entry.NormalizeTags(e.Tags)
	e.UpdatedAt = time.Now().UTC()
	v.entries[i] = e
	return nil
}

// SetQualityScore caches a scorer output on an entry without bumping
// UpdatedAt; the score is derived data, not an edit.
func (v *Vault) SetQualityScore(id string, score float64) bool {
	i, ok := v.byID[id]
	if !ok {
		return false
	}
	v.entries[i].QualityScore = score
	return true
}

// Touch increments an entry's usage count without bumping UpdatedAt.
func (v *Vault) Touch(id string) bool {
	i, ok := v.byID[id]
	if !ok {
		return false
	}
	v.entries[i].UsageCount++
	return true
}

// AddVote records a helpful or unhelpful vote. Votes are feedback about the
// entry, not an edit, so UpdatedAt stays put.
func (v *Vault) AddVote(id string, helpful bool) (entry.Entry, bool) {
	i, ok := v.byID[id]
	if !ok {
		return entry.Entry{}, false
	}
	if helpful {
		v.entries[i].HelpfulVotes++
	} else {
		v.entries[i].UnhelpfulVotes++
	}
	return v.entries[i], true
}

// Remove deletes the given IDs, preserving the order of survivors, and
// returns how many entries were removed.
func (v *Vault) Remove(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	var kept []entry.Entry
	removed := 0
	for _, e := range v.entries {
		if drop[e.ID] {
			removed++
			continue
		}
		kept = append(kept, e)
	}

	v.entries = kept
	v.byID = make(map[string]int, len(kept))
	for i, e := range kept {
		v.byID[e.ID] = i
	}
	return removed
}

// Save writes the vault atomically: marshal to a temp file, back up the
// previous version, then rename into place.
func (v *Vault) Save() error {
	if err := os.MkdirAll(filepath.Dir(v.path), 0o755); err != nil {
		return fmt.Errorf("creating vault directory: %w", err)
	}

	data, err := json.MarshalIndent(vaultFile{Entries: v.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling vault: %w", err)
	}

	tmp := v.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing vault temp file: %w", err)
	}

	if _, err := os.Stat(v.path); err == nil {
		if err := os.Rename(v.path, v.path+backupSuffix); err != nil {
			return fmt.Errorf("backing up vault: %w", err)
		}
	}

	if err := os.Rename(tmp, v.path); err != nil {
		return fmt.Errorf("replacing vault file: %w", err)
	}
	return nil
}

// Import merges entries from every vault file under dir matching the given
// doublestar patterns. Entries whose IDs already exist are skipped. Returns
// the number of entries imported.
func (v *Vault) Import(dir string, patterns []string) (int, error) {
	imported := 0
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return imported, fmt.Errorf("bad import pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			n, err := v.importFile(path)
			if err != nil {
				return imported, err
			}
			imported += n
		}
	}
	return imported, nil
}

func (v *Vault) importFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading import file %s: %w", path, err)
	}

	var vf vaultFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return 0, fmt.Errorf("parsing import file %s: %w", path, err)
	}

	imported := 0
	for _, e := range vf.Entries {
		if _, exists := v.byID[e.ID]; exists && e.ID != "" {
			continue
		}
		if _, err := v.Add(e); err != nil {
			return imported, fmt.Errorf("import file %s: %w", path, err)
		}
		imported++
	}
	return imported, nil
}
