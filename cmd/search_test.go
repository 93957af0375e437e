package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/config"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/db"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/vault"
)

// setupWorkspace writes a config, vault and provenance DB under a temp dir
// and points the package-level cfgFile at it.
func setupWorkspace(t *testing.T, entries ...entry.Entry) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.VaultPath = filepath.Join(dir, "vault.json")
	cfg.ProvenanceDB = filepath.Join(dir, "provenance.db")

	cfgPath := filepath.Join(dir, ".brain.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	v, err := vault.Open(cfg.VaultPath)
	if err != nil {
		t.Fatalf("opening vault: %v", err)
	}
	for _, e := range entries {
		if _, err := v.Add(e); err != nil {
			t.Fatalf("adding entry: %v", err)
		}
	}
	if err := v.Save(); err != nil {
		t.Fatalf("saving vault: %v", err)
	}

	prev := cfgFile
	cfgFile = cfgPath
	t.Cleanup(func() { cfgFile = prev })
	return cfg
}

func TestSearchJSONRecordsAccess(t *testing.T) {
	cfg := setupWorkspace(t, entry.Entry{
		ID:      "hit",
		Type:    entry.TypeTip,
		Content: "use async io for throughput",
	})

	if err := searchCmd.Flags().Set("json", "true"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { searchCmd.Flags().Set("json", "false") })

	if err := runSearch(searchCmd, []string{"async"}); err != nil {
		t.Fatalf("runSearch: %v", err)
	}

	// JSON output must not skip provenance or usage bookkeeping.
	v, err := vault.Open(cfg.VaultPath)
	if err != nil {
		t.Fatalf("reopening vault: %v", err)
	}
	got, ok := v.Get("hit")
	if !ok {
		t.Fatal("entry missing after search")
	}
	if got.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1", got.UsageCount)
	}

	database, err := db.Open(cfg.ProvenanceDB)
	if err != nil {
		t.Fatalf("opening provenance db: %v", err)
	}
	defer database.Close()

	events, err := provenance.NewStore(database).Query(context.Background(), "hit")
	if err != nil {
		t.Fatalf("querying events: %v", err)
	}
	if len(events) != 1 || events[0].Action != provenance.ActionAccessed {
		t.Fatalf("events = %+v, want one accessed event", events)
	}
}
