package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a knowledge entry to the vault",
	Long: `Adds an entry. With --content, all fields come from flags; without it,
an interactive prompt walks through them.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("content", "", "entry content (omit for interactive mode)")
	addCmd.Flags().String("type", string(entry.TypeLesson), "entry type")
	addCmd.Flags().String("context", "", "where/why this knowledge applies")
	addCmd.Flags().StringSlice("tags", nil, "tags")
	addCmd.Flags().String("status", "", "initial status (default draft)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	content, _ := cmd.Flags().GetString("content")
	typeStr, _ := cmd.Flags().GetString("type")
	contextStr, _ := cmd.Flags().GetString("context")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	statusStr, _ := cmd.Flags().GetString("status")

	e := entry.Entry{
		Content: content,
		Type:    entry.Type(typeStr),
		Context: contextStr,
		Tags:    tags,
		Status:  entry.Status(statusStr),
	}

	if content == "" {
		if e, err = promptEntry(); err != nil {
			return err
		}
	}

	added, err := v.Add(e)
	if err != nil {
		return err
	}
	if err := v.Save(); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}

	tracker, database, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := tracker.Record(ctx, added.ID, provenance.ActionCreated, "cli", ""); err != nil {
		return fmt.Errorf("recording creation: %w", err)
	}

	fmt.Printf("Added %s entry %s\n", added.Type, added.ID)
	return nil
}

func promptEntry() (entry.Entry, error) {
	var e entry.Entry

	typeSelect := promptui.Select{
		Label: "Entry type",
		Items: []string{
			"lesson", "pattern", "antipattern", "tip", "insight",
			"experiment", "snippet", "tutorial", "solution", "documentation",
		},
	}
	_, typeStr, err := typeSelect.Run()
	if err != nil {
		return e, fmt.Errorf("entry type: %w", err)
	}
	e.Type = entry.Type(typeStr)

	contentPrompt := promptui.Prompt{
		Label: "Content",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("content is required")
			}
			return nil
		},
	}
	if e.Content, err = contentPrompt.Run(); err != nil {
		return e, fmt.Errorf("content: %w", err)
	}

	contextPrompt := promptui.Prompt{Label: "Context (optional)"}
	if e.Context, err = contextPrompt.Run(); err != nil {
		return e, fmt.Errorf("context: %w", err)
	}

	tagsPrompt := promptui.Prompt{Label: "Tags (comma-separated, optional)"}
	tagsStr, err := tagsPrompt.Run()
	if err != nil {
		return e, fmt.Errorf("tags: %w", err)
	}
	if tagsStr != "" {
		e.Tags = strings.Split(tagsStr, ",")
	}
	return e, nil
}
