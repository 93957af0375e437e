package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
)

var voteCmd = &cobra.Command{
	Use:   "vote [entry-id]",
	Short: "Record whether an entry was helpful",
	Args:  cobra.ExactArgs(1),
	RunE:  runVote,
}

func init() {
	voteCmd.Flags().Bool("down", false, "record the entry as unhelpful")
	rootCmd.AddCommand(voteCmd)
}

func runVote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	down, _ := cmd.Flags().GetBool("down")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	direction := "helpful"
	if down {
		direction = "unhelpful"
	}
	e, ok := v.AddVote(args[0], !down)
	if !ok {
		return fmt.Errorf("entry %q not found", args[0])
	}
	if err := v.Save(); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}

	tracker, database, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := tracker.Record(ctx, e.ID, provenance.ActionVoted, "cli", direction); err != nil {
		return fmt.Errorf("recording vote: %w", err)
	}

	fmt.Printf("Recorded %s vote for %s (%d up / %d down)\n",
		direction, e.ID, e.HelpfulVotes, e.UnhelpfulVotes)
	return nil
}
