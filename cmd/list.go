package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vault entries",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("type", "", "filter by entry type")
	listCmd.Flags().String("status", "", "filter by status")
	listCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	statusFilter, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	var entries []entry.Entry
	for _, e := range v.Entries() {
		if typeFilter != "" && e.Type != entry.Type(typeFilter) {
			continue
		}
		if statusFilter != "" && e.Status != entry.Status(statusFilter) {
			continue
		}
		entries = append(entries, e)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("Vault is empty.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-13s %-12s %s", e.ID, e.Type, e.Status, firstLine(e.Content))
		if len(e.Tags) > 0 {
			line += "  [" + strings.Join(e.Tags, ",") + "]"
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}
