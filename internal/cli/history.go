package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/audit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent engagement decisions",
		Long:  "Prints the newest audit log entries, newest first, with their reasoning trails.",
		Args:  cobra.NoArgs,
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max entries")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	path := dbPath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("load config", err)
		}
		path = cfg.Storage.DBPath
	}

	db, err := audit.OpenDB(path)
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	store, err := audit.NewStore(db)
	if err != nil {
		exitErr("open audit store", err)
	}
	entries, err := store.Recent(limit)
	if err != nil {
		exitErr("read history", err)
	}

	if len(entries) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
