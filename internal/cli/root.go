// Package cli implements the engagepilot CLI commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/audit"
	"github.com/mkowalczyk/engagepilot/internal/config"
	"github.com/mkowalczyk/engagepilot/internal/llm"
	"github.com/mkowalczyk/engagepilot/internal/pipeline"
	"github.com/mkowalczyk/engagepilot/internal/random"
	"github.com/mkowalczyk/engagepilot/internal/template"
)

var (
	configPath string
	dbPath     string
	seed       int64
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "engagepilot",
	Short: "Decision and actuation core for feed engagement",
	Long: "engagepilot classifies feed posts against weighted keyword tables, " +
		"picks or generates a response, and plans human-paced actuation for it.",
}

func init() {
	// .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $ENGAGEPILOT_CONFIG or config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: storage.db_path from config)")
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for deterministic randomness (0 = wall clock)")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("ENGAGEPILOT_CONFIG"); env != "" {
		return env
	}
	return "config.yaml"
}

func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

func rng() random.Source {
	if seed != 0 {
		return random.NewSeeded(seed)
	}
	return random.New()
}

// openPipeline wires the full pipeline: config, SQLite stores, the optional
// external generator. The returned handle must be closed by the caller.
func openPipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, *sql.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.Storage.DBPath
	}
	db, err := audit.OpenDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	store, err := audit.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	usage, err := template.NewUsageStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	opts := pipeline.Options{
		RNG:   rng(),
		Audit: store,
		Usage: usage,
	}
	if cfg.LLM.Enabled {
		gen, err := llm.NewGeminiGenerator(ctx, llm.GeminiConfig{
			Model:  cfg.LLM.Model,
			Prompt: cfg.LLM.Prompt,
		})
		if err != nil {
			log.Printf("[CLI] external generator unavailable, template path only: %v", err)
		} else {
			opts.External = gen
		}
	}

	p, err := pipeline.New(cfg, opts)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return p, db, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
