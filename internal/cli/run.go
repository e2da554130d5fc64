package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/config"
	"github.com/mkowalczyk/engagepilot/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process posts interactively with live config reload",
		Long: "Reads one post per line from stdin (plain text, or a JSON object with " +
			"text, author and comments fields) and prints the outcome. The config file " +
			"is watched; valid edits apply to the next post.",
		Args: cobra.NoArgs,
		Run:  runLoop,
	}

	RootCmd.AddCommand(cmd)
}

// postLine is the optional JSON input shape for one post.
type postLine struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Comments []string `json:"comments"`
}

func runLoop(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	p, db, err := openPipeline(cmd.Context(), cfg)
	if err != nil {
		exitErr("build pipeline", err)
	}
	defer db.Close()

	watcher, err := config.Watch(getConfigPath(), func(next *config.Config) {
		if err := p.Refresh(next); err != nil {
			log.Printf("[CLI] refresh failed, keeping previous config: %v", err)
		}
	})
	if err != nil {
		exitErr("watch config", err)
	}
	defer watcher.Close()

	fmt.Println("engagepilot ready.")
	fmt.Printf("  config: %s\n", getConfigPath())
	fmt.Println("Paste a post per line (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		post := parsePost(line)
		out, err := p.Process(cmd.Context(), post)
		if err != nil && !out.Skipped {
			log.Printf("[CLI] process error: %v", err)
			continue
		}

		b, _ := json.MarshalIndent(summarize(out), "", "  ")
		fmt.Printf("\n%s\n\n", string(b))
	}
}

// parsePost treats lines starting with "{" as JSON and anything else as
// bare post text.
func parsePost(line string) pipeline.Post {
	if strings.HasPrefix(line, "{") {
		var pl postLine
		if err := json.Unmarshal([]byte(line), &pl); err == nil && pl.Text != "" {
			return pipeline.Post{Text: pl.Text, AuthorName: pl.Author, ExistingComments: pl.Comments}
		}
	}
	return pipeline.Post{Text: line}
}
