package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/classify"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify [post text]",
		Short: "Classify a post without generating a response",
		Long:  "Runs the rule cascade and prints the category, score, matches and reasoning trail.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runClassify,
	}

	RootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	c := classify.New(cfg.WeightTable(), cfg.ClassifyThresholds())
	result := c.Classify(strings.Join(args, " "))

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
