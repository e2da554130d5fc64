package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/humanize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan [text]",
		Short: "Plan humanized actuation for a piece of text",
		Long:  "Prints the chunking and the event stream the actuator would execute, without touching the pipeline.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPlan,
	}

	cmd.Flags().Bool("chunks", false, "Print only the chunk boundaries")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	chunksOnly, _ := cmd.Flags().GetBool("chunks")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	text := strings.Join(args, " ")
	planner := humanize.NewPlanner(cfg.Profile(), rng())
	plan := planner.Plan(text)

	if chunksOnly {
		for i, chunk := range plan.Chunks {
			fmt.Printf("%2d  %q\n", i, chunk)
		}
		return
	}

	var total time.Duration
	for _, ev := range plan.Events {
		total += ev.Duration
		switch ev.Kind {
		case humanize.EventTypeChar:
			fmt.Printf("type     %q  %v\n", string(ev.Char), ev.Duration)
		case humanize.EventBackspace:
			fmt.Printf("back         %v\n", ev.Duration)
		case humanize.EventPause:
			safe := ""
			if ev.CancelSafe {
				safe = "  cancel-safe"
			}
			fmt.Printf("pause        %v%s\n", ev.Duration, safe)
		case humanize.EventPointerStep:
			fmt.Printf("pointer  %+d,%+d  %v\n", ev.DX, ev.DY, ev.Duration)
		case humanize.EventIncidental:
			fmt.Printf("action   %s\n", ev.Action)
		}
	}
	fmt.Printf("\n%d chunks, %d events, ~%v total\n", len(plan.Chunks), len(plan.Events), total.Round(time.Millisecond))
}
