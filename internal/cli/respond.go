package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkowalczyk/engagepilot/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "respond [post text]",
		Short: "Run the full decision flow for one post",
		Long: "Checks for prior engagement, classifies the post, selects or generates " +
			"a response and plans its actuation. The outcome is written to the audit log.",
		Args: cobra.MinimumNArgs(1),
		Run:  runRespond,
	}

	cmd.Flags().StringP("author", "a", "", "Post author name for personalization")
	cmd.Flags().StringArray("comment", nil, "Existing comment on the post (repeatable)")

	RootCmd.AddCommand(cmd)
}

func runRespond(cmd *cobra.Command, args []string) {
	author, _ := cmd.Flags().GetString("author")
	comments, _ := cmd.Flags().GetStringArray("comment")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	p, db, err := openPipeline(cmd.Context(), cfg)
	if err != nil {
		exitErr("build pipeline", err)
	}
	defer db.Close()

	out, err := p.Process(cmd.Context(), pipeline.Post{
		Text:             strings.Join(args, " "),
		AuthorName:       author,
		ExistingComments: comments,
	})
	if err != nil && !out.Skipped {
		exitErr("process post", err)
	}

	b, _ := json.MarshalIndent(summarize(out), "", "  ")
	fmt.Println(string(b))
}

// outcomeSummary is the flat JSON shape printed for one processed post.
type outcomeSummary struct {
	Category   string   `json:"category"`
	Score      int      `json:"score"`
	Reasoning  []string `json:"reasoning"`
	Skipped    bool     `json:"skipped"`
	SkipReason string   `json:"skip_reason,omitempty"`
	Response   string   `json:"response,omitempty"`
	Source     string   `json:"source,omitempty"`
	TemplateID string   `json:"template_id,omitempty"`
	PlanEvents int      `json:"plan_events,omitempty"`
	AuditID    string   `json:"audit_id,omitempty"`
}

func summarize(out pipeline.Outcome) outcomeSummary {
	s := outcomeSummary{
		Category:   string(out.Classification.Category),
		Score:      out.Classification.Score,
		Reasoning:  out.Classification.Reasoning,
		Skipped:    out.Skipped,
		SkipReason: out.SkipReason,
		AuditID:    out.AuditID,
	}
	if out.Response != nil {
		s.Response = out.Response.Text
		s.Source = string(out.Response.Source)
		s.TemplateID = out.Response.TemplateID
	}
	if out.Plan != nil {
		s.PlanEvents = len(out.Plan.Events)
	}
	return s
}
