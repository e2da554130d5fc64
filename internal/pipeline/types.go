package pipeline

import (
	"github.com/mkowalczyk/engagepilot/internal/classify"
	"github.com/mkowalczyk/engagepilot/internal/dedupe"
	"github.com/mkowalczyk/engagepilot/internal/generate"
	"github.com/mkowalczyk/engagepilot/internal/humanize"
)

// #region post

// Post is the plain post record consumed from the feed collaborator.
type Post struct {
	Text             string
	AuthorName       string
	ExistingComments []string
}

// #endregion post

// #region outcome

// Outcome carries whatever the pipeline produced for one post. A skipped
// post always has a SkipReason; it is never dropped silently.
type Outcome struct {
	Duplicate      dedupe.Result
	Classification classify.Classification
	Response       *generate.Response
	Plan           *humanize.Plan

	Skipped    bool
	SkipReason string
	AuditID    string
}

// #endregion outcome
