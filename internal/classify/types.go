package classify

import "github.com/mkowalczyk/engagepilot/internal/scoring"

// #region outcome-category

// OutcomeCategory is the mutually exclusive bucket a post is sorted into.
type OutcomeCategory string

const (
	OutcomeService OutcomeCategory = "service"
	OutcomeISO     OutcomeCategory = "iso"
	OutcomeGeneral OutcomeCategory = "general"
	OutcomeSkip    OutcomeCategory = "skip"
)

// #endregion outcome-category

// #region thresholds

// Thresholds holds the score cutoffs for category resolution.
// Resolution tests service first, then iso, then general, so the most
// specific satisfied category wins. Skip is the floor: totals at or below
// it always mark the post skippable.
type Thresholds struct {
	Service int
	ISO     int
	General int
	Skip    int
}

// #endregion thresholds

// #region classification

// Classification is the full output for one post. Value object, created
// fresh per call and never mutated after return.
type Classification struct {
	Category   OutcomeCategory
	Score      int
	Matches    map[scoring.Category][]string
	Reasoning  []string
	ShouldSkip bool
}

// #endregion classification
