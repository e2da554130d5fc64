// Package classify sorts post text into engagement categories through an
// ordered rule cascade. Every rule that fires appends to the reasoning
// trail; a post is never skipped without a recorded reason.
package classify

import (
	"fmt"
	"strings"

	"github.com/mkowalczyk/engagepilot/internal/scoring"
)

// #region classifier

// Classifier applies veto rules and threshold resolution over a weight table.
type Classifier struct {
	table      scoring.Table
	thresholds Thresholds
}

// New creates a classifier. The table must already be normalized.
func New(table scoring.Table, thresholds Thresholds) *Classifier {
	return &Classifier{table: table, thresholds: thresholds}
}

// #endregion classifier

// #region classify

// Classify runs the rule cascade:
//  1. any negative keyword → skip, unconditionally
//  2. blacklisted brand without a modifier keyword → skip
//  3. threshold resolution over the scored categories, service → iso → general
//  4. should-skip when the category is skip or the total sits at/below the floor
func (c *Classifier) Classify(text string) Classification {
	var reasoning []string

	// --- Hard veto pass ---

	// 1. Negative keywords dominate. No score rescues a negative post.
	if negs := scoring.Matches(text, c.table, scoring.CategoryNegative); len(negs) > 0 {
		reasoning = append(reasoning,
			fmt.Sprintf("negative keyword matched: %s", strings.Join(negs, ", ")))
		return Classification{
			Category:   OutcomeSkip,
			Matches:    map[scoring.Category][]string{scoring.CategoryNegative: negs},
			Reasoning:  reasoning,
			ShouldSkip: true,
		}
	}

	// 2. Blacklisted brand mention, unless a modifier keyword permits it.
	brands := scoring.Matches(text, c.table, scoring.CategoryBlacklist)
	modifiers := scoring.Matches(text, c.table, scoring.CategoryModifier)
	if len(brands) > 0 && len(modifiers) == 0 {
		reasoning = append(reasoning,
			fmt.Sprintf("blacklisted brand %q mentioned with no modifier present", brands[0]))
		return Classification{
			Category:   OutcomeSkip,
			Matches:    map[scoring.Category][]string{scoring.CategoryBlacklist: brands},
			Reasoning:  reasoning,
			ShouldSkip: true,
		}
	}
	if len(brands) > 0 {
		reasoning = append(reasoning,
			fmt.Sprintf("blacklisted brand %q permitted by modifier %q", brands[0], modifiers[0]))
	}

	// --- Threshold resolution ---

	total, matches := scoring.Score(text, c.table, scoring.ScoredCategories...)
	for _, cat := range scoring.ScoredCategories {
		if kws := matches[cat]; len(kws) > 0 {
			reasoning = append(reasoning,
				fmt.Sprintf("%s keywords matched (%s), weight %d each",
					cat, strings.Join(kws, ", "), c.table[cat].Weight))
		}
	}

	category := c.resolveCategory(total)
	switch category {
	case OutcomeSkip:
		reasoning = append(reasoning,
			fmt.Sprintf("score %d below general threshold %d", total, c.thresholds.General))
	default:
		reasoning = append(reasoning,
			fmt.Sprintf("score %d meets %s threshold", total, category))
	}

	shouldSkip := category == OutcomeSkip || total <= c.thresholds.Skip
	if shouldSkip && category != OutcomeSkip {
		reasoning = append(reasoning,
			fmt.Sprintf("score %d at or below skip floor %d", total, c.thresholds.Skip))
		category = OutcomeSkip
	}

	return Classification{
		Category:   category,
		Score:      total,
		Matches:    matches,
		Reasoning:  reasoning,
		ShouldSkip: shouldSkip,
	}
}

// #endregion classify

// #region resolve-category

// resolveCategory tests thresholds most specific first, so when a total
// clears several thresholds the higher-value category wins.
func (c *Classifier) resolveCategory(total int) OutcomeCategory {
	switch {
	case total >= c.thresholds.Service:
		return OutcomeService
	case total >= c.thresholds.ISO:
		return OutcomeISO
	case total >= c.thresholds.General:
		return OutcomeGeneral
	default:
		return OutcomeSkip
	}
}

// #endregion resolve-category
