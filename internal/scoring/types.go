package scoring

import "strings"

// #region category

// Category names a keyword bucket in the weight table.
type Category string

const (
	CategoryNegative  Category = "negative"
	CategoryBlacklist Category = "brand_blacklist"
	CategoryService   Category = "service"
	CategoryISO       Category = "iso"
	CategoryGeneral   Category = "general"
	CategoryModifier  Category = "modifier"
)

// ScoredCategories are the buckets that contribute to the cumulative total.
// Negative and blacklist matches are handled as explicit rules upstream.
var ScoredCategories = []Category{CategoryService, CategoryISO, CategoryGeneral, CategoryModifier}

// #endregion category

// #region weight-table

// WeightedList pairs a keyword list with the score each match contributes.
type WeightedList struct {
	Keywords []string
	Weight   int
}

// Table maps categories to their weighted keyword lists. Immutable per run.
type Table map[Category]WeightedList

// Normalize lower-cases and trims every keyword and drops empties.
// Called once at config load so matching never re-folds keywords.
func (t Table) Normalize() Table {
	out := make(Table, len(t))
	for cat, wl := range t {
		kws := make([]string, 0, len(wl.Keywords))
		for _, kw := range wl.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		out[cat] = WeightedList{Keywords: kws, Weight: wl.Weight}
	}
	return out
}

// #endregion weight-table
