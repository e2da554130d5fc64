// Package scoring implements weighted keyword scoring over post text.
package scoring

import (
	"strings"
	"unicode"
)

// #region score

// Score evaluates text against the given categories of the table and returns
// the cumulative total plus the matched keywords per category.
// Each keyword counts once regardless of how often it appears — presence,
// not frequency, so repeated words can't stuff the score.
// All categories are evaluated fully; the classifier needs the complete
// match set for its reasoning trail.
func Score(text string, table Table, categories ...Category) (int, map[Category][]string) {
	matches := make(map[Category][]string)
	if strings.TrimSpace(text) == "" {
		return 0, matches
	}

	lower := strings.ToLower(text)
	total := 0
	for _, cat := range categories {
		wl, ok := table[cat]
		if !ok {
			continue
		}
		for _, kw := range wl.Keywords {
			if ContainsKeyword(lower, kw) {
				matches[cat] = append(matches[cat], kw)
				total += wl.Weight
			}
		}
	}
	return total, matches
}

// Matches reports whether any keyword of the category matches, and which
// keywords did. Used by the classifier's veto rules.
func Matches(text string, table Table, cat Category) []string {
	_, m := Score(text, table, cat)
	return m[cat]
}

// #endregion score

// #region keyword-matching

// ContainsKeyword reports whether lowered text contains kw at a word
// boundary. kw must already be lower-cased (Table.Normalize does this).
// Multi-word keywords match as phrases; boundaries are any non-letter,
// non-digit rune or the ends of the text.
func ContainsKeyword(lower, kw string) bool {
	if kw == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(lower[start:], kw)
		if idx < 0 {
			return false
		}
		idx += start
		if boundaryBefore(lower, idx) && boundaryAfter(lower, idx+len(kw)) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := rune(s[idx-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	r := rune(s[idx])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// #endregion keyword-matching
