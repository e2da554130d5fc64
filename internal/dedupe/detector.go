// Package dedupe detects prior engagement by scanning a post's existing
// comments for the account's identity signatures. Running this before
// classification is the primary repeat-engagement safety check.
package dedupe

import (
	"regexp"
	"strings"
)

// #region identity

// Identity holds the signature set that marks a comment as ours.
type Identity struct {
	Signatures   []string // brand name tokens, contact strings
	PhoneNumbers []string // matched on digits only, so formatting differences don't hide a hit
	URLs         []string // canonical URL substrings
}

// #endregion identity

// #region result

// Result reports whether the account already engaged and on what evidence.
type Result struct {
	AlreadyEngaged   bool
	MatchedIndicator string
}

// #endregion result

// #region detector

var nonDigitRe = regexp.MustCompile(`\D+`)

// Detector scans comment lists against a prepared identity.
type Detector struct {
	signatures []string
	phones     []string
	urls       []string
}

// NewDetector folds the identity for matching. Empty entries are dropped.
func NewDetector(id Identity) *Detector {
	d := &Detector{}
	for _, s := range id.Signatures {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			d.signatures = append(d.signatures, s)
		}
	}
	for _, p := range id.PhoneNumbers {
		if p = nonDigitRe.ReplaceAllString(p, ""); p != "" {
			d.phones = append(d.phones, p)
		}
	}
	for _, u := range id.URLs {
		if u = strings.ToLower(strings.TrimSpace(u)); u != "" {
			d.urls = append(d.urls, u)
		}
	}
	return d
}

// #endregion detector

// #region check

// Check scans each existing comment for any identity signature. The first
// match short-circuits; no match across all comments means not yet engaged.
func (d *Detector) Check(existingComments []string) Result {
	for _, comment := range existingComments {
		lower := strings.ToLower(comment)

		for _, sig := range d.signatures {
			if strings.Contains(lower, sig) {
				return Result{AlreadyEngaged: true, MatchedIndicator: sig}
			}
		}
		for _, u := range d.urls {
			if strings.Contains(lower, u) {
				return Result{AlreadyEngaged: true, MatchedIndicator: u}
			}
		}
		if len(d.phones) > 0 {
			digits := nonDigitRe.ReplaceAllString(comment, "")
			for _, p := range d.phones {
				if strings.Contains(digits, p) {
					return Result{AlreadyEngaged: true, MatchedIndicator: p}
				}
			}
		}
	}
	return Result{}
}

// #endregion check
