package generate

import "strings"

// #region honorifics

// honorifics are title tokens skipped when extracting a first name from a
// display name.
var honorifics = map[string]bool{
	"dr":     true,
	"mr":     true,
	"mrs":    true,
	"ms":     true,
	"miss":   true,
	"mx":     true,
	"prof":   true,
	"sir":    true,
	"madam":  true,
	"rev":    true,
	"fr":     true,
	"capt":   true,
	"sgt":    true,
	"master": true,
}

// #endregion honorifics

// #region placeholder

// NamePlaceholder is the recipient-name token in template bodies.
const NamePlaceholder = "{name}"

// neutralFallback substitutes when no usable first name exists.
const neutralFallback = "there"

// #endregion placeholder

// #region first-name

// FirstName extracts the first non-honorific token from a free-text display
// name. Returns "" when nothing usable remains.
func FirstName(displayName string) string {
	for _, tok := range strings.Fields(displayName) {
		cleaned := strings.Trim(tok, ".,!?:;\"'()")
		if cleaned == "" {
			continue
		}
		if honorifics[strings.ToLower(cleaned)] {
			continue
		}
		return cleaned
	}
	return ""
}

// #endregion first-name

// #region fill-name

// FillName replaces the recipient-name placeholder with the author's first
// name, or a neutral fallback when no name is usable. Text without the
// placeholder passes through unchanged.
func FillName(body, displayName string) string {
	if !strings.Contains(body, NamePlaceholder) {
		return body
	}
	name := FirstName(displayName)
	if name == "" {
		name = neutralFallback
	}
	return strings.ReplaceAll(body, NamePlaceholder, name)
}

// #endregion fill-name
