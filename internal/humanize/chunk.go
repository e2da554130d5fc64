package humanize

import "unicode"

// #region split-chunks

// SplitChunks breaks text into typing chunks at sentence boundaries,
// falling back to clause and then word boundaries when a chunk exceeds
// maxLen runes. Chunks are contiguous substrings: concatenating them
// reproduces the input exactly, whitespace included.
func SplitChunks(text string, maxLen int) []string {
	if text == "" {
		return nil
	}
	if maxLen <= 0 {
		return []string{text}
	}

	var chunks []string
	for _, sentence := range splitAfter(text, isSentenceEnd) {
		if runeLen(sentence) <= maxLen {
			chunks = append(chunks, sentence)
			continue
		}
		for _, clause := range splitAfter(sentence, isClausePunct) {
			if runeLen(clause) <= maxLen {
				chunks = append(chunks, clause)
				continue
			}
			chunks = append(chunks, splitWords(clause, maxLen)...)
		}
	}
	return chunks
}

// #endregion split-chunks

// #region boundary-split

// splitAfter cuts text after each boundary rune plus any whitespace run
// that follows it, so no characters are dropped.
func splitAfter(text string, boundary func(rune) bool) []string {
	runes := []rune(text)
	var pieces []string
	start := 0
	i := 0
	for i < len(runes) {
		if boundary(runes[i]) {
			// Consume the full punctuation run ("...", "?!").
			for i < len(runes) && boundary(runes[i]) {
				i++
			}
			// A boundary only counts when followed by whitespace or EOT,
			// so "3.5mm" stays whole.
			if i < len(runes) && !unicode.IsSpace(runes[i]) {
				continue
			}
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			pieces = append(pieces, string(runes[start:i]))
			start = i
			continue
		}
		i++
	}
	if start < len(runes) {
		pieces = append(pieces, string(runes[start:]))
	}
	return pieces
}

// splitWords cuts text into pieces of at most maxLen runes, breaking after
// whitespace runs. A single word longer than maxLen stays whole.
func splitWords(text string, maxLen int) []string {
	runes := []rune(text)
	var pieces []string
	start := 0
	lastBreak := -1
	for i := 0; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) && (i+1 >= len(runes) || !unicode.IsSpace(runes[i+1])) {
			lastBreak = i + 1
		}
		if i-start+1 > maxLen && lastBreak > start {
			pieces = append(pieces, string(runes[start:lastBreak]))
			start = lastBreak
		}
	}
	if start < len(runes) {
		pieces = append(pieces, string(runes[start:]))
	}
	return pieces
}

func runeLen(s string) int { return len([]rune(s)) }

// #endregion boundary-split
