package jiebatag

import "strings"

// SplitTag splits a "word/flag" tag on its last slash. A tag without a
// slash has an empty flag.
func SplitTag(tag string) (word, flag string) {
	i := strings.LastIndexByte(tag, '/')
	if i < 0 {
		return tag, ""
	}
	return tag[:i], tag[i+1:]
}

func isNoun(flag string) bool {
	return strings.Contains(flag, "n")
}

// MergeNouns joins each run of adjacent noun-flagged tags into one phrase,
// e.g. [税务/n 稽查局/n 检举/v 徐/nr] -> [税务稽查局 徐].
func MergeNouns(tags []string) []string {
	phrases := []string{}

	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			phrases = append(phrases, b.String())
			b.Reset()
		}
	}
	for _, tag := range tags {
		word, flag := SplitTag(tag)
		if !isNoun(flag) {
			flush()
			continue
		}
		b.WriteString(word)
	}
	flush()

	return phrases
}

// Nouns tags text with t and merges the noun runs of a successful result.
func Nouns(t Tagger, text string) Result {
	r := TagText(t, text)
	if !r.Succeeded() {
		return r
	}
	return NewResult(MergeNouns(r.tags))
}
