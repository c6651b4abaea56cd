package textmod

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var leetReplacer = strings.NewReplacer(
	"0", "o",
	"1", "i",
	"3", "e",
	"4", "a",
	"5", "s",
	"7", "t",
	"@", "a",
	"$", "s",
)

// fold strips accents, lower-cases and collapses whitespace.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// normalize is fold with common digit and symbol substitutions undone.
func normalize(s string) string {
	return unleet(fold(s))
}

// unleet undoes substitutions only inside words that contain a letter, so
// plain numbers such as "at 5" or "room 101" are kept.
func unleet(folded string) string {
	words := strings.Split(folded, " ")
	for i, w := range words {
		if strings.IndexFunc(w, unicode.IsLetter) >= 0 {
			words[i] = leetReplacer.Replace(w)
		}
	}
	return strings.Join(words, " ")
}

// normalizeTerm folds a blocklist entry the same way as the text it is
// matched against.
func normalizeTerm(term string) string {
	return normalize(strings.TrimSpace(term))
}
