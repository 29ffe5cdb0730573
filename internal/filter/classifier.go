package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Classifier decides keep/drop for a single listing. Deterministic and
// total over all string inputs: absent fields arrive as empty strings.
type Classifier struct {
	kw Keywords
}

func NewClassifier(kw Keywords) *Classifier {
	return &Classifier{kw: kw}
}

// Normalize folds diacritics and lower-cases, so styled Unicode in
// channel posts still matches plain keywords. Shared with the channel
// scanner, which matches search terms against raw message text.
func Normalize(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// Keep reports whether a listing is relevant to the search term.
//
// Negative keywords are matched against the title only: a relevant
// posting may mention an adjacent technical skill in its description
// ("familiarity with EHR software") without being a software role.
// Positives are matched against title + description. The verbatim
// search-term fallback guarantees the exact query that produced a
// result is never filtered away by an incomplete positive list.
func (c *Classifier) Keep(title, description, searchTerm string) bool {
	titleNorm := Normalize(title)
	for _, neg := range c.kw.Negative {
		if neg != "" && strings.Contains(titleNorm, neg) {
			return false
		}
	}

	combined := titleNorm + " " + Normalize(description)
	for _, pos := range c.kw.Positive {
		if pos != "" && strings.Contains(combined, pos) {
			return true
		}
	}

	if term := Normalize(searchTerm); term != "" && strings.Contains(titleNorm, term) {
		return true
	}

	return false
}
