package ingest

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexivis/pkg/lexivis/stoplist"
)

// Sanitizer turns raw word-like tokens into clean vocabulary tokens:
// lowercased, punctuation stripped, alphabetic only, stopwords removed.
type Sanitizer struct {
	stops *stoplist.Stoplist
}

// NewSanitizer creates a sanitizer bound to the given stoplist.
// A nil stoplist filters only the fixed augmentation terms.
func NewSanitizer(stops *stoplist.Stoplist) *Sanitizer {
	if stops == nil {
		stops = stoplist.New(nil)
	}
	return &Sanitizer{stops: stops}
}

// Stoplist returns the stoplist the sanitizer filters against.
func (s *Sanitizer) Stoplist() *stoplist.Stoplist {
	return s.stops
}

// Sanitize cleans raw tokens, preserving order and duplicates.
// The result is never nil.
func (s *Sanitizer) Sanitize(raw []string) []string {
	out := make([]string, 0, len(raw))

	// Transformers carry state, so each call gets its own chain.
	clean := transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.P)),
		cases.Lower(language.Und),
	)

	for _, tok := range raw {
		word, _, err := transform.String(clean, tok)
		if err != nil {
			continue
		}
		if s.stops.IsStop(word) || !isAlpha(word) {
			continue
		}
		out = append(out, word)
	}
	return out
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
