package ingest

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// wordPunct splits text into runs of word characters and runs of
// punctuation, dropping whitespace. "don't" becomes "don", "'", "t".
var wordPunct = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]+`)

// Tokenize splits chapter text into raw word-like tokens. No case folding
// or filtering happens here; that is the Sanitizer's job.
func Tokenize(text string) []string {
	tokens := wordPunct.FindAllString(norm.NFC.String(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
