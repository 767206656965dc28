package analytics

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/cognicore/lexivis/pkg/lexivis/freq"
	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
)

// Record is one selected word of a chapter. Before scaling Freq is the
// local frequency, Uniqueness the local minus average frequency, and Pos
// the index of the first occurrence.
type Record struct {
	Word       string  `json:"word"`
	Freq       float64 `json:"freq"`
	Uniqueness float64 `json:"uniqueness"`
	Pos        float64 `json:"pos"`
}

// AverageFrequencies is the read side of a document the analyzer needs.
type AverageFrequencies interface {
	AverageFrequency(word string) float64
}

// Selection decides which words of a chapter are reported.
type Selection int

const (
	// SelectEncounter takes the first N distinct words in the order they
	// first appear in the chapter.
	SelectEncounter Selection = iota
	// SelectFrequency takes the N most frequent words, ties broken by
	// first appearance.
	SelectFrequency
)

func (s Selection) String() string {
	switch s {
	case SelectEncounter:
		return "encounter"
	case SelectFrequency:
		return "frequency"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// ParseSelection converts a name into a Selection
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "", "encounter":
		return SelectEncounter, nil
	case "frequency":
		return SelectFrequency, nil
	default:
		return 0, fmt.Errorf("selection %q: %w", name, internalerr.ErrInvalidInput)
	}
}

// Analyzer computes unscaled word records for single chapters.
type Analyzer struct {
	Selection Selection
	Logger    *slog.Logger
}

// NewAnalyzer creates an analyzer with encounter-order selection.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Selection: SelectEncounter}
}

// Analyze selects up to wordCount words from tokens and computes their
// frequency, first position and uniqueness against doc. An empty chapter
// or a non-positive wordCount yields an empty, non-nil slice.
func (a *Analyzer) Analyze(tokens []string, wordCount int, doc AverageFrequencies) []Record {
	if len(tokens) == 0 || wordCount <= 0 {
		return []Record{}
	}

	dist := freq.NewDist(tokens)
	words := a.selectWords(dist, wordCount)

	records := make([]Record, 0, len(words))
	for _, w := range words {
		local := dist.Freq(w)
		pos, _ := dist.First(w)
		records = append(records, Record{
			Word:       w,
			Freq:       local,
			Uniqueness: local - doc.AverageFrequency(w),
			Pos:        float64(pos),
		})
	}

	a.logger().Debug("chapter analyzed",
		"tokens", dist.N,
		"distinct", dist.Unique(),
		"selected", len(records),
		"selection", a.Selection.String())
	return records
}

func (a *Analyzer) selectWords(dist *freq.Dist, n int) []string {
	words := dist.Words()
	if a.Selection == SelectFrequency {
		// Words() is already in first-appearance order, so a stable sort
		// breaks count ties by position.
		sort.SliceStable(words, func(i, j int) bool {
			return dist.Count(words[i]) > dist.Count(words[j])
		})
	}
	if len(words) > n {
		words = words[:n]
	}
	return words
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
