package document

import (
	"sync"

	"github.com/cognicore/lexivis/pkg/lexivis/freq"
	"github.com/cognicore/lexivis/pkg/lexivis/ingest"
)

// Document holds the sanitized chapters of one text and memoizes each
// word's average frequency across those chapters.
type Document struct {
	chapters [][]string
	dists    []*freq.Dist

	mu           sync.Mutex
	avg          map[string]*avgEntry
	computations int

	compute func(word string) float64 // replaced in tests
}

type avgEntry struct {
	once  sync.Once
	value float64
}

// New sanitizes every chapter independently and builds one frequency
// distribution per chapter. Chapters stay index-aligned with raw.
func New(raw [][]string, s *ingest.Sanitizer) *Document {
	if s == nil {
		s = ingest.NewSanitizer(nil)
	}
	chapters := make([][]string, len(raw))
	for i, tokens := range raw {
		chapters[i] = s.Sanitize(tokens)
	}
	return FromTokens(chapters)
}

// FromTokens builds a Document from already sanitized chapters.
func FromTokens(chapters [][]string) *Document {
	d := &Document{
		chapters: chapters,
		dists:    make([]*freq.Dist, len(chapters)),
		avg:      make(map[string]*avgEntry),
	}
	for i, ch := range chapters {
		d.dists[i] = freq.NewDist(ch)
	}
	d.compute = d.meanFrequency
	return d
}

// Len returns the number of chapters
func (d *Document) Len() int {
	return len(d.chapters)
}

// Chapters returns the sanitized token sequences in input order.
// Callers must not modify them.
func (d *Document) Chapters() [][]string {
	return d.chapters
}

// Chapter returns the sanitized tokens of chapter i.
func (d *Document) Chapter(i int) []string {
	return d.chapters[i]
}

// Dist returns the frequency distribution of chapter i.
func (d *Document) Dist(i int) *freq.Dist {
	return d.dists[i]
}

// AverageFrequency returns the mean of word's per-chapter frequency,
// counting chapters without the word as zero. The value is computed once
// per word and reused; concurrent callers asking for the same word wait
// for the single computation.
func (d *Document) AverageFrequency(word string) float64 {
	d.mu.Lock()
	e, ok := d.avg[word]
	if !ok {
		e = &avgEntry{}
		d.avg[word] = e
	}
	d.mu.Unlock()

	e.once.Do(func() {
		e.value = d.compute(word)
		d.mu.Lock()
		d.computations++
		d.mu.Unlock()
	})
	return e.value
}

// Computations reports how many averages were actually computed.
func (d *Document) Computations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.computations
}

// meanFrequency averages over chapters, not over total occurrences: a word
// concentrated in one chapter scores lower than one spread evenly.
func (d *Document) meanFrequency(word string) float64 {
	if len(d.dists) == 0 {
		return 0
	}
	var sum float64
	for _, dist := range d.dists {
		sum += dist.Freq(word)
	}
	return sum / float64(len(d.dists))
}
