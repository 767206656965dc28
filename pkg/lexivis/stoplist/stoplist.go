package stoplist

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"
	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishYAML []byte

// Augmentation is added to every stoplist regardless of its base set.
// The empty string catches tokens that were pure punctuation, and "said"
// is narrative filler that dominates dialogue-heavy chapters.
var Augmentation = []string{"", "said"}

// Source records where a stopword came from
type Source int

const (
	SourceBase   Source = iota // supplied base set (English list or a user file)
	SourcePolicy               // fixed augmentation
	SourceExtra                // added after construction
)

func (s Source) String() string {
	switch s {
	case SourceBase:
		return "base"
	case SourcePolicy:
		return "policy"
	case SourceExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// Stoplist is an immutable-by-convention set of stopwords built once per run
type Stoplist struct {
	stops    map[string]Source
	snowball bool
}

// Option configures a Stoplist
type Option func(*Stoplist)

// WithSnowball also treats words from the snowball English stopword list as stops.
func WithSnowball() Option {
	return func(s *Stoplist) {
		s.snowball = true
	}
}

// New creates a stoplist from base terms plus the fixed Augmentation.
func New(base []string, opts ...Option) *Stoplist {
	stops := make(map[string]Source, len(base)+len(Augmentation))
	for _, w := range base {
		stops[strings.ToLower(w)] = SourceBase
	}
	for _, w := range Augmentation {
		stops[w] = SourcePolicy
	}
	s := &Stoplist{stops: stops}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnglishTerms returns the standard English stopword set.
func EnglishTerms() ([]string, error) {
	var doc struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(englishYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode english stoplist: %w", err)
	}
	return doc.Terms, nil
}

// English builds a stoplist from the standard English set.
func English(opts ...Option) *Stoplist {
	terms, err := EnglishTerms()
	if err != nil {
		// embedded at build time; a decode failure is a broken binary
		panic(err)
	}
	return New(terms, opts...)
}

// IsStop checks if a token is a stopword
func (s *Stoplist) IsStop(token string) bool {
	if _, ok := s.stops[token]; ok {
		return true
	}
	return s.snowball && english.IsStopWord(token)
}

// SourceOf reports why a token is a stopword.
func (s *Stoplist) SourceOf(token string) (Source, bool) {
	src, ok := s.stops[token]
	return src, ok
}

// Add adds an extra stopword. Call only while assembling the stoplist.
func (s *Stoplist) Add(token string) {
	token = strings.ToLower(token)
	if _, ok := s.stops[token]; ok {
		return
	}
	s.stops[token] = SourceExtra
}

// Len returns the number of explicit stopwords (snowball terms excluded).
func (s *Stoplist) Len() int {
	return len(s.stops)
}

// UsesSnowball reports whether the snowball list is consulted.
func (s *Stoplist) UsesSnowball() bool {
	return s.snowball
}

// All returns all explicit stopwords, sorted
func (s *Stoplist) All() []string {
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}
