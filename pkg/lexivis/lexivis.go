package lexivis

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
	"github.com/cognicore/lexivis/pkg/lexivis/document"
	"github.com/cognicore/lexivis/pkg/lexivis/ingest"
	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
	"github.com/cognicore/lexivis/pkg/lexivis/scale"
	"github.com/cognicore/lexivis/pkg/lexivis/stoplist"
)

// DefaultWordCount is the number of words reported per chapter.
const DefaultWordCount = 25

// Lexivis is the chapter statistics pipeline facade
type Lexivis struct {
	sanitizer *ingest.Sanitizer
	reader    *ingest.Reader
	analyzer  *analytics.Analyzer
	rng       scale.Range
	workers   int
	logger    *slog.Logger

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Lexivis instance
type Options struct {
	Sanitizer *ingest.Sanitizer   // defaults to the English stoplist
	Reader    *ingest.Reader      // used by GenerateFiles
	Selection analytics.Selection // which words each chapter reports
	Range     *scale.Range        // target range, defaults to scale.DefaultRange
	Workers   int                 // >1 analyzes chapters concurrently
	Logger    *slog.Logger
}

// New creates a Lexivis instance with the given options
func New(opts Options) *Lexivis {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sanitizer := opts.Sanitizer
	if sanitizer == nil {
		sanitizer = ingest.NewSanitizer(stoplist.English())
	}
	reader := opts.Reader
	if reader == nil {
		reader = &ingest.Reader{Logger: logger}
	}
	rng := scale.DefaultRange
	if opts.Range != nil {
		rng = *opts.Range
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &Lexivis{
		sanitizer: sanitizer,
		reader:    reader,
		analyzer:  &analytics.Analyzer{Selection: opts.Selection, Logger: logger},
		rng:       rng,
		workers:   workers,
		logger:    logger,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Result is the visualization data of one document: one record list per
// chapter, in chapter input order.
type Result struct {
	RunID    string
	Chapters [][]analytics.Record
}

// Words returns the total number of records across chapters.
func (r Result) Words() int {
	n := 0
	for _, ch := range r.Chapters {
		n += len(ch)
	}
	return n
}

// Generate builds one document from the raw chapter token streams,
// analyzes every chapter and rescales pos, freq and uniqueness within
// each chapter. It never touches the filesystem.
func (l *Lexivis) Generate(ctx context.Context, chapters [][]string, wordCount int) (Result, error) {
	if wordCount <= 0 {
		return Result{}, fmt.Errorf("word count %d: %w", wordCount, internalerr.ErrInvalidInput)
	}
	if err := l.rng.Validate(); err != nil {
		return Result{}, err
	}

	runID := l.newRunID()
	log := l.logger.With("run_id", runID)

	doc := document.New(chapters, l.sanitizer)
	log.Debug("document built", "chapters", doc.Len())

	out := make([][]analytics.Record, doc.Len())
	analyze := func(i int) {
		records := l.analyzer.Analyze(doc.Chapter(i), wordCount, doc)
		out[i] = scale.Chapter(records, l.rng)
	}

	if l.workers == 1 || doc.Len() < 2 {
		for i := 0; i < doc.Len(); i++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			analyze(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(l.workers)
		for i := 0; i < doc.Len(); i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				analyze(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	res := Result{RunID: runID, Chapters: out}
	log.Debug("document analyzed",
		"words", res.Words(),
		"averages_computed", doc.Computations())
	return res, nil
}

// GenerateFiles reads chapter files in order and runs Generate over them.
func (l *Lexivis) GenerateFiles(ctx context.Context, paths []string, wordCount int) (Result, error) {
	chapters, err := l.reader.ReadChapters(ctx, paths)
	if err != nil {
		return Result{}, err
	}
	return l.Generate(ctx, ingest.RawTokens(chapters), wordCount)
}

func (l *Lexivis) newRunID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ulid.MustNew(ulid.Now(), l.entropy).String()
}
