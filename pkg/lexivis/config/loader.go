package config

import (
	"fmt"
	"log/slog"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
	"github.com/cognicore/lexivis/pkg/lexivis/ingest"
	"github.com/cognicore/lexivis/pkg/lexivis/scale"
	"github.com/cognicore/lexivis/pkg/lexivis/stoplist"
)

// Loader turns a Config into initialized pipeline components
type Loader struct {
	Config Config
	Logger *slog.Logger
}

// Components holds all loaded configuration components
type Components struct {
	Stoplist  *stoplist.Stoplist
	Sanitizer *ingest.Sanitizer
	Reader    *ingest.Reader
	Selection analytics.Selection
	Range     scale.Range
}

// Load builds the stoplist (English base set unless a stoplist file is
// configured, plus the fixed augmentation and any extra terms) and the
// components that depend on it.
func (l *Loader) Load() (*Components, error) {
	var opts []stoplist.Option
	if l.Config.Snowball {
		opts = append(opts, stoplist.WithSnowball())
	}

	var stops *stoplist.Stoplist
	if l.Config.Stoplist != "" {
		sl, err := LoadStoplist(l.Config.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stops = stoplist.New(sl.Terms, opts...)
	} else {
		stops = stoplist.English(opts...)
	}
	for _, w := range l.Config.ExtraStops {
		stops.Add(w)
	}

	selection, err := analytics.ParseSelection(l.Config.Selection)
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}

	rng := scale.Range{Min: l.Config.ScaleMin, Max: l.Config.ScaleMax}
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("load scale range: %w", err)
	}

	return &Components{
		Stoplist:  stops,
		Sanitizer: ingest.NewSanitizer(stops),
		Reader:    &ingest.Reader{Logger: l.Logger},
		Selection: selection,
		Range:     rng,
	}, nil
}
