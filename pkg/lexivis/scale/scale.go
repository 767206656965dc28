package scale

import (
	"fmt"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
	"github.com/cognicore/lexivis/pkg/lexivis/internalerr"
)

// Field selects the numeric record field to rescale.
type Field int

const (
	FieldPos Field = iota
	FieldFreq
	FieldUniqueness
)

func (f Field) String() string {
	switch f {
	case FieldPos:
		return "pos"
	case FieldFreq:
		return "freq"
	case FieldUniqueness:
		return "uniqueness"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

func (f Field) get(r *analytics.Record) float64 {
	switch f {
	case FieldPos:
		return r.Pos
	case FieldFreq:
		return r.Freq
	default:
		return r.Uniqueness
	}
}

func (f Field) set(r *analytics.Record, v float64) {
	switch f {
	case FieldPos:
		r.Pos = v
	case FieldFreq:
		r.Freq = v
	default:
		r.Uniqueness = v
	}
}

// Range is a closed target interval.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// DefaultRange starts at 0.1 rather than 0 because the visualizer treats
// zero as absent, and a chapter's minimum word must still render.
var DefaultRange = Range{Min: 0.1, Max: 1}

// Validate rejects inverted ranges.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("range [%v, %v]: min above max: %w", r.Min, r.Max, internalerr.ErrInvalidInput)
	}
	return nil
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// MinMax linearly maps field of every record from its observed range onto
// [lo, hi], in place, and returns records. Record order never changes.
// When all values are equal there is no range to map from and every value
// becomes the midpoint of [lo, hi].
func MinMax(records []analytics.Record, field Field, lo, hi float64) []analytics.Record {
	if len(records) == 0 {
		return records
	}

	actMin := field.get(&records[0])
	actMax := actMin
	for i := 1; i < len(records); i++ {
		v := field.get(&records[i])
		if v < actMin {
			actMin = v
		}
		if v > actMax {
			actMax = v
		}
	}

	actRange := actMax - actMin
	if actRange == 0 {
		mid := (lo + hi) / 2
		for i := range records {
			field.set(&records[i], mid)
		}
		return records
	}

	span := hi - lo
	for i := range records {
		v := field.get(&records[i])
		field.set(&records[i], lo+(v-actMin)/actRange*span)
	}
	return records
}

// Chapter rescales pos, freq and uniqueness of one chapter's records
// independently onto r.
func Chapter(records []analytics.Record, r Range) []analytics.Record {
	records = MinMax(records, FieldPos, r.Min, r.Max)
	records = MinMax(records, FieldFreq, r.Min, r.Max)
	records = MinMax(records, FieldUniqueness, r.Min, r.Max)
	return records
}
