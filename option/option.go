// Package option normalizes the data a select widget is given into a flat
// list of records. Input entries are either bare labels or label/value
// records; the distinction is resolved once here and never again.
package option

import (
	"fmt"
	"slices"
)

// Record is a normalized option. Value need not be unique.
type Record struct {
	Value   string
	Label   string
	Subtext string
}

// Source is one input entry: a StringOption or a RecordOption.
type Source interface {
	record() (Record, error)
}

// StringOption is a bare label whose value equals its label.
type StringOption string

func (s StringOption) record() (Record, error) {
	return Record{Value: string(s), Label: string(s)}, nil
}

// RecordOption is an explicit label/value pair with optional subtext.
// An empty Value defaults to the label.
type RecordOption struct {
	Label   string `yaml:"label" json:"label"`
	Value   string `yaml:"value" json:"value"`
	Subtext string `yaml:"subtext,omitempty" json:"subtext,omitempty"`
}

func (r RecordOption) record() (Record, error) {
	if r.Label == "" {
		return Record{}, fmt.Errorf("record has no label")
	}
	v := r.Value
	if v == "" {
		v = r.Label
	}
	return Record{Value: v, Label: r.Label, Subtext: r.Subtext}, nil
}

// InvalidSourceError reports an entry that is neither a string nor a
// usable label/value record.
type InvalidSourceError struct {
	Index  int
	Reason string
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("option %d: %s", e.Index, e.Reason)
}

// Strings wraps bare labels as sources.
func Strings(labels ...string) []Source {
	out := make([]Source, len(labels))
	for i, l := range labels {
		out[i] = StringOption(l)
	}
	return out
}

// Normalize converts sources into records, preserving input order unless
// less is non-nil, in which case records are stably sorted by it.
func Normalize(sources []Source, less Comparator) ([]Record, error) {
	records := make([]Record, 0, len(sources))
	for i, src := range sources {
		if src == nil {
			return nil, &InvalidSourceError{Index: i, Reason: "nil entry"}
		}
		rec, err := src.record()
		if err != nil {
			return nil, &InvalidSourceError{Index: i, Reason: err.Error()}
		}
		records = append(records, rec)
	}
	if less != nil {
		slices.SortStableFunc(records, less)
	}
	return records, nil
}
