// Package normalize converts the loosely formatted date and name text found
// in the source exports into canonical forms.
package normalize

import (
	"strings"
	"time"
)

// DateKind tags the outcome of date normalization.
type DateKind int

const (
	// DateAbsent means the source cell was empty.
	DateAbsent DateKind = iota
	// DateValid means the text parsed and Value holds YYYY-MM-DD.
	DateValid
	// DateInvalid means the text did not parse; Value holds the original
	// text so callers can keep it rather than lose it.
	DateInvalid
)

// DateResult is the outcome of NormalizeDate. It is a value, not an error:
// an unparseable date must never abort the row that carries it.
type DateResult struct {
	Kind  DateKind
	Value string
}

// Stored returns the value as it should be persisted: nil for an absent
// date, the canonical or original text otherwise.
func (d DateResult) Stored() *string {
	if d.Kind == DateAbsent {
		return nil
	}
	v := d.Value
	return &v
}

// dayFirstLayouts are tried in order. The exports write dates day-first
// (29/08/1994, 29/08/94), occasionally with dashes, and some files already
// carry the canonical form.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
	"2006-01-02",
}

// NormalizeDate parses heterogeneous date text into canonical YYYY-MM-DD
// form. Empty input yields DateAbsent; text that matches no known layout
// yields DateInvalid with the original text preserved.
func NormalizeDate(raw string) DateResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DateResult{Kind: DateAbsent}
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateResult{Kind: DateValid, Value: t.Format("2006-01-02")}
		}
	}
	return DateResult{Kind: DateInvalid, Value: s}
}
