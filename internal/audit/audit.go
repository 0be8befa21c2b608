// Package audit runs post-hoc passes over the finished store: duplicate
// detection, casing-style analysis, and the name-style normalization pass.
package audit

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/santantoniari/socidb/internal/models"
	"github.com/santantoniari/socidb/internal/storage"
)

// IDGroup collects persons sharing one original n° identifier. More than
// one member means the source export itself had conflicting numbering.
type IDGroup struct {
	OriginalID int64
	Members    []models.Person
}

// TripleGroup collects persons sharing the full identity triple. More than
// one member is a cross-file duplicate that evaded ingestion dedup, which
// can happen when birth-date normalization differed between files.
type TripleGroup struct {
	Surname   string
	GivenName string
	BirthDate *string
	Members   []models.Person
}

// Report summarizes the three duplicate/style scans plus aggregate counts.
type Report struct {
	Persons     int
	Payments    int
	SourceFiles int

	DuplicateIDs     []IDGroup
	DuplicateTriples []TripleGroup

	Lowercase int
	Uppercase int
	Mixed     int
}

// Run scans the store read-only and builds a Report.
func Run(ctx context.Context, store storage.Store) (*Report, error) {
	persons, err := store.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := store.CountPayments(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Persons:  len(persons),
		Payments: payments,
	}

	files := make(map[string]struct{})
	byID := make(map[int64][]models.Person)
	byTriple := make(map[string][]models.Person)
	for _, p := range persons {
		files[p.SourceFile] = struct{}{}
		byID[p.OriginalID] = append(byID[p.OriginalID], p)
		byTriple[tripleKey(p)] = append(byTriple[tripleKey(p)], p)

		switch classifyCasing(p.Surname + p.GivenName) {
		case casingLower:
			r.Lowercase++
		case casingUpper:
			r.Uppercase++
		default:
			r.Mixed++
		}
	}
	r.SourceFiles = len(files)

	for id, members := range byID {
		if len(members) > 1 {
			r.DuplicateIDs = append(r.DuplicateIDs, IDGroup{OriginalID: id, Members: members})
		}
	}
	sort.Slice(r.DuplicateIDs, func(i, j int) bool {
		a, b := r.DuplicateIDs[i], r.DuplicateIDs[j]
		if len(a.Members) != len(b.Members) {
			return len(a.Members) > len(b.Members)
		}
		return a.OriginalID < b.OriginalID
	})

	for _, members := range byTriple {
		if len(members) > 1 {
			first := members[0]
			r.DuplicateTriples = append(r.DuplicateTriples, TripleGroup{
				Surname:   first.Surname,
				GivenName: first.GivenName,
				BirthDate: first.BirthDate,
				Members:   members,
			})
		}
	}
	sort.Slice(r.DuplicateTriples, func(i, j int) bool {
		a, b := r.DuplicateTriples[i], r.DuplicateTriples[j]
		if len(a.Members) != len(b.Members) {
			return len(a.Members) > len(b.Members)
		}
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		return a.GivenName < b.GivenName
	})

	return r, nil
}

func tripleKey(p models.Person) string {
	date := "\x00absent"
	if p.BirthDate != nil {
		date = *p.BirthDate
	}
	return p.Surname + "\x1f" + p.GivenName + "\x1f" + date
}

type casing int

const (
	casingLower casing = iota
	casingUpper
	casingMixed
)

// classifyCasing tags a name as all-lowercase, all-uppercase, or mixed.
// Strings without letters compare equal to their lowercase form and count
// as lowercase.
func classifyCasing(s string) casing {
	switch {
	case s == strings.ToLower(s):
		return casingLower
	case s == strings.ToUpper(s):
		return casingUpper
	default:
		return casingMixed
	}
}

// Render writes a human-readable summary of the report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Persons: %d\n", r.Persons)
	fmt.Fprintf(w, "Payments: %d\n", r.Payments)
	fmt.Fprintf(w, "Source files: %d\n", r.SourceFiles)

	fmt.Fprintf(w, "\nDuplicate original IDs: %d\n", len(r.DuplicateIDs))
	for _, g := range r.DuplicateIDs {
		fmt.Fprintf(w, "  n° %d (%d occurrences):\n", g.OriginalID, len(g.Members))
		for _, p := range g.Members {
			fmt.Fprintf(w, "    id %d: %s %s (born %s) from %s\n",
				p.ID, p.Surname, p.GivenName, dateOrDash(p.BirthDate), p.SourceFile)
		}
	}

	fmt.Fprintf(w, "\nDuplicate name+birthdate triples: %d\n", len(r.DuplicateTriples))
	for _, g := range r.DuplicateTriples {
		fmt.Fprintf(w, "  %s %s (born %s), %d occurrences:\n",
			g.Surname, g.GivenName, dateOrDash(g.BirthDate), len(g.Members))
		for _, p := range g.Members {
			fmt.Fprintf(w, "    id %d from %s\n", p.ID, p.SourceFile)
		}
	}

	fmt.Fprintf(w, "\nName casing: %d lowercase, %d uppercase, %d mixed\n",
		r.Lowercase, r.Uppercase, r.Mixed)
}

func dateOrDash(d *string) string {
	if d == nil {
		return "-"
	}
	return *d
}
