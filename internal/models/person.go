package models

// Person is one member row in the store.
//
// BirthDate is nil when the source cell was empty. When the source text
// could not be parsed as a date, the raw text is kept as-is rather than
// dropped, so that re-runs of the migration dedup consistently against
// what is already stored.
type Person struct {
	// ID is the store-assigned row ID.
	ID int64

	Surname   string
	GivenName string

	// Birthplace is the LUOGO cell, kept verbatim.
	Birthplace string

	// BirthDate is a canonical YYYY-MM-DD date, the original unparseable
	// text, or nil when absent.
	BirthDate *string

	// Group is the REFER. cell: the group the member belongs to.
	Group string

	// FirstYear is the earliest membership year with a paid fee seen when
	// this Person was first created, nil when no year block had a fee.
	FirstYear *int

	// Notes aggregates diagnostics and the verbatim NOTE cell, joined
	// with ", ".
	Notes string

	// OriginalID is the n° identifier from the source row.
	OriginalID int64

	// SourceFile is the name of the file this Person was first seen in.
	SourceFile string
}
