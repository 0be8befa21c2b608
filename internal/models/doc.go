// Package models defines the domain models for the registry migration.
//
// The store holds exactly two entities:
//   - Person: one member of the registry, identified for deduplication by
//     the triple (surname, given name, birth date)
//   - Payment: one yearly membership fee paid by a Person
//
// A Person owns zero or more Payments. Both are created during ingestion
// and never updated or deleted by the migration engine itself; the only
// later mutation is the name-style normalization pass, which rewrites
// surname/given-name casing in place.
package models
