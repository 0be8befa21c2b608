// Package storage provides abstractions for the migration target store.
package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/santantoniari/socidb/internal/models"
)

// Store defines the operations the migration engine needs from the
// relational store. This abstraction keeps the ingestion and audit logic
// independent of the SQLite backend.
//
// The engine is single-threaded: FindPersonID followed by InsertPerson
// (and PaymentExists followed by InsertPayment) is not atomic, and the
// dedup invariants rely on no concurrent writer between the two calls.
type Store interface {
	// Reset drops both tables so a run can rebuild the store from scratch.
	Reset(ctx context.Context) error

	// FindPersonID looks up a person by the exact identity triple.
	// A nil birthDate matches only rows whose stored date is NULL.
	FindPersonID(ctx context.Context, surname, givenName string, birthDate *string) (int64, bool, error)

	// InsertPerson persists a new person and sets p.ID.
	InsertPerson(ctx context.Context, p *models.Person) error

	// ListPersons returns every stored person, in insertion order.
	ListPersons(ctx context.Context) ([]models.Person, error)

	// UpdatePersonName rewrites the stored surname and given name of one
	// person. Used only by the name-style normalization pass.
	UpdatePersonName(ctx context.Context, id int64, surname, givenName string) error

	// PaymentExists reports whether a payment with the exact
	// (person, year, amount) triple is already stored.
	PaymentExists(ctx context.Context, personID int64, year int, amount decimal.Decimal) (bool, error)

	// InsertPayment persists a new payment and sets pay.ID.
	InsertPayment(ctx context.Context, pay *models.Payment) error

	// CountPayments returns the total number of stored payments.
	CountPayments(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
