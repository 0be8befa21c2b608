package models

import "github.com/shopspring/decimal"

// Payment is one yearly membership fee paid by a Person.
//
// A payment is unique per (PersonID, Year, Amount); a row with an
// identical triple to a stored one is a duplicate and is dropped on
// ingestion, even if receipt, booklet or date differ.
type Payment struct {
	// ID is the store-assigned row ID.
	ID int64

	// PersonID references the owning Person.
	PersonID int64

	// Year is the membership year, taken from the year column header.
	Year int

	// PaidOn is the canonical payment date, the original unparseable
	// text, or nil when absent.
	PaidOn *string

	// Amount is the fee paid. Stored and compared as a fixed two-decimal
	// string, so "10,00", "10.0" and "10" are the same amount.
	Amount decimal.Decimal

	// Receipt and Booklet are the receipt and booklet numbers, 0 when
	// blank or unparseable in the source.
	Receipt int64
	Booklet int64
}
