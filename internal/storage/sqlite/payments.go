package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/santantoniari/socidb/internal/models"
)

// Amounts are stored as a fixed two-decimal string, so the uniqueness
// triple (person, year, amount) compares exactly regardless of how the
// source cell spelled the number ("10", "10.0", "10,00" are all "10.00").
func amountKey(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// PaymentExists reports whether a payment with the exact
// (person, year, amount) triple is already stored.
func (s *SQLiteStore) PaymentExists(ctx context.Context, personID int64, year int, amount decimal.Decimal) (bool, error) {
	query := `
		SELECT id FROM Payment
		WHERE person_id = ? AND year = ? AND amount = ?
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, personID, year, amountKey(amount)).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check payment: %w", err)
	}
	return true, nil
}

// InsertPayment persists a new payment and sets pay.ID to the assigned row ID.
func (s *SQLiteStore) InsertPayment(ctx context.Context, pay *models.Payment) error {
	query := `
		INSERT INTO Payment (person_id, year, paid_on, amount, receipt, booklet)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		pay.PersonID,
		pay.Year,
		pay.PaidOn,
		amountKey(pay.Amount),
		pay.Receipt,
		pay.Booklet,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted payment ID: %w", err)
	}
	pay.ID = id
	return nil
}

// CountPayments returns the total number of stored payments.
func (s *SQLiteStore) CountPayments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Payment").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return n, nil
}
