package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/santantoniari/socidb/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("InsertPerson assigns ID", func(t *testing.T) {
		p := &models.Person{
			Surname:    "ROSSI",
			GivenName:  "Mario",
			BirthDate:  strPtr("1994-08-29"),
			OriginalID: 1,
			SourceFile: "maggiorenni.csv",
		}
		if err := store.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson failed: %v", err)
		}
		if p.ID == 0 {
			t.Error("Expected person ID to be assigned")
		}
	})

	t.Run("FindPersonID matches exact triple", func(t *testing.T) {
		p := &models.Person{Surname: "BIANCHI", GivenName: "Anna", BirthDate: strPtr("1980-01-15")}
		if err := store.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson failed: %v", err)
		}

		id, found, err := store.FindPersonID(ctx, "BIANCHI", "Anna", strPtr("1980-01-15"))
		if err != nil {
			t.Fatalf("FindPersonID failed: %v", err)
		}
		if !found || id != p.ID {
			t.Errorf("FindPersonID = (%d, %v), want (%d, true)", id, found, p.ID)
		}

		// Different date is a different person.
		_, found, err = store.FindPersonID(ctx, "BIANCHI", "Anna", strPtr("1980-01-16"))
		if err != nil {
			t.Fatalf("FindPersonID failed: %v", err)
		}
		if found {
			t.Error("Expected no match for different birth date")
		}
	})

	t.Run("FindPersonID with nil birth date matches NULL only", func(t *testing.T) {
		p := &models.Person{Surname: "VERDI", GivenName: "Luca"}
		if err := store.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson failed: %v", err)
		}

		id, found, err := store.FindPersonID(ctx, "VERDI", "Luca", nil)
		if err != nil {
			t.Fatalf("FindPersonID failed: %v", err)
		}
		if !found || id != p.ID {
			t.Errorf("FindPersonID = (%d, %v), want (%d, true)", id, found, p.ID)
		}

		_, found, err = store.FindPersonID(ctx, "VERDI", "Luca", strPtr("1990-05-01"))
		if err != nil {
			t.Fatalf("FindPersonID failed: %v", err)
		}
		if found {
			t.Error("Expected NULL birth date not to match a concrete date")
		}
	})

	t.Run("PaymentExists gates duplicate triples", func(t *testing.T) {
		p := &models.Person{Surname: "NERI", GivenName: "Paola"}
		if err := store.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson failed: %v", err)
		}

		amount := decimal.RequireFromString("10.00")
		pay := &models.Payment{PersonID: p.ID, Year: 2023, Amount: amount, Receipt: 7}
		if err := store.InsertPayment(ctx, pay); err != nil {
			t.Fatalf("InsertPayment failed: %v", err)
		}
		if pay.ID == 0 {
			t.Error("Expected payment ID to be assigned")
		}

		// "10.00" and "10" canonicalize to the same stored amount.
		exists, err := store.PaymentExists(ctx, p.ID, 2023, decimal.RequireFromString("10"))
		if err != nil {
			t.Fatalf("PaymentExists failed: %v", err)
		}
		if !exists {
			t.Error("Expected payment to exist for equal amount")
		}

		exists, err = store.PaymentExists(ctx, p.ID, 2024, amount)
		if err != nil {
			t.Fatalf("PaymentExists failed: %v", err)
		}
		if exists {
			t.Error("Expected no payment for different year")
		}
	})

	t.Run("ListPersons round-trips optional fields", func(t *testing.T) {
		persons, err := store.ListPersons(ctx)
		if err != nil {
			t.Fatalf("ListPersons failed: %v", err)
		}
		if len(persons) == 0 {
			t.Fatal("Expected stored persons")
		}
		first := persons[0]
		if first.Surname != "ROSSI" || first.BirthDate == nil || *first.BirthDate != "1994-08-29" {
			t.Errorf("Unexpected first person: %+v", first)
		}
		// VERDI was stored without a birth date.
		for _, p := range persons {
			if p.Surname == "VERDI" && p.BirthDate != nil {
				t.Errorf("Expected nil birth date for VERDI, got %q", *p.BirthDate)
			}
		}
	})

	t.Run("UpdatePersonName rewrites casing", func(t *testing.T) {
		p := &models.Person{Surname: "ESPOSITO", GivenName: "GIULIA"}
		if err := store.InsertPerson(ctx, p); err != nil {
			t.Fatalf("InsertPerson failed: %v", err)
		}
		if err := store.UpdatePersonName(ctx, p.ID, "Esposito", "Giulia"); err != nil {
			t.Fatalf("UpdatePersonName failed: %v", err)
		}

		id, found, err := store.FindPersonID(ctx, "Esposito", "Giulia", nil)
		if err != nil || !found || id != p.ID {
			t.Errorf("Expected renamed person to be findable, got (%d, %v, %v)", id, found, err)
		}

		if err := store.UpdatePersonName(ctx, 999999, "X", "Y"); err == nil {
			t.Error("Expected error updating nonexistent person")
		}
	})

	t.Run("Reset empties the store", func(t *testing.T) {
		if err := store.Reset(ctx); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		persons, err := store.ListPersons(ctx)
		if err != nil {
			t.Fatalf("ListPersons failed: %v", err)
		}
		if len(persons) != 0 {
			t.Errorf("Expected empty store after reset, got %d persons", len(persons))
		}
		n, err := store.CountPayments(ctx)
		if err != nil {
			t.Fatalf("CountPayments failed: %v", err)
		}
		if n != 0 {
			t.Errorf("Expected 0 payments after reset, got %d", n)
		}
	})
}
