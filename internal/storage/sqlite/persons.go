package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/santantoniari/socidb/internal/models"
)

// FindPersonID looks up a person by the exact (surname, given name, birth
// date) triple. The IS comparison makes a nil birth date match only rows
// stored as NULL, which keeps re-runs idempotent for rows without a date.
func (s *SQLiteStore) FindPersonID(ctx context.Context, surname, givenName string, birthDate *string) (int64, bool, error) {
	query := `
		SELECT id FROM Person
		WHERE surname = ? AND given_name = ? AND birth_date IS ?
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, surname, givenName, birthDate).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find person: %w", err)
	}
	return id, true, nil
}

// InsertPerson persists a new person and sets p.ID to the assigned row ID.
func (s *SQLiteStore) InsertPerson(ctx context.Context, p *models.Person) error {
	query := `
		INSERT INTO Person (surname, given_name, birthplace, birth_date,
		                    group_name, first_year, notes, original_id, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Surname,
		p.GivenName,
		p.Birthplace,
		p.BirthDate,
		p.Group,
		p.FirstYear,
		p.Notes,
		p.OriginalID,
		p.SourceFile,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted person ID: %w", err)
	}
	p.ID = id
	return nil
}

// ListPersons returns every stored person in insertion order.
func (s *SQLiteStore) ListPersons(ctx context.Context) ([]models.Person, error) {
	query := `
		SELECT id, surname, given_name, birthplace, birth_date,
		       group_name, first_year, notes, original_id, source_file
		FROM Person
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		var (
			p         models.Person
			birthDate sql.NullString
			firstYear sql.NullInt64
		)
		if err := rows.Scan(
			&p.ID,
			&p.Surname,
			&p.GivenName,
			&p.Birthplace,
			&birthDate,
			&p.Group,
			&firstYear,
			&p.Notes,
			&p.OriginalID,
			&p.SourceFile,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if birthDate.Valid {
			p.BirthDate = &birthDate.String
		}
		if firstYear.Valid {
			year := int(firstYear.Int64)
			p.FirstYear = &year
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating persons: %w", err)
	}
	return persons, nil
}

// UpdatePersonName rewrites the stored surname and given name of one person.
func (s *SQLiteStore) UpdatePersonName(ctx context.Context, id int64, surname, givenName string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE Person SET surname = ?, given_name = ? WHERE id = ?",
		surname, givenName, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update person name: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("person not found: %d", id)
	}
	return nil
}
