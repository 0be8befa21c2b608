package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup so the store can be created fresh or reused across
// ingestion passes.
// IMPORTANT: Person must be created BEFORE Payment due to the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS Person (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    surname TEXT NOT NULL,
    given_name TEXT NOT NULL,
    birthplace TEXT,
    birth_date TEXT,
    group_name TEXT,
    first_year INTEGER,
    notes TEXT,
    original_id INTEGER,
    source_file TEXT
);

CREATE TABLE IF NOT EXISTS Payment (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL,
    year INTEGER NOT NULL,
    paid_on TEXT,
    amount TEXT NOT NULL,
    receipt INTEGER NOT NULL DEFAULT 0,
    booklet INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (person_id) REFERENCES Person(id)
);

CREATE INDEX IF NOT EXISTS idx_person_identity ON Person(surname, given_name, birth_date);
CREATE INDEX IF NOT EXISTS idx_payment_triple ON Payment(person_id, year, amount);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
