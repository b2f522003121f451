package scenario

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	scenario_id  TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	narrative    TEXT NOT NULL,
	solution     TEXT NOT NULL,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists a scenario bank in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region add

// Add inserts one scenario and returns its generated ID.
func (s *Store) Add(sc Scenario) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO scenarios (scenario_id, title, narrative, solution, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, sc.Title, sc.Narrative, sc.Solution, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert scenario: %w", err)
	}
	return id, nil
}

// #endregion add

// #region seed

// Seed inserts a batch of scenarios in one transaction.
func (s *Store) Seed(bank []Scenario) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, sc := range bank {
		_, err := tx.Exec(
			`INSERT INTO scenarios (scenario_id, title, narrative, solution, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), sc.Title, sc.Narrative, sc.Solution, now,
		)
		if err != nil {
			return fmt.Errorf("insert scenario %q: %w", sc.Title, err)
		}
	}
	return tx.Commit()
}

// #endregion seed

// #region all

// All returns every stored scenario in insertion order.
func (s *Store) All() ([]Scenario, error) {
	rows, err := s.db.Query(
		`SELECT title, narrative, solution FROM scenarios ORDER BY created_at, scenario_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var bank []Scenario
	for rows.Next() {
		var sc Scenario
		if err := rows.Scan(&sc.Title, &sc.Narrative, &sc.Solution); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		bank = append(bank, sc)
	}
	return bank, rows.Err()
}

// #endregion all

// #region repository

// Repository builds an in-memory Repository over the stored bank.
// Fails with ErrEmptyRepository when the table is empty.
func (s *Store) Repository() (*Repository, error) {
	bank, err := s.All()
	if err != nil {
		return nil, err
	}
	return NewRepository(bank)
}

// #endregion repository
