package logging

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id     TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	max_rounds  INTEGER NOT NULL,
	turns       INTEGER NOT NULL,
	skipped     INTEGER NOT NULL,
	malformed   INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS turns (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT NOT NULL,
	round       INTEGER NOT NULL,
	speaker     TEXT NOT NULL,
	question    TEXT NOT NULL,
	answer      TEXT NOT NULL,
	verdict     TEXT NOT NULL,
	malformed   INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (game_id) REFERENCES games(game_id)
);

CREATE TABLE IF NOT EXISTS summaries (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT NOT NULL,
	round       INTEGER NOT NULL,
	body        TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (game_id) REFERENCES games(game_id)
);
`

// #endregion schema

// #region store

// TranscriptStore persists completed game transcripts in SQLite for
// offline review.
type TranscriptStore struct {
	db *sql.DB
}

// NewTranscriptStore opens a SQLite database and runs migrations.
func NewTranscriptStore(dbPath string) (*TranscriptStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &TranscriptStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// #endregion store

// #region record-game

// RecordGame writes one completed game, its turns, and its round summaries
// in a single transaction.
func (s *TranscriptStore) RecordGame(res game.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = tx.Exec(
		`INSERT INTO games (game_id, title, max_rounds, turns, skipped, malformed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.GameID, res.Title, res.Rounds, res.Turns, res.Skipped, res.Malformed, now,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for _, d := range res.Details {
		_, err := tx.Exec(
			`INSERT INTO turns (game_id, round, speaker, question, answer, verdict, malformed, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			res.GameID, d.Round, d.Speaker, d.Question, d.Answer, string(d.Verdict), boolToInt(d.Malformed), now,
		)
		if err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}
	}

	for _, sum := range res.Summaries {
		_, err := tx.Exec(
			`INSERT INTO summaries (game_id, round, body, created_at)
			 VALUES (?, ?, ?, ?)`,
			res.GameID, sum.Round, sum.Body, now,
		)
		if err != nil {
			return fmt.Errorf("insert summary: %w", err)
		}
	}

	return tx.Commit()
}

// #endregion record-game

// #region queries

// GameRow is one row of the games table.
type GameRow struct {
	GameID    string
	Title     string
	MaxRounds int
	Turns     int
	Skipped   int
	Malformed int
	CreatedAt time.Time
}

// ListGames returns the most recent games, newest first.
func (s *TranscriptStore) ListGames(limit int) ([]GameRow, error) {
	rows, err := s.db.Query(
		`SELECT game_id, title, max_rounds, turns, skipped, malformed, created_at
		 FROM games ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []GameRow
	for rows.Next() {
		var g GameRow
		var createdStr string
		if err := rows.Scan(&g.GameID, &g.Title, &g.MaxRounds, &g.Turns, &g.Skipped, &g.Malformed, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		g.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		games = append(games, g)
	}
	return games, rows.Err()
}

// Turns returns one game's recorded turns in round/turn order.
func (s *TranscriptStore) Turns(gameID string) ([]game.TurnDetail, error) {
	rows, err := s.db.Query(
		`SELECT round, speaker, question, answer, verdict, malformed
		 FROM turns WHERE game_id = ? ORDER BY id`, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []game.TurnDetail
	for rows.Next() {
		var d game.TurnDetail
		var verdict string
		var malformed int
		if err := rows.Scan(&d.Round, &d.Speaker, &d.Question, &d.Answer, &verdict, &malformed); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		d.Verdict = oracle.Verdict(verdict)
		d.Malformed = malformed != 0
		turns = append(turns, d)
	}
	return turns, rows.Err()
}

// Summaries returns one game's round recaps in round order.
func (s *TranscriptStore) Summaries(gameID string) ([]game.RoundSummary, error) {
	rows, err := s.db.Query(
		`SELECT round, body FROM summaries WHERE game_id = ? ORDER BY round`, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var sums []game.RoundSummary
	for rows.Next() {
		var s game.RoundSummary
		if err := rows.Scan(&s.Round, &s.Body); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// #endregion queries

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
