package wordlist

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
)

// SetupSchema creates the word table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaWords = `
CREATE TABLE IF NOT EXISTS wordlist_words (
    word_id INTEGER PRIMARY KEY,
    word_text TEXT NOT NULL
);
`
	if _, err := db.Exec(schemaWords); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}
	return nil
}

// Store reads and writes words in a SQLite database prepared by SetupSchema.
// Words are returned in insertion order and duplicates are kept, since a
// word that appears twice should weigh twice as much in a model.
type Store struct {
	db           *sql.DB
	stmtWords    *sql.Stmt
	stmtCount    *sql.Stmt
	stmtTruncate *sql.Stmt
	logger       *slog.Logger
}

// NewStore creates a Store over db, pre-compiling its statements.
func NewStore(db *sql.DB) (*Store, error) {
	stmtWords, err := db.Prepare(`SELECT word_text FROM wordlist_words ORDER BY word_id;`)
	if err != nil {
		return nil, err
	}

	stmtCount, err := db.Prepare(`SELECT COUNT(*) FROM wordlist_words;`)
	if err != nil {
		_ = stmtWords.Close()
		return nil, err
	}

	stmtTruncate, err := db.Prepare(`DELETE FROM wordlist_words;`)
	if err != nil {
		_ = stmtWords.Close()
		_ = stmtCount.Close()
		return nil, err
	}

	return &Store{
		db:           db,
		stmtWords:    stmtWords,
		stmtCount:    stmtCount,
		stmtTruncate: stmtTruncate,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases the prepared statements held by the Store. It does not
// close the database.
func (s *Store) Close() {
	_ = s.stmtWords.Close()
	_ = s.stmtCount.Close()
	_ = s.stmtTruncate.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Insert appends words to the store within a single transaction.
func (s *Store) Insert(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmtInsert, err := tx.PrepareContext(ctx, `INSERT INTO wordlist_words (word_text) VALUES (?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare word insert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtInsert)

	for _, word := range words {
		if _, err = stmtInsert.ExecContext(ctx, word); err != nil {
			return fmt.Errorf("failed to insert word '%s': %w", word, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit words: %w", err)
	}

	s.logger.InfoContext(ctx, "Words inserted", slog.Int("words_inserted", len(words)))
	return nil
}

// Words returns every stored word in insertion order.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	rows, err := s.stmtWords.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not query words: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var words []string
	for rows.Next() {
		var word string
		if err = rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.stmtCount.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Truncate removes every stored word.
func (s *Store) Truncate(ctx context.Context) error {
	res, err := s.stmtTruncate.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not truncate words: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	s.logger.InfoContext(ctx, "Words removed", slog.Int64("words_removed", rowsAffected))
	return nil
}
