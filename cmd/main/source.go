package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/Glossolalia/pkg/markov"
	"github.com/CTAG07/Glossolalia/pkg/wordlist"
)

// isDatabasePath reports whether path names a SQLite word store rather than
// a plain text word list.
func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// openStore opens the SQLite database at path, creating the word table if
// needed. The returned function releases both the store and the database.
func openStore(path string, logger *slog.Logger) (*wordlist.Store, func(), error) {
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = wordlist.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup wordlist schema: %w", err)
	}
	store, err := wordlist.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create word store: %w", err)
	}
	store.SetLogger(logger)

	return store, func() {
		store.Close()
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}, nil
}

// trainFromSource feeds the corpus named by source into builder: "-" for
// stdin, a SQLite database, or a text file with one word per line.
func trainFromSource(ctx context.Context, builder *markov.Builder, source string, logger *slog.Logger) error {
	switch {
	case source == "-":
		return builder.Train(ctx, os.Stdin)
	case isDatabasePath(source):
		store, closeStore, err := openStore(source, logger)
		if err != nil {
			return err
		}
		defer closeStore()
		words, err := store.Words(ctx)
		if err != nil {
			return err
		}
		builder.AddAll(words)
		return nil
	default:
		file, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("could not open word list: %w", err)
		}
		defer func(file *os.File) {
			_ = file.Close()
		}(file)
		return builder.Train(ctx, file)
	}
}
