//go:build !cgo_sqlite

package main

import (
	_ "modernc.org/sqlite"
)

// sqliteDriver is the database/sql driver used for SQLite word lists.
const sqliteDriver = "sqlite"
