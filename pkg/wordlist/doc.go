/*
Package wordlist supplies the words a markov.Builder learns from. Words come
either from line-oriented text, one word per line, or from a SQLite table
managed by Store. Both drivers used by this repository work with Store:
modernc.org/sqlite (pure Go) and github.com/mattn/go-sqlite3 (cgo).
*/
package wordlist
