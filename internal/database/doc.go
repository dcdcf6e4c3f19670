// Package database provides SQLite-based run history for spelldigest.
//
// Only final run results are stored: the answer, the digested words and
// the outcome counts. Documents, targets and individual probe outcomes are
// never persisted.
//
// SQLite is accessed through modernc.org/sqlite, which is CGO-free, so the
// history is a single file under the XDG data directory.
package database
