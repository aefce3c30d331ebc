package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// balanceKV is a single key-value table holding JSON blobs, the durable
// equivalent of the web client's localStorage slot.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS balanceKV (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens (creating if needed) the SQLite database backing the
// persistent store and ensures the key-value table exists.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Key: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Key: path, Op: "open", Err: fmt.Errorf("ping failed: %w", err)}
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, &StoreError{Key: path, Op: "open", Err: fmt.Errorf("create table failed: %w", err)}
	}

	return db, nil
}

// getKV reads one value from balanceKV. A missing key returns ("", false, nil).
func getKV(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM balanceKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// setKV overwrites one value in balanceKV inside a transaction, so a
// concurrent reader never observes a partial write.
func setKV(db *sql.DB, key, value string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO balanceKV (key, value) VALUES (?, ?)", key, value); err != nil {
		tx.Rollback()
		return fmt.Errorf("upsert failed: %w", err)
	}
	return tx.Commit()
}

// deleteKV removes one key from balanceKV. Deleting a missing key is not
// an error.
func deleteKV(db *sql.DB, key string) error {
	if _, err := db.Exec("DELETE FROM balanceKV WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}
