package database

import "github.com/cockroachdb/errors"

var (
	// ErrDBClosed is returned when trying to operate on a closed database
	ErrDBClosed = errors.New("database is closed")

	// ErrKeyNotFound is returned when a key doesn't exist in the database
	ErrKeyNotFound = errors.New("key not found")

	// ErrTxnDone is returned when a transaction is used after Commit or Discard
	ErrTxnDone = errors.New("transaction already finished")
)
