package database

import (
	"context"
)

// Reader is the read side shared by databases, snapshots and transactions.
type Reader interface {
	// Read returns the value stored under key, or ErrKeyNotFound.
	Read(ctx context.Context, key []byte) ([]byte, error)

	// Iterator walks keys in [start, end) in ascending order. A nil start
	// begins at the first key; a nil end runs to the last key.
	Iterator(ctx context.Context, start, end []byte) (Iterator, error)
}

// DB defines the basic operations any database implementation must support
type DB interface {
	Reader

	// Basic operations
	Write(ctx context.Context, key []byte, value []byte) error
	Delete(ctx context.Context, key []byte) error

	// Batch operations
	Batch(ctx context.Context, ops []BatchOperation) error

	// NewSnapshot returns a consistent read-only view of the database.
	// Snapshots are safe for concurrent use.
	NewSnapshot(ctx context.Context) (Snapshot, error)

	// NewTxn starts a staged transaction. Its writes are visible to its own
	// reads and reach the database atomically on Commit.
	NewTxn(ctx context.Context) (Txn, error)

	Close() error
}

// Snapshot is a point-in-time read-only view.
type Snapshot interface {
	Reader
	Close() error
}

// Txn is a staged set of writes over a database.
type Txn interface {
	Reader
	Write(ctx context.Context, key []byte, value []byte) error
	Delete(ctx context.Context, key []byte) error

	// Commit applies every staged write atomically.
	Commit(ctx context.Context) error

	// Discard drops every staged write. Discard after Commit is a no-op.
	Discard() error
}

// Iterator allows traversing over database entries
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Close() error
}

// BatchOperation represents a single operation in a batch
type BatchOperation struct {
	Type  BatchOpType
	Key   []byte
	Value []byte
}

type BatchOpType int

const (
	BatchPut BatchOpType = iota
	BatchDelete
)
