// Package view exposes ledger state entries keyed by keylet, backed by the
// ordered key-value store.
package view

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
)

//go:generate mockgen -source=view.go -destination=mock_view.go -package=view

var (
	// ErrNotFound is returned when an entry does not exist.
	ErrNotFound = errors.New("ledger entry not found")

	// ErrExists is returned when inserting an entry that already exists.
	ErrExists = errors.New("ledger entry already exists")
)

// ReadView provides read access to ledger state
type ReadView interface {
	// Read returns the serialized entry, or ErrNotFound.
	Read(k keylet.Keylet) ([]byte, error)

	// Exists checks if an entry exists
	Exists(k keylet.Keylet) (bool, error)

	// Succ returns the first existing key in [from, last).
	Succ(from, last [32]byte) ([32]byte, bool, error)
}

// ApplyView provides read/write access to ledger state
type ApplyView interface {
	ReadView

	// Insert adds a new entry
	Insert(k keylet.Keylet, data []byte) error

	// Update modifies an existing entry
	Update(k keylet.Keylet, data []byte) error

	// Erase removes an entry
	Erase(k keylet.Keylet) error
}
