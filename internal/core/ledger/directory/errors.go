package directory

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateEntry is returned by Insert when the entry is already in
	// the directory.
	ErrDuplicateEntry = errors.New("entry already in directory")

	// ErrNotFound is returned by Remove when the entry is not in the directory.
	ErrNotFound = errors.New("entry not in directory")

	// ErrDirectoryFull is returned by Insert when a new page would exceed
	// the page limit.
	ErrDirectoryFull = errors.New("directory page limit reached")

	// ErrCorruptChain marks a structural fault in a stored chain: a broken
	// link, a cycle, a page over capacity or a page of another directory.
	// It is always wrapped as an assertion failure and must abort the
	// enclosing transaction.
	ErrCorruptChain = errors.New("corrupt directory chain")

	// ErrNotDirectory is returned when a stored entry is not a directory page.
	ErrNotDirectory = errors.New("ledger entry is not a directory node")
)

func corruptf(format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrCorruptChain, format, args...))
}

// IsCorrupt reports whether err is a structural chain fault.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptChain)
}
