package directory

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// IsEmpty reports whether the directory rooted at base holds no entries.
// Only the root is read: empty pages are never left at the end of a
// chain, so a root without entries is empty unless it links onwards.
func IsEmpty(v view.ReadView, base [32]byte) (bool, error) {
	root, err := readPage(v, base, 0)
	if errors.Is(err, view.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if len(root.Indexes) > 0 {
		return false, nil
	}
	return root.IndexNext == 0, nil
}
