package directory_test

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/storage/database/pebble"
)

// testOwner is an arbitrary account id.
var testOwner = [20]byte{0x7f, 0x58, 0xb1, 0x93, 0x58, 0xf8, 0xe4, 0x97, 0xc8, 0xa9,
	0xde, 0xd3, 0xe6, 0xdb, 0x3b, 0xc2, 0x3a, 0x13, 0xc1, 0xa5}

func newTestLedger(t *testing.T) *view.Ledger {
	t.Helper()
	db, err := pebble.OpenMemory(pebble.Options{})
	require.NoError(t, err)

	l, err := view.NewLedger(context.Background(), db, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = l.Discard()
		_ = db.Close()
	})
	return l
}

func ownerBase() [32]byte {
	return keylet.OwnerDir(testOwner).Key
}

// k builds an entry key whose order follows n.
func k(n uint64) [32]byte {
	var key [32]byte
	binary.BigEndian.PutUint64(key[24:], n)
	key[0] = 0xab
	return key
}

func opts(capacity int, sorted bool) directory.Options {
	return directory.Options{Capacity: capacity, Sorted: sorted, MaxPages: directory.DefaultMaxPages}
}

// putPage stores a hand built page, for chains Insert would never produce.
func putPage(t *testing.T, l *view.Ledger, base [32]byte, idx uint64, p directory.Page) {
	t.Helper()
	p.LedgerEntryType = entry.TypeDirectoryNode
	p.RootIndex = base
	data, err := p.Encode()
	require.NoError(t, err)
	require.NoError(t, l.Insert(keylet.Page(base, idx), data))
}

func getPage(t *testing.T, l *view.Ledger, base [32]byte, idx uint64) *directory.Page {
	t.Helper()
	p, err := directory.ReadPage(l, base, idx)
	require.NoError(t, err)
	return p
}

func pageExists(t *testing.T, l *view.Ledger, base [32]byte, idx uint64) bool {
	t.Helper()
	ok, err := l.Exists(keylet.Page(base, idx))
	require.NoError(t, err)
	return ok
}

// pageSizes returns the entry count of each page in chain order.
func pageSizes(t *testing.T, l *view.Ledger, base [32]byte) []int {
	t.Helper()
	var sizes []int
	for idx := uint64(0); ; {
		p := getPage(t, l, base, idx)
		sizes = append(sizes, len(p.Indexes))
		if p.IndexNext == 0 {
			return sizes
		}
		idx = p.IndexNext
	}
}
