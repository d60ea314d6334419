package directory_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

func TestIterator(t *testing.T) {
	t.Run("Missing directory is empty", func(t *testing.T) {
		l := newTestLedger(t)
		it := directory.NewIterator(l, ownerBase())
		assert.False(t, it.Next())
		assert.NoError(t, it.Err())
	})

	t.Run("Pages objects and reset", func(t *testing.T) {
		l := newTestLedger(t)
		base := ownerBase()
		for seq := uint32(1); seq <= 5; seq++ {
			offer := keylet.Offer(testOwner, seq)
			require.NoError(t, l.Insert(offer, []byte(fmt.Sprintf("offer %d", seq))))
			_, err := directory.Insert(l, base, offer.Key, opts(2, false))
			require.NoError(t, err)
		}

		it := directory.NewIterator(l, base).WithCapacity(2)
		var pages []uint64
		var objects []string
		for it.Next() {
			pages = append(pages, it.Page())
			obj, err := it.Object()
			require.NoError(t, err)
			objects = append(objects, string(obj))
		}
		require.NoError(t, it.Err())
		assert.Equal(t, []uint64{0, 0, 1, 1, 2}, pages)
		assert.Equal(t, []string{"offer 1", "offer 2", "offer 3", "offer 4", "offer 5"}, objects)

		it.Reset()
		require.True(t, it.Next())
		assert.Equal(t, keylet.Offer(testOwner, 1).Key, it.Entry())
	})

	t.Run("Legacy empty pages are skipped", func(t *testing.T) {
		l := newTestLedger(t)
		base := ownerBase()
		putPage(t, l, base, 0, directory.Page{IndexNext: 1, IndexLast: 3, IndexHigh: 3})
		putPage(t, l, base, 1, directory.Page{Indexes: [][32]byte{k(1)}, IndexNext: 2})
		putPage(t, l, base, 2, directory.Page{IndexPrevious: 1, IndexNext: 3})
		putPage(t, l, base, 3, directory.Page{Indexes: [][32]byte{k(2)}, IndexPrevious: 2})

		got, err := directory.Entries(l, base)
		require.NoError(t, err)
		assert.Equal(t, [][32]byte{k(1), k(2)}, got)
	})

	t.Run("ForEach stops on error", func(t *testing.T) {
		l := newTestLedger(t)
		base := ownerBase()
		for i := uint64(1); i <= 3; i++ {
			_, err := directory.Insert(l, base, k(i), opts(2, true))
			require.NoError(t, err)
		}

		stop := errors.New("stop")
		var seen int
		err := directory.ForEach(l, base, func(_ [32]byte, _ uint64) error {
			seen++
			return stop
		})
		assert.True(t, errors.Is(err, stop))
		assert.Equal(t, 1, seen)
	})
}

func TestCorruptChains(t *testing.T) {
	base := ownerBase()

	tests := []struct {
		name  string
		build func(l pageWriter)
	}{
		{
			name: "cycle",
			build: func(l pageWriter) {
				l.put(0, directory.Page{Indexes: [][32]byte{k(1)}, IndexNext: 1, IndexLast: 2, IndexHigh: 2})
				l.put(1, directory.Page{Indexes: [][32]byte{k(2)}, IndexNext: 2})
				l.put(2, directory.Page{Indexes: [][32]byte{k(3)}, IndexPrevious: 1, IndexNext: 1})
			},
		},
		{
			name: "missing page",
			build: func(l pageWriter) {
				l.put(0, directory.Page{Indexes: [][32]byte{k(1)}, IndexNext: 5, IndexLast: 5, IndexHigh: 5})
			},
		},
		{
			name: "foreign page",
			build: func(l pageWriter) {
				l.put(0, directory.Page{Indexes: [][32]byte{k(1)}, IndexNext: 1, IndexLast: 1, IndexHigh: 1})
				l.putForeign(1, directory.Page{Indexes: [][32]byte{k(2)}})
			},
		},
		{
			name: "over capacity",
			build: func(l pageWriter) {
				l.put(0, directory.Page{Indexes: [][32]byte{k(1), k(2), k(3)}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			tt.build(pageWriter{t: t, l: l, base: base})
			before, err := l.Read(keylet.Page(base, 0))
			require.NoError(t, err)

			_, err = directory.Insert(l, base, k(9), opts(2, true))
			require.Error(t, err)
			assert.True(t, directory.IsCorrupt(err), "%v", err)
			assert.True(t, errors.HasAssertionFailure(err))

			it := directory.NewIterator(l, base).WithCapacity(2)
			for it.Next() {
			}
			assert.True(t, directory.IsCorrupt(it.Err()), "%v", it.Err())

			after, err := l.Read(keylet.Page(base, 0))
			require.NoError(t, err)
			assert.Equal(t, before, after, "a failed insert must not write")
		})
	}
}

type pageWriter struct {
	t    *testing.T
	l    *view.Ledger
	base [32]byte
}

func (w pageWriter) put(idx uint64, p directory.Page) {
	putPage(w.t, w.l, w.base, idx, p)
}

// putForeign stores a page claiming to belong to another directory.
func (w pageWriter) putForeign(idx uint64, p directory.Page) {
	p.LedgerEntryType = entry.TypeDirectoryNode
	p.RootIndex = k(12345)
	data, err := p.Encode()
	require.NoError(w.t, err)
	require.NoError(w.t, w.l.Insert(keylet.Page(w.base, idx), data))
}
