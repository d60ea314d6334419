package view_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/storage/database/pebble"
)

func key(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func newLedger(t *testing.T) (*view.Ledger, *pebble.DB) {
	t.Helper()
	db, err := pebble.OpenMemory(pebble.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l, err := view.NewLedger(context.Background(), db, 16)
	require.NoError(t, err)
	return l, db
}

func TestLedger(t *testing.T) {
	t.Run("Insert update erase", func(t *testing.T) {
		l, _ := newLedger(t)
		k := keylet.Unchecked(key(1))

		_, err := l.Read(k)
		assert.True(t, errors.Is(err, view.ErrNotFound))

		require.NoError(t, l.Insert(k, []byte("a")))
		assert.True(t, errors.Is(l.Insert(k, []byte("b")), view.ErrExists))

		got, err := l.Read(k)
		require.NoError(t, err)
		assert.Equal(t, []byte("a"), got)

		require.NoError(t, l.Update(k, []byte("b")))
		got, err = l.Read(k)
		require.NoError(t, err)
		assert.Equal(t, []byte("b"), got)

		require.NoError(t, l.Erase(k))
		exists, err := l.Exists(k)
		require.NoError(t, err)
		assert.False(t, exists)

		assert.True(t, errors.Is(l.Erase(k), view.ErrNotFound))
		assert.True(t, errors.Is(l.Update(k, nil), view.ErrNotFound))
	})

	t.Run("Read returns a private copy", func(t *testing.T) {
		l, _ := newLedger(t)
		k := keylet.Unchecked(key(1))
		require.NoError(t, l.Insert(k, []byte("abc")))

		got, err := l.Read(k)
		require.NoError(t, err)
		got[0] = 'z'

		again, err := l.Read(k)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Succ is half open", func(t *testing.T) {
		l, _ := newLedger(t)
		for _, b := range []byte{2, 4, 6} {
			require.NoError(t, l.Insert(keylet.Unchecked(key(b)), []byte{b}))
		}

		tests := []struct {
			name      string
			from, to  byte
			want      byte
			wantFound bool
		}{
			{name: "exact start", from: 2, to: 9, want: 2, wantFound: true},
			{name: "between", from: 3, to: 9, want: 4, wantFound: true},
			{name: "limit excluded", from: 5, to: 6, wantFound: false},
			{name: "past end", from: 7, to: 9, wantFound: false},
			{name: "empty range", from: 4, to: 4, wantFound: false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok, err := l.Succ(key(tt.from), key(tt.to))
				require.NoError(t, err)
				assert.Equal(t, tt.wantFound, ok)
				if tt.wantFound {
					assert.Equal(t, key(tt.want), got)
				}
			})
		}
	})

	t.Run("Commit and discard", func(t *testing.T) {
		l, db := newLedger(t)
		k := keylet.Unchecked(key(7))
		require.NoError(t, l.Insert(k, []byte("kept")))
		require.NoError(t, l.Commit())

		l2, err := view.NewLedger(context.Background(), db, 0)
		require.NoError(t, err)
		require.NoError(t, l2.Erase(k))
		require.NoError(t, l2.Discard())

		snap, err := db.NewSnapshot(context.Background())
		require.NoError(t, err)
		defer snap.Close()

		ro := view.NewReadOnly(context.Background(), snap)
		got, err := ro.Read(k)
		require.NoError(t, err)
		assert.Equal(t, []byte("kept"), got)

		found, ok, err := ro.Succ(key(0), key(0xff))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, k.Key, found)
	})

	t.Run("Cache stats", func(t *testing.T) {
		l, _ := newLedger(t)
		k := keylet.Unchecked(key(1))
		_, _ = l.Read(k)
		require.NoError(t, l.Insert(k, []byte("x")))
		_, err := l.Read(k)
		require.NoError(t, err)

		hits, misses := l.CacheStats()
		assert.Equal(t, uint64(1), hits)
		assert.Equal(t, uint64(2), misses)
	})
}
