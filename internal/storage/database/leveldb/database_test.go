package leveldb_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/storage/database"
	"github.com/LeJamon/xrpldir/internal/storage/database/compression"
	"github.com/LeJamon/xrpldir/internal/storage/database/leveldb"
)

func TestLevelDB(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T) *leveldb.DB {
		t.Helper()
		db, err := leveldb.OpenMemory(leveldb.Options{Compressor: &compression.LZ4Compressor{}})
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db
	}

	keys := func(t *testing.T, it database.Iterator) []string {
		t.Helper()
		defer it.Close()
		var out []string
		for it.Next() {
			out = append(out, string(it.Key())+"="+string(it.Value()))
		}
		require.NoError(t, it.Error())
		return out
	}

	t.Run("Write read delete", func(t *testing.T) {
		db := open(t)
		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v")))

		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		require.NoError(t, db.Delete(ctx, []byte("k")))
		_, err = db.Read(ctx, []byte("k"))
		assert.True(t, errors.Is(err, database.ErrKeyNotFound))
	})

	t.Run("Iterator range", func(t *testing.T) {
		db := open(t)
		require.NoError(t, db.Batch(ctx, []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("a"), Value: []byte("1")},
			{Type: database.BatchPut, Key: []byte("b"), Value: []byte("2")},
			{Type: database.BatchPut, Key: []byte("c"), Value: []byte("3")},
		}))

		it, err := db.Iterator(ctx, []byte("b"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"b=2", "c=3"}, keys(t, it))

		it, err = db.Iterator(ctx, nil, []byte("b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a=1"}, keys(t, it))
	})

	t.Run("Txn commit", func(t *testing.T) {
		db := open(t)
		require.NoError(t, db.Write(ctx, []byte("a"), []byte("1")))

		txn, err := db.NewTxn(ctx)
		require.NoError(t, err)
		require.NoError(t, txn.Write(ctx, []byte("b"), []byte("2")))
		require.NoError(t, txn.Delete(ctx, []byte("a")))

		it, err := txn.Iterator(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"b=2"}, keys(t, it))

		_, err = db.Read(ctx, []byte("b"))
		assert.True(t, errors.Is(err, database.ErrKeyNotFound))

		require.NoError(t, txn.Commit(ctx))

		it, err = db.Iterator(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"b=2"}, keys(t, it))
	})

	t.Run("Txn discard", func(t *testing.T) {
		db := open(t)
		txn, err := db.NewTxn(ctx)
		require.NoError(t, err)
		require.NoError(t, txn.Write(ctx, []byte("k"), []byte("v")))
		require.NoError(t, txn.Discard())
		require.NoError(t, txn.Discard())

		_, err = db.Read(ctx, []byte("k"))
		assert.True(t, errors.Is(err, database.ErrKeyNotFound))
		assert.True(t, errors.Is(txn.Commit(ctx), database.ErrTxnDone))
	})

	t.Run("Snapshot", func(t *testing.T) {
		db := open(t)
		require.NoError(t, db.Write(ctx, []byte("k"), []byte("old")))

		snap, err := db.NewSnapshot(ctx)
		require.NoError(t, err)
		defer snap.Close()

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("new")))
		require.NoError(t, db.Write(ctx, []byte("z"), []byte("added")))

		got, err := snap.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("old"), got)

		it, err := snap.Iterator(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"k=old"}, keys(t, it))
	})
}
