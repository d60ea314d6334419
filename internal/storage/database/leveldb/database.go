package leveldb

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/LeJamon/xrpldir/internal/storage/database"
	"github.com/LeJamon/xrpldir/internal/storage/database/compression"
)

// Options configures a leveldb backed database.
type Options struct {
	Compressor compression.Compressor
	Sync       bool
}

type DB struct {
	db         *leveldb.DB
	compressor compression.Compressor
	writeOpts  *opt.WriteOptions
}

var _ database.DB = (*DB)(nil)

// Open opens or creates a leveldb database in dir.
func Open(dir string, opts Options) (*DB, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open leveldb database %q", dir)
	}
	return newDB(db, opts), nil
}

// OpenMemory opens a leveldb database held entirely in memory.
func OpenMemory(opts Options) (*DB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open in-memory leveldb database")
	}
	return newDB(db, opts), nil
}

func newDB(db *leveldb.DB, opts Options) *DB {
	return &DB{
		db:         db,
		compressor: opts.Compressor,
		writeOpts:  &opt.WriteOptions{Sync: opts.Sync},
	}
}

func (l *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	if l.db == nil {
		return nil, database.ErrDBClosed
	}
	return get(l.db, key)
}

func (l *DB) Write(ctx context.Context, key, value []byte) error {
	if l.db == nil {
		return database.ErrDBClosed
	}
	frame, err := compression.Encode(l.compressor, value)
	if err != nil {
		return err
	}
	return l.db.Put(key, frame, l.writeOpts)
}

func (l *DB) Delete(ctx context.Context, key []byte) error {
	if l.db == nil {
		return database.ErrDBClosed
	}
	return l.db.Delete(key, l.writeOpts)
}

func (l *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if l.db == nil {
		return database.ErrDBClosed
	}

	batch := new(leveldb.Batch)
	for _, op := range ops {
		switch op.Type {
		case database.BatchPut:
			frame, err := compression.Encode(l.compressor, op.Value)
			if err != nil {
				return err
			}
			batch.Put(op.Key, frame)
		case database.BatchDelete:
			batch.Delete(op.Key)
		default:
			return errors.Newf("unknown batch operation type: %d", op.Type)
		}
	}

	if err := l.db.Write(batch, l.writeOpts); err != nil {
		return errors.Wrap(err, "failed to execute batch")
	}
	return nil
}

func (l *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if l.db == nil {
		return nil, database.ErrDBClosed
	}
	return newIterator(l.db, start, end), nil
}

func (l *DB) NewSnapshot(ctx context.Context) (database.Snapshot, error) {
	if l.db == nil {
		return nil, database.ErrDBClosed
	}
	snap, err := l.db.GetSnapshot()
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire snapshot")
	}
	return &Snapshot{snap: snap}, nil
}

// NewTxn opens a leveldb transaction. Other writers block until it is
// committed or discarded.
func (l *DB) NewTxn(ctx context.Context) (database.Txn, error) {
	if l.db == nil {
		return nil, database.ErrDBClosed
	}
	tr, err := l.db.OpenTransaction()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open transaction")
	}
	return &Txn{tr: tr, compressor: l.compressor}, nil
}

func (l *DB) Close() error {
	if l.db == nil {
		return database.ErrDBClosed
	}
	err := l.db.Close()
	l.db = nil
	return err
}

type Snapshot struct {
	snap *leveldb.Snapshot
}

func (s *Snapshot) Read(ctx context.Context, key []byte) ([]byte, error) {
	return get(s.snap, key)
}

func (s *Snapshot) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	return newIterator(s.snap, start, end), nil
}

func (s *Snapshot) Close() error {
	s.snap.Release()
	return nil
}

type Txn struct {
	tr         *leveldb.Transaction
	compressor compression.Compressor
	done       bool
}

func (t *Txn) Read(ctx context.Context, key []byte) ([]byte, error) {
	if t.done {
		return nil, database.ErrTxnDone
	}
	return get(t.tr, key)
}

func (t *Txn) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if t.done {
		return nil, database.ErrTxnDone
	}
	return newIterator(t.tr, start, end), nil
}

func (t *Txn) Write(ctx context.Context, key, value []byte) error {
	if t.done {
		return database.ErrTxnDone
	}
	frame, err := compression.Encode(t.compressor, value)
	if err != nil {
		return err
	}
	return t.tr.Put(key, frame, nil)
}

func (t *Txn) Delete(ctx context.Context, key []byte) error {
	if t.done {
		return database.ErrTxnDone
	}
	return t.tr.Delete(key, nil)
}

func (t *Txn) Commit(ctx context.Context) error {
	if t.done {
		return database.ErrTxnDone
	}
	t.done = true
	if err := t.tr.Commit(); err != nil {
		t.tr.Discard()
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (t *Txn) Discard() error {
	if t.done {
		return nil
	}
	t.done = true
	t.tr.Discard()
	return nil
}

type getter interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

type iterSource interface {
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

func get(src getter, key []byte) ([]byte, error) {
	val, err := src.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, database.ErrKeyNotFound
		}
		return nil, err
	}
	return compression.Decode(val)
}

type Iterator struct {
	iter       iterator.Iterator
	err        error
	key, value []byte
}

func newIterator(src iterSource, start, end []byte) *Iterator {
	return &Iterator{iter: src.NewIterator(&util.Range{Start: start, Limit: end}, nil)}
}

func (it *Iterator) Next() bool {
	if it.err != nil || !it.iter.Next() {
		return false
	}

	value, err := compression.Decode(it.iter.Value())
	if err != nil {
		it.err = err
		return false
	}

	// leveldb reuses the key buffer between steps
	it.key = append([]byte(nil), it.iter.Key()...)
	it.value = value
	return true
}

func (it *Iterator) Key() []byte {
	return it.key
}

func (it *Iterator) Value() []byte {
	return it.value
}

func (it *Iterator) Error() error {
	if err := it.iter.Error(); err != nil {
		return err
	}
	return it.err
}

func (it *Iterator) Close() error {
	it.iter.Release()
	return nil
}
