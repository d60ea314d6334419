package pebble

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/LeJamon/xrpldir/internal/storage/database"
	"github.com/LeJamon/xrpldir/internal/storage/database/compression"
)

// Options configures a pebble backed database.
type Options struct {
	// Compressor compresses stored values. Nil stores them raw.
	Compressor compression.Compressor
	// Sync forces an fsync on every commit.
	Sync bool
}

type DB struct {
	db         *pebble.DB
	compressor compression.Compressor
	writeOpts  *pebble.WriteOptions
}

var _ database.DB = (*DB)(nil)

// Open opens or creates a pebble database in dir.
func Open(dir string, opts Options) (*DB, error) {
	return open(dir, &pebble.Options{}, opts)
}

// OpenMemory opens a pebble database backed by an in-memory filesystem.
func OpenMemory(opts Options) (*DB, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()}, opts)
}

func open(dir string, pebbleOpts *pebble.Options, opts Options) (*DB, error) {
	db, err := pebble.Open(dir, pebbleOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble database %q", dir)
	}
	return NewDB(db, opts), nil
}

// NewDB wraps an already opened pebble database.
func NewDB(db *pebble.DB, opts Options) *DB {
	writeOpts := pebble.NoSync
	if opts.Sync {
		writeOpts = pebble.Sync
	}
	return &DB{db: db, compressor: opts.Compressor, writeOpts: writeOpts}
}

func (p *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	return get(p.db, key)
}

func (p *DB) Write(ctx context.Context, key, value []byte) error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	frame, err := compression.Encode(p.compressor, value)
	if err != nil {
		return err
	}
	return p.db.Set(key, frame, p.writeOpts)
}

func (p *DB) Delete(ctx context.Context, key []byte) error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	return p.db.Delete(key, p.writeOpts)
}

func (p *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if p.db == nil {
		return database.ErrDBClosed
	}

	batch := p.db.NewBatch()
	defer batch.Close()

	for _, op := range ops {
		switch op.Type {
		case database.BatchPut:
			frame, err := compression.Encode(p.compressor, op.Value)
			if err != nil {
				return err
			}
			if err := batch.Set(op.Key, frame, nil); err != nil {
				return err
			}
		case database.BatchDelete:
			if err := batch.Delete(op.Key, nil); err != nil {
				return err
			}
		default:
			return errors.Newf("unknown batch operation type: %d", op.Type)
		}
	}

	return batch.Commit(p.writeOpts)
}

func (p *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	return newIterator(p.db, start, end)
}

func (p *DB) NewSnapshot(ctx context.Context) (database.Snapshot, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	return &Snapshot{snap: p.db.NewSnapshot()}, nil
}

func (p *DB) NewTxn(ctx context.Context) (database.Txn, error) {
	if p.db == nil {
		return nil, database.ErrDBClosed
	}
	return &Txn{
		batch:      p.db.NewIndexedBatch(),
		compressor: p.compressor,
		writeOpts:  p.writeOpts,
	}, nil
}

func (p *DB) Close() error {
	if p.db == nil {
		return database.ErrDBClosed
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// Snapshot is a point-in-time read view of a pebble database.
type Snapshot struct {
	snap *pebble.Snapshot
}

func (s *Snapshot) Read(ctx context.Context, key []byte) ([]byte, error) {
	return get(s.snap, key)
}

func (s *Snapshot) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	return newIterator(s.snap, start, end)
}

func (s *Snapshot) Close() error {
	return s.snap.Close()
}

// Txn stages writes in an indexed batch; reads see the staged writes
// layered over the database.
type Txn struct {
	batch      *pebble.Batch
	compressor compression.Compressor
	writeOpts  *pebble.WriteOptions
	done       bool
}

func (t *Txn) Read(ctx context.Context, key []byte) ([]byte, error) {
	if t.done {
		return nil, database.ErrTxnDone
	}
	return get(t.batch, key)
}

func (t *Txn) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if t.done {
		return nil, database.ErrTxnDone
	}
	return newIterator(t.batch, start, end)
}

func (t *Txn) Write(ctx context.Context, key, value []byte) error {
	if t.done {
		return database.ErrTxnDone
	}
	frame, err := compression.Encode(t.compressor, value)
	if err != nil {
		return err
	}
	return t.batch.Set(key, frame, nil)
}

func (t *Txn) Delete(ctx context.Context, key []byte) error {
	if t.done {
		return database.ErrTxnDone
	}
	return t.batch.Delete(key, nil)
}

func (t *Txn) Commit(ctx context.Context) error {
	if t.done {
		return database.ErrTxnDone
	}
	t.done = true
	defer t.batch.Close()
	return t.batch.Commit(t.writeOpts)
}

func (t *Txn) Discard() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.batch.Close()
}

type getter interface {
	Get(key []byte) ([]byte, io.Closer, error)
}

type iterSource interface {
	NewIter(o *pebble.IterOptions) (*pebble.Iterator, error)
}

func get(src getter, key []byte) ([]byte, error) {
	val, closer, err := src.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, database.ErrKeyNotFound
		}
		return nil, err
	}
	defer closer.Close()

	return compression.Decode(val)
}

type Iterator struct {
	iter    *pebble.Iterator
	started bool
	err     error
	current struct {
		key, value []byte
	}
}

func newIterator(src iterSource, start, end []byte) (*Iterator, error) {
	iter, err := src.NewIter(&pebble.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})
	if err != nil {
		return nil, err
	}
	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	var valid bool
	if !it.started {
		it.started = true
		valid = it.iter.First()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		return false
	}

	value, err := compression.Decode(it.iter.Value())
	if err != nil {
		it.err = err
		return false
	}

	key := it.iter.Key()
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	it.current.key = keyCopy
	it.current.value = value
	return true
}

func (it *Iterator) Key() []byte {
	return it.current.key
}

func (it *Iterator) Value() []byte {
	return it.current.value
}

func (it *Iterator) Error() error {
	if err := it.iter.Error(); err != nil {
		return err
	}
	return it.err
}

func (it *Iterator) Close() error {
	return it.iter.Close()
}
