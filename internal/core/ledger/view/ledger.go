package view

import (
	"context"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/storage/database"
)

// DefaultCacheSize is the number of entries a Ledger caches when no size is given.
const DefaultCacheSize = 4096

// Ledger is an ApplyView over a single database transaction. Writes are
// staged in the transaction until Commit. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	ctx   context.Context
	txn   database.Txn
	cache *lru.Cache[[32]byte, []byte]

	hits   uint64
	misses uint64
}

var _ ApplyView = (*Ledger)(nil)

// NewLedger starts a transaction on db and wraps it.
func NewLedger(ctx context.Context, db database.DB, cacheSize int) (*Ledger, error) {
	txn, err := db.NewTxn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start transaction")
	}
	l, err := WrapTxn(ctx, txn, cacheSize)
	if err != nil {
		_ = txn.Discard()
		return nil, err
	}
	return l, nil
}

// WrapTxn wraps an open transaction.
func WrapTxn(ctx context.Context, txn database.Txn, cacheSize int) (*Ledger, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, []byte](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Ledger{ctx: ctx, txn: txn, cache: cache}, nil
}

func (l *Ledger) Read(k keylet.Keylet) ([]byte, error) {
	if data, ok := l.cache.Get(k.Key); ok {
		l.hits++
		return clone(data), nil
	}
	l.misses++

	data, err := read(l.ctx, l.txn, k.Key)
	if err != nil {
		return nil, err
	}
	l.cache.Add(k.Key, data)
	return clone(data), nil
}

func (l *Ledger) Exists(k keylet.Keylet) (bool, error) {
	if l.cache.Contains(k.Key) {
		return true, nil
	}
	_, err := l.Read(k)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (l *Ledger) Succ(from, last [32]byte) ([32]byte, bool, error) {
	return succ(l.ctx, l.txn, from, last)
}

func (l *Ledger) Insert(k keylet.Keylet, data []byte) error {
	exists, err := l.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(ErrExists, "%X", k.Key)
	}
	return l.write(k.Key, data)
}

func (l *Ledger) Update(k keylet.Keylet, data []byte) error {
	exists, err := l.Exists(k)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(ErrNotFound, "%X", k.Key)
	}
	return l.write(k.Key, data)
}

func (l *Ledger) Erase(k keylet.Keylet) error {
	exists, err := l.Exists(k)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(ErrNotFound, "%X", k.Key)
	}
	if err := l.txn.Delete(l.ctx, k.Key[:]); err != nil {
		return errors.Wrapf(err, "failed to erase entry %X", k.Key)
	}
	l.cache.Remove(k.Key)
	return nil
}

func (l *Ledger) write(key [32]byte, data []byte) error {
	if err := l.txn.Write(l.ctx, key[:], data); err != nil {
		return errors.Wrapf(err, "failed to write entry %X", key)
	}
	l.cache.Add(key, clone(data))
	return nil
}

// Commit applies every staged change.
func (l *Ledger) Commit() error {
	l.cache.Purge()
	return l.txn.Commit(l.ctx)
}

// Discard drops every staged change.
func (l *Ledger) Discard() error {
	l.cache.Purge()
	return l.txn.Discard()
}

// CacheStats returns the read cache hit and miss counts.
func (l *Ledger) CacheStats() (hits, misses uint64) {
	return l.hits, l.misses
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
