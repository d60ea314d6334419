package view

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/storage/database"
)

func read(ctx context.Context, r database.Reader, key [32]byte) ([]byte, error) {
	data, err := r.Read(ctx, key[:])
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "failed to read entry %X", key)
	}
	return data, nil
}

func succ(ctx context.Context, r database.Reader, from, last [32]byte) ([32]byte, bool, error) {
	var found [32]byte
	if bytes.Compare(from[:], last[:]) >= 0 {
		return found, false, nil
	}

	it, err := r.Iterator(ctx, from[:], last[:])
	if err != nil {
		return found, false, errors.Wrap(err, "failed to open iterator")
	}
	defer it.Close()

	if !it.Next() {
		return found, false, it.Error()
	}
	if len(it.Key()) != len(found) {
		return found, false, errors.Newf("unexpected key length %d", len(it.Key()))
	}
	copy(found[:], it.Key())
	return found, true, nil
}

// ReadOnly is a ReadView over a database snapshot or any other reader.
type ReadOnly struct {
	ctx context.Context
	r   database.Reader
}

var _ ReadView = (*ReadOnly)(nil)

func NewReadOnly(ctx context.Context, r database.Reader) *ReadOnly {
	return &ReadOnly{ctx: ctx, r: r}
}

func (v *ReadOnly) Read(k keylet.Keylet) ([]byte, error) {
	return read(v.ctx, v.r, k.Key)
}

func (v *ReadOnly) Exists(k keylet.Keylet) (bool, error) {
	_, err := v.Read(k)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (v *ReadOnly) Succ(from, last [32]byte) ([32]byte, bool, error) {
	return succ(v.ctx, v.r, from, last)
}
