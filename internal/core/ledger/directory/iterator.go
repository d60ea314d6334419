package directory

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// Iterator walks the entries of one directory in chain order. It reads
// pages lazily and never modifies the chain. A missing directory yields no
// entries.
//
//	it := directory.NewIterator(v, base)
//	for it.Next() {
//		use(it.Entry())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	view     view.ReadView
	base     [32]byte
	capacity int

	page    *Page
	pageIdx uint64
	pos     int
	entry   [32]byte
	seen    map[uint64]struct{}
	started bool
	done    bool
	err     error
}

func NewIterator(v view.ReadView, base [32]byte) *Iterator {
	return &Iterator{view: v, base: base}
}

// WithCapacity makes the iterator reject pages holding more than capacity
// entries as corrupt.
func (it *Iterator) WithCapacity(capacity int) *Iterator {
	it.capacity = capacity
	return it
}

// Next advances to the next entry.
func (it *Iterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	if !it.started {
		it.started = true
		it.seen = make(map[uint64]struct{})
		p, err := it.load(0)
		if errors.Is(err, view.ErrNotFound) {
			it.done = true
			return false
		}
		if err != nil {
			it.err = err
			return false
		}
		it.page, it.pageIdx, it.pos = p, 0, 0
	}

	for it.pos >= len(it.page.Indexes) {
		next := it.page.IndexNext
		if next == 0 {
			it.done = true
			return false
		}
		p, err := it.load(next)
		if errors.Is(err, view.ErrNotFound) {
			err = corruptf("page %d of %X is linked but missing", next, it.base)
		}
		if err != nil {
			it.err = err
			return false
		}
		it.page, it.pageIdx, it.pos = p, next, 0
	}

	it.entry = it.page.Indexes[it.pos]
	it.pos++
	return true
}

func (it *Iterator) load(idx uint64) (*Page, error) {
	if _, ok := it.seen[idx]; ok {
		return nil, corruptf("directory %X revisits page %d", it.base, idx)
	}
	it.seen[idx] = struct{}{}

	p, err := readPage(it.view, it.base, idx)
	if err != nil {
		return nil, err
	}
	if it.capacity > 0 && len(p.Indexes) > it.capacity {
		return nil, corruptf("page %d of %X holds %d entries, capacity is %d",
			idx, it.base, len(p.Indexes), it.capacity)
	}
	return p, nil
}

// Entry returns the current entry key.
func (it *Iterator) Entry() [32]byte {
	return it.entry
}

// Page returns the page number holding the current entry.
func (it *Iterator) Page() uint64 {
	return it.pageIdx
}

// Object reads the ledger entry the current entry refers to.
func (it *Iterator) Object() ([]byte, error) {
	return it.view.Read(keylet.Child(it.entry))
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Reset rewinds the iterator to the first entry.
func (it *Iterator) Reset() {
	*it = Iterator{view: it.view, base: it.base, capacity: it.capacity}
}

// ForEach calls fn with every entry of the directory rooted at base.
// Iteration stops at the first error fn returns.
func ForEach(v view.ReadView, base [32]byte, fn func(entry [32]byte, page uint64) error) error {
	it := NewIterator(v, base)
	for it.Next() {
		if err := fn(it.Entry(), it.Page()); err != nil {
			return err
		}
	}
	return it.Err()
}

// Entries returns every entry of the directory rooted at base in chain order.
func Entries(v view.ReadView, base [32]byte) ([][32]byte, error) {
	var out [][32]byte
	err := ForEach(v, base, func(entry [32]byte, _ uint64) error {
		out = append(out, entry)
		return nil
	})
	return out, err
}

// Count returns the number of entries in the directory rooted at base.
func Count(v view.ReadView, base [32]byte) (int, error) {
	n := 0
	err := ForEach(v, base, func([32]byte, uint64) error {
		n++
		return nil
	})
	return n, err
}
