package directory

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// Successor returns the lowest quality strictly above after that has a
// price level in the book whose base is book. A base with quality bits set
// or after == math.MaxUint64 yields ok == false.
func Successor(v view.ReadView, book [32]byte, after uint64) (quality uint64, ok bool, err error) {
	if !keylet.IsBookBase(book) || after == math.MaxUint64 {
		return 0, false, nil
	}
	return seekLevel(v, book, after+1)
}

// FirstLevel returns the lowest quality with a price level in the book.
func FirstLevel(v view.ReadView, book [32]byte) (quality uint64, ok bool, err error) {
	if !keylet.IsBookBase(book) {
		return 0, false, nil
	}
	return seekLevel(v, book, 0)
}

// seekLevel finds the first directory root in [from, end of book). Keys in
// that range that are not directory roots are stepped over.
func seekLevel(v view.ReadView, book [32]byte, from uint64) (uint64, bool, error) {
	start := keylet.Quality(book, from).Key
	last := keylet.QualityNext(book)

	for {
		key, found, err := v.Succ(start, last)
		if err != nil || !found {
			return 0, false, err
		}

		isRoot, err := isDirectoryRoot(v, key)
		if err != nil {
			return 0, false, err
		}
		if isRoot {
			return keylet.GetQuality(key), true, nil
		}

		if start, found = increment(key); !found {
			return 0, false, nil
		}
	}
}

func isDirectoryRoot(v view.ReadView, key [32]byte) (bool, error) {
	data, err := v.Read(keylet.Unchecked(key))
	if err != nil {
		return false, err
	}
	p, err := DecodePage(data)
	if errors.Is(err, ErrNotDirectory) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.RootIndex == key, nil
}

func increment(key [32]byte) ([32]byte, bool) {
	for i := len(key) - 1; i >= 0; i-- {
		key[i]++
		if key[i] != 0 {
			return key, true
		}
	}
	return key, false
}

// BookDirs walks every offer of one book, best quality first. Each price
// level is drained before the next is located with Successor, so levels
// that have collapsed are never visited.
type BookDirs struct {
	view view.ReadView
	book [32]byte

	quality uint64
	level   *Iterator
	started bool
	done    bool
	err     error
}

func NewBookDirs(v view.ReadView, book [32]byte) *BookDirs {
	return &BookDirs{view: v, book: book}
}

// Next advances to the next offer.
func (b *BookDirs) Next() bool {
	for !b.done && b.err == nil {
		if b.level == nil {
			var (
				q   uint64
				ok  bool
				err error
			)
			if b.started {
				q, ok, err = Successor(b.view, b.book, b.quality)
			} else {
				q, ok, err = FirstLevel(b.view, b.book)
				b.started = true
			}
			if err != nil {
				b.err = err
				return false
			}
			if !ok {
				b.done = true
				return false
			}
			b.quality = q
			b.level = NewIterator(b.view, keylet.Quality(b.book, q).Key)
		}

		if b.level.Next() {
			return true
		}
		if err := b.level.Err(); err != nil {
			b.err = err
			return false
		}
		b.level = nil
	}
	return false
}

// Quality returns the quality of the current price level.
func (b *BookDirs) Quality() uint64 {
	return b.quality
}

// Dir returns the base key of the current price level.
func (b *BookDirs) Dir() [32]byte {
	return keylet.Quality(b.book, b.quality).Key
}

// Entry returns the current offer key.
func (b *BookDirs) Entry() [32]byte {
	if b.level == nil {
		return [32]byte{}
	}
	return b.level.Entry()
}

// Page returns the page of the current price level holding the offer.
func (b *BookDirs) Page() uint64 {
	if b.level == nil {
		return 0
	}
	return b.level.Page()
}

// Object reads the current offer.
func (b *BookDirs) Object() ([]byte, error) {
	if b.level == nil {
		return nil, view.ErrNotFound
	}
	return b.level.Object()
}

func (b *BookDirs) Err() error {
	return b.err
}
