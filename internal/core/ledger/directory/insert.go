package directory

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// Insert adds key to the directory rooted at base, creating the directory
// if needed, and returns the page the key landed in. Callers keep the page
// as a hint for Remove.
//
// In unsorted mode the key is appended to the tail page. In sorted mode it
// goes to the first page whose last entry is greater than key, or to the
// tail. A page pushed over capacity spills into a new page linked right
// after it: the tail keeps its first Capacity entries, an interior page
// keeps its lower half.
func Insert(v view.ApplyView, base [32]byte, key [32]byte, opts Options) (uint64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	c := newChain(v, base, opts.Capacity)
	root, err := c.root()
	if err != nil {
		return 0, err
	}

	if root == nil {
		root = newPage(base)
		root.Indexes = [][32]byte{key}
		opts.describe(root)
		c.create(0, root)
		if err := c.commit(); err != nil {
			return 0, err
		}
		insertsTotal.Inc()
		return 0, nil
	}

	var duplicate bool
	order, err := c.walk(func(idx uint64, p *Page) bool {
		duplicate = p.indexOf(key) >= 0
		return !duplicate
	})
	if err != nil {
		return 0, err
	}
	if duplicate {
		return 0, errors.Wrapf(ErrDuplicateEntry, "%X in page %d", key, order[len(order)-1])
	}

	tail := order[len(order)-1]
	if root.IndexLast != tail {
		return 0, corruptf("directory %X ends at page %d, root names %d", base, tail, root.IndexLast)
	}

	var page uint64
	if opts.Sorted {
		page, err = insertSorted(c, root, order, key, opts)
	} else {
		page, err = insertUnsorted(c, root, tail, key, opts)
	}
	if err != nil {
		return 0, err
	}

	if err := c.commit(); err != nil {
		return 0, err
	}
	insertsTotal.Inc()
	return page, nil
}

func insertUnsorted(c *chain, root *Page, tail uint64, key [32]byte, opts Options) (uint64, error) {
	p, err := c.page(tail)
	if err != nil {
		return 0, err
	}

	if len(p.Indexes) < opts.Capacity {
		p.Indexes = append(p.Indexes, key)
		c.touch(tail)
		return tail, nil
	}

	return appendPage(c, root, tail, p, [][32]byte{key}, opts)
}

func insertSorted(c *chain, root *Page, order []uint64, key [32]byte, opts Options) (uint64, error) {
	target := order[len(order)-1]
	for _, idx := range order {
		if last, ok := c.pages[idx].last(); ok && bytes.Compare(last[:], key[:]) > 0 {
			target = idx
			break
		}
	}

	p := c.pages[target]
	pos := p.insertSorted(key)
	c.touch(target)
	if len(p.Indexes) <= opts.Capacity {
		return target, nil
	}

	split := len(p.Indexes) / 2
	if p.IndexNext == 0 {
		split = opts.Capacity
	}
	moved := make([][32]byte, len(p.Indexes)-split)
	copy(moved, p.Indexes[split:])
	p.Indexes = p.Indexes[:split]

	idx, err := appendPage(c, root, target, p, moved, opts)
	if err != nil {
		return 0, err
	}
	if pos < split {
		return target, nil
	}
	return idx, nil
}

// appendPage allocates a page holding entries and links it right after
// page prevIdx.
func appendPage(c *chain, root *Page, prevIdx uint64, prev *Page, entries [][32]byte, opts Options) (uint64, error) {
	idx, err := c.allocate(root, opts.MaxPages)
	if err != nil {
		return 0, err
	}

	p := newPage(c.base)
	p.Indexes = entries
	p.IndexPrevious = prevIdx
	p.IndexNext = prev.IndexNext
	opts.describe(p)

	if prev.IndexNext != 0 {
		next, err := c.page(prev.IndexNext)
		if err != nil {
			return 0, err
		}
		next.IndexPrevious = idx
		c.touch(prev.IndexNext)
	} else {
		root.IndexLast = idx
		c.touch(0)
	}

	prev.IndexNext = idx
	c.touch(prevIdx)
	c.create(idx, p)
	return idx, nil
}
