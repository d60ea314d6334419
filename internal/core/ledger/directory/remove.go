package directory

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/log"
)

// Remove deletes key from the directory rooted at base. hint is the page
// Insert reported; when the key is not there the whole chain is searched.
//
// A non-root page left empty is unlinked and erased. A root left empty
// takes over the entries of the page after it. Empty pages at the end of
// the chain are then trimmed, and a directory left with no entries is
// erased entirely.
func Remove(v view.ApplyView, base [32]byte, hint uint64, key [32]byte) error {
	c := newChain(v, base, 0)
	root, err := c.root()
	if err != nil {
		return err
	}
	if root == nil {
		return errors.Wrapf(ErrNotFound, "%X: directory %X does not exist", key, base)
	}

	idx, pos, err := find(c, hint, key)
	if err != nil {
		return err
	}

	p := c.pages[idx]
	p.removeAt(pos)
	c.touch(idx)

	if len(p.Indexes) == 0 {
		if idx == 0 {
			err = absorb(c, root)
		} else {
			err = c.unlink(root, idx)
		}
		if err != nil {
			return err
		}
	}

	if err := trimTail(c, root); err != nil {
		return err
	}

	if len(root.Indexes) == 0 && root.IndexNext == 0 {
		c.erase(0)
	}

	if err := c.commit(); err != nil {
		return err
	}
	removesTotal.Inc()
	return nil
}

// find locates key, trying the hinted page before walking the chain.
func find(c *chain, hint uint64, key [32]byte) (uint64, int, error) {
	p, err := c.lookup(hint)
	switch {
	case err == nil:
		if pos := p.indexOf(key); pos >= 0 {
			return hint, pos, nil
		}
	case errors.Is(err, view.ErrNotFound):
	default:
		return 0, 0, err
	}

	var (
		found uint64
		pos   = -1
	)
	if _, err := c.walk(func(idx uint64, p *Page) bool {
		if i := p.indexOf(key); i >= 0 {
			found, pos = idx, i
			return false
		}
		return true
	}); err != nil {
		return 0, 0, err
	}
	if pos < 0 {
		return 0, 0, errors.Wrapf(ErrNotFound, "%X in directory %X", key, c.base)
	}
	return found, pos, nil
}

// absorb refills an emptied root from the pages after it.
func absorb(c *chain, root *Page) error {
	for len(root.Indexes) == 0 && root.IndexNext != 0 {
		idx := root.IndexNext
		p, err := c.page(idx)
		if err != nil {
			return err
		}
		if p.IndexPrevious != 0 {
			return corruptf("page %d of %X follows the root but names %d as previous",
				idx, c.base, p.IndexPrevious)
		}

		root.Indexes = p.Indexes
		root.IndexNext = p.IndexNext
		if p.IndexNext != 0 {
			next, err := c.page(p.IndexNext)
			if err != nil {
				return err
			}
			next.IndexPrevious = 0
			c.touch(p.IndexNext)
		} else {
			root.IndexLast = 0
		}
		c.touch(0)
		c.erase(idx)

		log.Sugar.Debugw("directory root absorbed page", "dir", keyString(c.base), "page", idx)
	}
	return nil
}

// trimTail erases empty pages from the end of the chain.
func trimTail(c *chain, root *Page) error {
	for root.IndexLast != 0 {
		tail, err := c.page(root.IndexLast)
		if err != nil {
			return err
		}
		if len(tail.Indexes) > 0 {
			return nil
		}
		if err := c.unlink(root, root.IndexLast); err != nil {
			return err
		}
	}
	return nil
}
