package directory

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/log"
)

type pageState uint8

const (
	stateClean pageState = iota
	stateDirty
	stateCreated
	stateErased
)

// chain stages the page changes of a single Insert or Remove. Pages are
// read through the view once and written back only by commit, so a call
// that fails before commit leaves the view untouched. A write that fails
// inside commit can leave earlier writes of the call in the view; callers
// discard the enclosing transaction on any error.
type chain struct {
	view     view.ApplyView
	base     [32]byte
	capacity int

	pages map[uint64]*Page
	state map[uint64]pageState
}

func newChain(v view.ApplyView, base [32]byte, capacity int) *chain {
	return &chain{
		view:     v,
		base:     base,
		capacity: capacity,
		pages:    make(map[uint64]*Page),
		state:    make(map[uint64]pageState),
	}
}

// root returns the root page, or nil when the directory does not exist.
func (c *chain) root() (*Page, error) {
	p, err := c.lookup(0)
	if errors.Is(err, view.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// page returns a page that the chain links to. A missing page is a broken link.
func (c *chain) page(idx uint64) (*Page, error) {
	p, err := c.lookup(idx)
	if errors.Is(err, view.ErrNotFound) {
		return nil, corruptf("page %d of %X is linked but missing", idx, c.base)
	}
	return p, err
}

// lookup returns a page, reporting view.ErrNotFound when it does not exist.
func (c *chain) lookup(idx uint64) (*Page, error) {
	if p, ok := c.pages[idx]; ok {
		if c.state[idx] == stateErased {
			return nil, view.ErrNotFound
		}
		return p, nil
	}

	p, err := readPage(c.view, c.base, idx)
	if err != nil {
		return nil, err
	}
	if c.capacity > 0 && len(p.Indexes) > c.capacity {
		return nil, corruptf("page %d of %X holds %d entries, capacity is %d",
			idx, c.base, len(p.Indexes), c.capacity)
	}
	c.pages[idx] = p
	c.state[idx] = stateClean
	return p, nil
}

// walk visits the pages from the root in link order and returns their
// numbers. The root must exist.
func (c *chain) walk(fn func(idx uint64, p *Page) bool) ([]uint64, error) {
	var order []uint64
	seen := make(map[uint64]struct{})

	for idx := uint64(0); ; {
		if _, ok := seen[idx]; ok {
			return nil, corruptf("directory %X revisits page %d", c.base, idx)
		}
		seen[idx] = struct{}{}

		p, err := c.page(idx)
		if err != nil {
			return nil, err
		}
		order = append(order, idx)
		if fn != nil && !fn(idx, p) {
			return order, nil
		}
		if p.IndexNext == 0 {
			return order, nil
		}
		idx = p.IndexNext
	}
}

func (c *chain) touch(idx uint64) {
	if c.state[idx] == stateClean {
		c.state[idx] = stateDirty
	}
}

func (c *chain) create(idx uint64, p *Page) {
	c.pages[idx] = p
	c.state[idx] = stateCreated
	log.Sugar.Debugw("directory page created", "dir", keyString(c.base), "page", idx)
}

func (c *chain) erase(idx uint64) {
	if c.state[idx] == stateCreated {
		delete(c.pages, idx)
		delete(c.state, idx)
		return
	}
	c.state[idx] = stateErased
	log.Sugar.Debugw("directory page erased", "dir", keyString(c.base), "page", idx)
}

// allocate reserves a fresh page number, recording it in the root.
func (c *chain) allocate(root *Page, maxPages uint64) (uint64, error) {
	next := root.IndexHigh
	if root.IndexLast > next {
		next = root.IndexLast
	}
	for {
		next++
		if next == 0 || (maxPages > 0 && next >= maxPages) {
			return 0, errors.Wrapf(ErrDirectoryFull, "directory %X", c.base)
		}
		if _, ok := c.pages[next]; ok {
			continue
		}
		exists, err := c.view.Exists(keylet.Page(c.base, next))
		if err != nil {
			return 0, err
		}
		if !exists {
			break
		}
	}
	root.IndexHigh = next
	c.touch(0)
	return next, nil
}

// unlink detaches the non-root page idx from the chain and erases it.
func (c *chain) unlink(root *Page, idx uint64) error {
	p, err := c.page(idx)
	if err != nil {
		return err
	}
	prev, err := c.page(p.IndexPrevious)
	if err != nil {
		return err
	}
	if prev.IndexNext != idx {
		return corruptf("page %d of %X names %d as previous, which links to %d",
			idx, c.base, p.IndexPrevious, prev.IndexNext)
	}

	prev.IndexNext = p.IndexNext
	c.touch(p.IndexPrevious)

	if p.IndexNext != 0 {
		next, err := c.page(p.IndexNext)
		if err != nil {
			return err
		}
		next.IndexPrevious = p.IndexPrevious
		c.touch(p.IndexNext)
	} else {
		if root.IndexLast != idx {
			return corruptf("directory %X tail is %d, root names %d", c.base, idx, root.IndexLast)
		}
		root.IndexLast = p.IndexPrevious
		c.touch(0)
	}

	c.erase(idx)
	return nil
}

// commit writes every staged change to the view.
func (c *chain) commit() error {
	idxs := make([]uint64, 0, len(c.state))
	for idx := range c.state {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })

	var created, erased int
	for _, idx := range idxs {
		k := keylet.Page(c.base, idx)
		switch c.state[idx] {
		case stateErased:
			if err := c.view.Erase(k); err != nil {
				return errors.Wrapf(err, "failed to erase page %d", idx)
			}
			erased++
		case stateCreated, stateDirty:
			data, err := c.pages[idx].Encode()
			if err != nil {
				return err
			}
			if c.state[idx] == stateCreated {
				err = c.view.Insert(k, data)
				created++
			} else {
				err = c.view.Update(k, data)
			}
			if err != nil {
				return errors.Wrapf(err, "failed to write page %d", idx)
			}
		}
	}

	pagesCreatedTotal.Add(float64(created))
	pagesErasedTotal.Add(float64(erased))
	return nil
}

func keyString(key [32]byte) string {
	return fmt.Sprintf("%X", key)
}
