package directory

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// ErrInvariant is returned by Verify for a chain that reads back but breaks
// one of the structural rules Insert and Remove maintain.
var ErrInvariant = errors.New("directory invariant violated")

// Stats summarizes a verified chain.
type Stats struct {
	Pages   int
	Entries int
	Tail    uint64
}

// Verify reads the whole directory rooted at base and checks that it has
// no duplicate entries, no empty pages, no page over capacity, consistent
// back links and a root that names the real tail. With sorted set it also
// checks ascending order across the chain. A missing directory is valid.
func Verify(v view.ReadView, base [32]byte, capacity int, sorted bool) (Stats, error) {
	var stats Stats

	root, err := readPage(v, base, 0)
	if errors.Is(err, view.ErrNotFound) {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}

	seen := make(map[[32]byte]uint64)
	visited := map[uint64]struct{}{0: {}}
	var (
		prevKey []byte
		prevIdx uint64
		idx     uint64
		p       = root
	)

	for {
		stats.Pages++
		if len(p.Indexes) == 0 {
			return stats, errors.Wrapf(ErrInvariant, "page %d is empty", idx)
		}
		if capacity > 0 && len(p.Indexes) > capacity {
			return stats, errors.Wrapf(ErrInvariant, "page %d holds %d entries, capacity is %d",
				idx, len(p.Indexes), capacity)
		}
		if idx > root.IndexHigh {
			return stats, errors.Wrapf(ErrInvariant, "page %d is above the high water mark %d", idx, root.IndexHigh)
		}
		if idx != 0 && p.IndexPrevious != prevIdx {
			return stats, errors.Wrapf(ErrInvariant, "page %d names %d as previous, expected %d",
				idx, p.IndexPrevious, prevIdx)
		}

		for _, key := range p.Indexes {
			if other, dup := seen[key]; dup {
				return stats, errors.Wrapf(ErrInvariant, "entry %X in pages %d and %d", key, other, idx)
			}
			seen[key] = idx
			if sorted && prevKey != nil && bytes.Compare(prevKey, key[:]) >= 0 {
				return stats, errors.Wrapf(ErrInvariant, "entry %X out of order in page %d", key, idx)
			}
			k := key
			prevKey = k[:]
			stats.Entries++
		}

		if p.IndexNext == 0 {
			break
		}
		next := p.IndexNext
		if _, ok := visited[next]; ok {
			return stats, corruptf("directory %X revisits page %d", base, next)
		}
		visited[next] = struct{}{}

		np, err := readPage(v, base, next)
		if errors.Is(err, view.ErrNotFound) {
			return stats, corruptf("page %d of %X is linked but missing", next, base)
		}
		if err != nil {
			return stats, err
		}
		prevIdx, idx, p = idx, next, np
	}

	stats.Tail = idx
	if root.IndexLast != idx {
		return stats, errors.Wrapf(ErrInvariant, "root names page %d as tail, chain ends at %d", root.IndexLast, idx)
	}
	return stats, nil
}
