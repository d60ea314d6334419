package directory

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/amendment"
)

const (
	// DefaultCapacity is the number of entries a page holds.
	DefaultCapacity = 32

	// DefaultMaxPages is the page limit of one directory.
	DefaultMaxPages uint64 = 262144
)

// Options controls how Insert grows a chain.
type Options struct {
	// Capacity is the maximum number of entries per page.
	Capacity int
	// Sorted keeps entries in ascending order across the chain.
	Sorted bool
	// MaxPages bounds page numbers; a new page numbered MaxPages or higher
	// is refused. Zero lifts the bound.
	MaxPages uint64
	// Describe, when set, stamps descriptive fields on every new page.
	Describe func(*Page)
}

// DefaultOptions returns sorted insertion with the default limits.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		Sorted:   true,
		MaxPages: DefaultMaxPages,
	}
}

// OptionsFor builds Options from the rules in force for one operation.
// Rules change between ledgers, so callers build Options per operation
// rather than caching them.
func OptionsFor(rules *amendment.Rules, capacity int, maxPages uint64) Options {
	opts := Options{
		Capacity: capacity,
		Sorted:   rules.SortedDirectoriesEnabled(),
		MaxPages: maxPages,
	}
	if rules.DirectoryLimitLifted() {
		opts.MaxPages = 0
	}
	return opts
}

// WithDescribe returns a copy of o that stamps pages with describe.
func (o Options) WithDescribe(describe func(*Page)) Options {
	o.Describe = describe
	return o
}

func (o Options) validate() error {
	if o.Capacity < 1 {
		return errors.Newf("page capacity must be positive, got %d", o.Capacity)
	}
	return nil
}

func (o Options) describe(p *Page) {
	if o.Describe != nil {
		o.Describe(p)
	}
}
