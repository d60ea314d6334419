package directory

import (
	"bytes"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/ugorji/go/codec"

	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
)

// Page is one node of a directory chain. Page 0, the root, is stored at the
// directory's base key; every other page is stored at keylet.Page(base, n).
type Page struct {
	LedgerEntryType entry.Type `codec:"LedgerEntryType"`
	Flags           uint32     `codec:"Flags,omitempty"`
	RootIndex       [32]byte   `codec:"RootIndex"`
	Indexes         [][32]byte `codec:"Indexes"`

	// IndexNext is the next page in the chain, 0 at the tail.
	IndexNext uint64 `codec:"IndexNext,omitempty"`
	// IndexPrevious is the page linking to this one. Unused on the root.
	IndexPrevious uint64 `codec:"IndexPrevious,omitempty"`
	// IndexLast is the tail page. Root only.
	IndexLast uint64 `codec:"IndexLast,omitempty"`
	// IndexHigh is the highest page number ever allocated. Root only.
	IndexHigh uint64 `codec:"IndexHigh,omitempty"`

	// Owner directory specific
	Owner [20]byte `codec:"Owner,omitempty"`

	// Book directory specific
	TakerPaysCurrency [20]byte `codec:"TakerPaysCurrency,omitempty"`
	TakerPaysIssuer   [20]byte `codec:"TakerPaysIssuer,omitempty"`
	TakerGetsCurrency [20]byte `codec:"TakerGetsCurrency,omitempty"`
	TakerGetsIssuer   [20]byte `codec:"TakerGetsIssuer,omitempty"`
	ExchangeRate      uint64   `codec:"ExchangeRate,omitempty"`
}

var cborHandle = &codec.CborHandle{}

func newPage(base [32]byte) *Page {
	return &Page{
		LedgerEntryType: entry.TypeDirectoryNode,
		RootIndex:       base,
	}
}

// Encode serializes the page.
func (p *Page) Encode() ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, cborHandle).Encode(p); err != nil {
		return nil, errors.Wrap(err, "failed to encode directory page")
	}
	return out, nil
}

// DecodePage parses a serialized page.
func DecodePage(data []byte) (*Page, error) {
	p := &Page{}
	if err := codec.NewDecoderBytes(data, cborHandle).Decode(p); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to decode directory page"), ErrNotDirectory)
	}
	if p.LedgerEntryType != entry.TypeDirectoryNode {
		return nil, errors.Wrapf(ErrNotDirectory, "entry type %s", p.LedgerEntryType)
	}
	return p, nil
}

// IsBook reports whether the page belongs to a book directory.
func (p *Page) IsBook() bool {
	return p.ExchangeRate != 0 ||
		p.TakerPaysCurrency != [20]byte{} || p.TakerGetsCurrency != [20]byte{} ||
		p.TakerPaysIssuer != [20]byte{} || p.TakerGetsIssuer != [20]byte{}
}

func (p *Page) indexOf(key [32]byte) int {
	for i, k := range p.Indexes {
		if k == key {
			return i
		}
	}
	return -1
}

func (p *Page) last() ([32]byte, bool) {
	if len(p.Indexes) == 0 {
		return [32]byte{}, false
	}
	return p.Indexes[len(p.Indexes)-1], true
}

// insertSorted places key in ascending position and returns that position.
func (p *Page) insertSorted(key [32]byte) int {
	pos := sort.Search(len(p.Indexes), func(i int) bool {
		return bytes.Compare(p.Indexes[i][:], key[:]) > 0
	})
	p.Indexes = append(p.Indexes, [32]byte{})
	copy(p.Indexes[pos+1:], p.Indexes[pos:])
	p.Indexes[pos] = key
	return pos
}

func (p *Page) removeAt(i int) {
	p.Indexes = append(p.Indexes[:i], p.Indexes[i+1:]...)
}

// DescribeOwner stamps the owner account on new pages of an owner directory.
func DescribeOwner(owner [20]byte) func(*Page) {
	return func(p *Page) {
		p.Owner = owner
	}
}

// DescribeBook stamps the book and quality on new pages of a book directory.
func DescribeBook(book keylet.Book, quality uint64) func(*Page) {
	return func(p *Page) {
		p.TakerPaysCurrency = book.In.Currency
		p.TakerPaysIssuer = book.In.Issuer
		p.TakerGetsCurrency = book.Out.Currency
		p.TakerGetsIssuer = book.Out.Issuer
		p.ExchangeRate = quality
	}
}

// readPage loads page idx of the directory rooted at base. A missing page
// is reported with view.ErrNotFound.
func readPage(v view.ReadView, base [32]byte, idx uint64) (*Page, error) {
	data, err := v.Read(keylet.Page(base, idx))
	if err != nil {
		return nil, err
	}
	p, err := DecodePage(data)
	if err != nil {
		if errors.Is(err, ErrNotDirectory) {
			return nil, corruptf("page %d of %X: %v", idx, base, err)
		}
		return nil, err
	}
	if p.RootIndex != base {
		return nil, corruptf("page %d of %X belongs to directory %X", idx, base, p.RootIndex)
	}
	return p, nil
}

// ReadPage returns page idx of the directory rooted at base.
func ReadPage(v view.ReadView, base [32]byte, idx uint64) (*Page, error) {
	p, err := readPage(v, base, idx)
	if errors.Is(err, view.ErrNotFound) {
		return nil, errors.Wrapf(err, "page %d of %X", idx, base)
	}
	return p, err
}
