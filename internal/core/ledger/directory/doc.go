// Package directory maintains ledger directories: paged chains of entry
// keys that index the objects of an owner or the offers at one price level
// of an order book.
//
// A chain starts at its root page, stored at the directory's base key, and
// follows IndexNext links until a page whose IndexNext is 0. The root
// records the tail page in IndexLast so appends never walk the chain. Pages
// are addressed by number through keylet.Page and are only ever read and
// written through a view.
//
// Every Insert and Remove leaves the chain fully linked: no empty page at
// its end, no duplicate entries and, in sorted mode, entries in ascending
// order. A directory with no entries has no pages at all, which is what
// lets Successor skip collapsed price levels.
package directory
