package keylet

import (
	"encoding/binary"

	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
)

// qualityBytes is the number of trailing key bytes that encode the quality
// of a book directory.
const qualityBytes = 8

// Issue identifies one side of an order book.
type Issue struct {
	Currency [20]byte
	Issuer   [20]byte
}

// Book identifies an order book: offers paying In and getting Out.
type Book struct {
	In  Issue
	Out Issue
}

// BookDir returns the keylet for the base of an order book directory.
// The low 64 bits of the key are zero; individual price levels fill them
// in with their quality (see Quality).
func BookDir(book Book) Keylet {
	key := indexHash(spaceBookDir,
		book.In.Currency[:], book.Out.Currency[:],
		book.In.Issuer[:], book.Out.Issuer[:])
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  setQuality(key, 0),
	}
}

// Quality returns the keylet of the price level with quality q in the book
// whose base is base.
func Quality(base [32]byte, q uint64) Keylet {
	return Keylet{Type: entry.TypeDirectoryNode, Key: setQuality(base, q)}
}

// QualityNext returns the first key past every price level of the book
// that contains key. The result is the exclusive upper bound for
// successor queries within one book.
func QualityNext(key [32]byte) [32]byte {
	next := setQuality(key, 0)
	for i := len(next) - qualityBytes - 1; i >= 0; i-- {
		next[i]++
		if next[i] != 0 {
			break
		}
	}
	return next
}

// GetQuality extracts the quality encoded in a book directory key.
func GetQuality(key [32]byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-qualityBytes:])
}

// IsBookBase reports whether key has no quality bits set.
func IsBookBase(key [32]byte) bool {
	return GetQuality(key) == 0
}

func setQuality(key [32]byte, q uint64) [32]byte {
	binary.BigEndian.PutUint64(key[len(key)-qualityBytes:], q)
	return key
}
