package keylet

import (
	"encoding/binary"

	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
	crypto "github.com/LeJamon/xrpldir/internal/crypto/common"
)

// Space identifiers for keylet generation
// These correspond to the LedgerNameSpace enum in rippled
const (
	spaceAccount  uint16 = 'a' // Account root
	spaceDirNode  uint16 = 'd' // Directory node
	spaceOffer    uint16 = 'o' // Offer
	spaceOwnerDir uint16 = 'O' // Owner directory
	spaceBookDir  uint16 = 'B' // Order book directory
)

// Keylet represents an addressable location in the ledger state.
// It combines a type identifier with a 256-bit key.
type Keylet struct {
	Type entry.Type
	Key  [32]byte
}

// indexHash computes a keylet key by hashing the space and provided data.
func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

// Account returns the keylet for an account root entry.
func Account(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeAccountRoot,
		Key:  indexHash(spaceAccount, accountID[:]),
	}
}

// Offer returns the keylet for an offer entry.
func Offer(accountID [20]byte, sequence uint32) Keylet {
	seqBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(seqBytes, sequence)
	return Keylet{
		Type: entry.TypeOffer,
		Key:  indexHash(spaceOffer, accountID[:], seqBytes),
	}
}

// OwnerDir returns the keylet for the root page of an owner directory.
func OwnerDir(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  indexHash(spaceOwnerDir, accountID[:]),
	}
}

// Page returns the keylet for page number page of the directory rooted at
// root. Page 0 is the root itself.
func Page(root [32]byte, page uint64) Keylet {
	if page == 0 {
		return Keylet{Type: entry.TypeDirectoryNode, Key: root}
	}
	pageBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(pageBytes, page)
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  indexHash(spaceDirNode, root[:], pageBytes),
	}
}

// Child returns an untyped keylet for a directory member.
func Child(key [32]byte) Keylet {
	return Keylet{Type: entry.TypeAny, Key: key}
}

// Unchecked returns a keylet that carries no type expectation.
func Unchecked(key [32]byte) Keylet {
	return Child(key)
}
