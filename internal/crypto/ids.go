package crypto

import (
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an XRPL account ID in bytes.
const AccountIDSize = 20

// ErrAccountIDLength is returned for account ids that are not 20 bytes.
var ErrAccountIDLength = errors.New("account id must be 20 bytes")

// CalcAccountID computes the account ID from a public key as
// RIPEMD160(SHA256(publicKey)). The whole key, prefix byte included, is hashed
// whatever the signing scheme.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	sum := sha256.Sum256(publicKey)

	h := ripemd160.New()
	h.Write(sum[:])

	var id [AccountIDSize]byte
	copy(id[:], h.Sum(nil))
	return id
}

// AccountIDFromBytes copies a decoded account id.
func AccountIDFromBytes(b []byte) ([AccountIDSize]byte, error) {
	var id [AccountIDSize]byte
	if len(b) != AccountIDSize {
		return id, errors.WithDetailf(ErrAccountIDLength, "got %d bytes", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// IsZeroAccountID reports whether id is the all-zero account, which stands
// for XRP in issues and is never a real issuer.
func IsZeroAccountID(id [AccountIDSize]byte) bool {
	return id == [AccountIDSize]byte{}
}
