package keylet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/core/ledger/entry"
)

func mustHash(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var out [32]byte
	copy(out[:], b)
	return out
}

func TestBookDirKey(t *testing.T) {
	// XRP currency and issuer are all zeros
	var xrp Issue

	cny := Issue{}
	copy(cny.Currency[12:], []byte("CNY"))
	// rnuF96W4SZoCJmbHYBFoJZpR8eCaxNvekK decoded
	issuerBytes, _ := hex.DecodeString("35dd7df146893456296bf4061fbe68735d28f328")
	copy(cny.Issuer[:], issuerBytes)

	// TakerPays=XRP, TakerGets=CNY
	k := BookDir(Book{In: xrp, Out: cny})

	assert.Equal(t, entry.TypeDirectoryNode, k.Type)
	assert.Equal(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf0", hex.EncodeToString(k.Key[:24]))
	assert.True(t, IsBookBase(k.Key))

	level := Quality(k.Key, 0x5c038d7ea4c68000)
	assert.Equal(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf05c038d7ea4c68000", hex.EncodeToString(level.Key[:]))
	assert.Equal(t, uint64(0x5c038d7ea4c68000), GetQuality(level.Key))
	assert.False(t, IsBookBase(level.Key))
}

func TestQualityNext(t *testing.T) {
	base := mustHash(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf00000000000000000")

	t.Run("increments the book prefix", func(t *testing.T) {
		next := QualityNext(base)
		assert.Equal(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf10000000000000000", hex.EncodeToString(next[:]))
	})

	t.Run("ignores the quality of the input", func(t *testing.T) {
		assert.Equal(t, QualityNext(base), QualityNext(Quality(base, 12345).Key))
	})

	t.Run("carries across bytes", func(t *testing.T) {
		k := mustHash(t, "00000000000000000000000000000000000000000000ffff0000000000000007")
		next := QualityNext(k)
		assert.Equal(t, "0000000000000000000000000000000000000000000100000000000000000000", hex.EncodeToString(next[:]))
	})

	t.Run("every level sorts below the bound", func(t *testing.T) {
		top := Quality(base, ^uint64(0)).Key
		next := QualityNext(base)
		assert.Less(t, hex.EncodeToString(top[:]), hex.EncodeToString(next[:]))
	})
}

func TestOwnerDirAndPages(t *testing.T) {
	// arbitrary account id
	var account [20]byte
	b, _ := hex.DecodeString("7f58b19358f8e497c8a9ded3e6db3bc23a13c1a5")
	copy(account[:], b)

	root := OwnerDir(account)
	assert.Equal(t, entry.TypeDirectoryNode, root.Type)
	assert.Equal(t, mustHash(t, "c2d74df28ed4f3fca5f964a23fb7a9b39fee4020e7a4d676b8ecb653374c179e"), root.Key)

	assert.Equal(t, root.Key, Page(root.Key, 0).Key, "page 0 is the root")

	bookLevel := mustHash(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf05c038d7ea4c68000")
	assert.Equal(t, mustHash(t, "66b0b9748e954af0c8d4041d28b8d0be4e041cb5a02f3ba25d1bde882fe13687"), Page(bookLevel, 1).Key)
	assert.NotEqual(t, Page(bookLevel, 1).Key, Page(bookLevel, 2).Key)
}

func TestOffer(t *testing.T) {
	// arbitrary account id
	var account [20]byte
	b, _ := hex.DecodeString("7f58b19358f8e497c8a9ded3e6db3bc23a13c1a5")
	copy(account[:], b)

	k := Offer(account, 5)
	assert.Equal(t, entry.TypeOffer, k.Type)
	assert.Equal(t, mustHash(t, "164e537c0ca0e2a33385865d87512023864e06c5f0ab71f63d5591088b5034d7"), k.Key)
	assert.Equal(t, entry.TypeAny, Child(k.Key).Type)
}
