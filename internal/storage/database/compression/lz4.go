package compression

import (
	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4"
)

// NoCompressor never compresses.
type NoCompressor struct{}

// Name returns the name of the compressor.
func (c *NoCompressor) Name() string {
	return "none"
}

// Compress always reports the data as incompressible.
func (c *NoCompressor) Compress(data []byte) ([]byte, bool, error) {
	return data, false, nil
}

// Decompress returns the data unchanged.
func (c *NoCompressor) Decompress(data []byte, size int) ([]byte, error) {
	return data, nil
}

// LZ4Compressor implements LZ4 block compression.
type LZ4Compressor struct{}

// Name returns the name of the compressor.
func (c *LZ4Compressor) Name() string {
	return "lz4"
}

// Compress compresses data using LZ4.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, bool, error) {
	if len(data) == 0 {
		return data, false, nil
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "lz4 compression failed")
	}
	// lz4 reports incompressible input with a zero length
	if n == 0 || n >= len(data) {
		return data, false, nil
	}
	return compressed[:n], true, nil
}

// Decompress decompresses an LZ4 block of known uncompressed size.
func (c *LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 decompression failed")
	}
	if n != size {
		return nil, errors.Newf("lz4 decompression: got %d bytes, want %d", n, size)
	}
	return out, nil
}
