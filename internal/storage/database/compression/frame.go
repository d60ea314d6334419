package compression

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Stored values carry a one byte tag naming how they were written.
const (
	tagRaw byte = 0
	tagLZ4 byte = 1
)

var frameTags = map[string]byte{"lz4": tagLZ4}

// maxFrameValue bounds the decoded size a compressed frame may claim.
const maxFrameValue = 64 << 20

// lz4 cannot expand a block by more than this factor.
const maxLZ4Ratio = 255

// ErrCorruptFrame is returned when a stored value cannot be decoded.
var ErrCorruptFrame = errors.New("corrupt value frame")

// Encode frames value for storage, compressing it with c when that saves
// space. A nil c stores the value raw.
func Encode(c Compressor, value []byte) ([]byte, error) {
	if c != nil {
		if tag, known := frameTags[c.Name()]; known {
			compressed, ok, err := c.Compress(value)
			if err != nil {
				return nil, err
			}
			if ok {
				out := make([]byte, 1+binary.MaxVarintLen64+len(compressed))
				out[0] = tag
				n := binary.PutUvarint(out[1:], uint64(len(value)))
				copy(out[1+n:], compressed)
				return out[:1+n+len(compressed)], nil
			}
		}
	}
	out := make([]byte, 1+len(value))
	out[0] = tagRaw
	copy(out[1:], value)
	return out, nil
}

// Decode reverses Encode. The compressor used for writing does not need to
// be known; the frame tag selects it.
func Decode(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, ErrCorruptFrame
	}
	switch frame[0] {
	case tagRaw:
		out := make([]byte, len(frame)-1)
		copy(out, frame[1:])
		return out, nil
	case tagLZ4:
		size, n := binary.Uvarint(frame[1:])
		if n <= 0 {
			return nil, errors.Wrap(ErrCorruptFrame, "bad length prefix")
		}
		payload := frame[1+n:]
		if size > maxFrameValue || size > uint64(len(payload))*maxLZ4Ratio {
			return nil, errors.Wrapf(ErrCorruptFrame, "length prefix %d for a %d byte payload", size, len(payload))
		}
		return (&LZ4Compressor{}).Decompress(payload, int(size))
	default:
		return nil, errors.Wrapf(ErrCorruptFrame, "unknown tag %d", frame[0])
	}
}
