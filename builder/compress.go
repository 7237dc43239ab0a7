package builder

import (
	"fmt"

	"github.com/zerocopy-bson/bson/compress"
	"github.com/zerocopy-bson/bson/format"
	"github.com/zerocopy-bson/bson/internal/pool"
)

// copyViaPool stages data through a pooled scratch ByteBuffer and
// returns an independent copy, so the builder never retains a
// caller-owned slice.
func copyViaPool(data []byte) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.MustWrite(data)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}

// encodeBinary applies cfg's compression policy to a BINARY payload being
// appended, returning the bytes to store and whether they ended up
// compressed. On any codec failure it falls back to storing data
// uncompressed rather than failing the append.
func encodeBinary(cfg config, data []byte) ([]byte, bool) {
	if cfg.compressionCodec == format.CompressionNone || len(data) < cfg.compressionThreshold {
		return copyViaPool(data), false
	}

	codec, err := compress.GetCodec(cfg.compressionCodec)
	if err != nil {
		return copyViaPool(data), false
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return copyViaPool(data), false
	}

	return compressed, true
}

// decodeBinary reverses encodeBinary for a stored complex[] entry.
func decodeBinary(v complexValue) ([]byte, error) {
	if !v.compressed {
		return v.binaryData, nil
	}

	codec, err := compress.GetCodec(v.codec)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(v.binaryData)
	if err != nil {
		return nil, fmt.Errorf("bson: decompressing binary payload: %w", err)
	}

	return out, nil
}
