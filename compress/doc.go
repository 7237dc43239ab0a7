// Package compress provides compression and decompression codecs for the
// builder-backed representation's optional large-BINARY-payload
// compression (builder.WithBinaryCompression).
//
// The zero-copy indexed view never compresses: it is a read-only window
// over caller-supplied bytes and must preserve to_bytes() round-trip
// exactly. Compression only applies when a document/array is being
// constructed fresh via a builder and a BINARY value crosses a
// caller-configured size threshold.
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, fastest.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// All codecs implement Compressor, Decompressor, or both (Codec), and are
// safe for concurrent use.
package compress
