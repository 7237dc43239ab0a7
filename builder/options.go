package builder

import (
	"github.com/zerocopy-bson/bson/format"
	"github.com/zerocopy-bson/bson/internal/options"
)

// config collects the construction-time options for a DocumentBuilder or
// ArrayBuilder.
type config struct {
	estimatedFields      int
	compressionCodec     format.CompressionType
	compressionThreshold int
}

func defaultConfig() config {
	return config{compressionCodec: format.CompressionNone}
}

// Option configures a DocumentBuilder or ArrayBuilder at construction
// time, built over the generic internal/options plumbing.
type Option = options.Option[*config]

// WithEstimatedFields pre-sizes the builder's columns for n entries. It
// is a pre-allocation hint only and has no observable effect on the
// built value.
func WithEstimatedFields(n int) Option {
	return options.NoError[*config](func(c *config) { c.estimatedFields = n })
}

// WithBinaryCompression compresses BINARY values at or above threshold
// bytes using codecType before storing them in the complex[] column.
// The zero-copy indexed view (package view) never compresses - this
// option only affects values appended through this builder - and
// decompression happens lazily through the same per-entry cache
// discipline as the indexed view's own lazy decode cache.
func WithBinaryCompression(codecType format.CompressionType, threshold int) Option {
	return options.NoError[*config](func(c *config) {
		c.compressionCodec = codecType
		c.compressionThreshold = threshold
	})
}
