// Package errs defines the sentinel error values returned by the bson
// packages. Callers should compare with errors.Is against these values
// rather than matching on message text.
package errs

import "errors"

var (
	// ErrInvalidInput is returned when parse input is nil or too short to
	// contain a valid BSON document (fewer than 5 bytes).
	ErrInvalidInput = errors.New("bson: invalid input")

	// ErrMalformedBSON is returned when the byte stream cannot be indexed
	// safely: an unknown element tag, a length prefix that would run past
	// the declared document end, or a missing terminator beyond the
	// document's declared length.
	ErrMalformedBSON = errors.New("bson: malformed document")

	// ErrFieldNotFound is returned by strict typed document getters when
	// the requested field name is absent.
	ErrFieldNotFound = errors.New("bson: field not found")

	// ErrIndexOutOfBounds is returned by strict array getters when the
	// requested index is negative or >= size().
	ErrIndexOutOfBounds = errors.New("bson: index out of bounds")

	// ErrTypeMismatch is returned by strict typed getters when the field
	// is present but stored under a different element tag.
	ErrTypeMismatch = errors.New("bson: type mismatch")

	// ErrIllegalState is returned by DocumentBuilder/ArrayBuilder.Build
	// when called on an already-spent builder.
	ErrIllegalState = errors.New("bson: illegal builder state")

	// ErrHashCollision names a name-hash collision. No function in this
	// module returns it; collision diagnostics are reported through
	// view.Document.CollisionCount and HasHashCollisions instead.
	ErrHashCollision = errors.New("bson: hash collision")
)
