package errors

// CodecError is a specialized error type for encode/decode failures. It
// carries enough location context (key, address, byte count) to correlate a
// bad read or write with the exact region offset that produced it.
type CodecError struct {
	*baseError

	key     string // String form of the key being encoded or decoded, if known.
	address uint64 // Region address the codec was operating at.
	size    int32  // Byte count the codec reported or expected.
}

// NewCodecError creates a new codec-specific error.
func NewCodecError(err error, code ErrorCode, msg string) *CodecError {
	return &CodecError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while maintaining the CodecError type.
func (ce *CodecError) WithMessage(msg string) *CodecError {
	ce.baseError.WithMessage(msg)
	return ce
}

// WithCode sets the error code while preserving the CodecError type.
func (ce *CodecError) WithCode(code ErrorCode) *CodecError {
	ce.baseError.WithCode(code)
	return ce
}

// WithDetail adds contextual information while maintaining the CodecError type.
func (ce *CodecError) WithDetail(key string, value any) *CodecError {
	ce.baseError.WithDetail(key, value)
	return ce
}

// WithKey records the string form of the key involved in the failure.
func (ce *CodecError) WithKey(key string) *CodecError {
	ce.key = key
	return ce
}

// WithAddress records the region address the codec was operating at.
func (ce *CodecError) WithAddress(address uint64) *CodecError {
	ce.address = address
	return ce
}

// WithSize records the byte count the codec reported or expected.
func (ce *CodecError) WithSize(size int32) *CodecError {
	ce.size = size
	return ce
}

// Key returns the string form of the key involved in the failure.
func (ce *CodecError) Key() string {
	return ce.key
}

// Address returns the region address the codec was operating at.
func (ce *CodecError) Address() uint64 {
	return ce.address
}

// Size returns the byte count the codec reported or expected.
func (ce *CodecError) Size() int32 {
	return ce.size
}

// NewNegativeSizeError creates an error for a codec that reported a negative
// size for a value it was asked to size.
func NewNegativeSizeError(key string, size int32) *CodecError {
	return NewCodecError(nil, ErrorCodeCodec, "codec reported a negative size").
		WithKey(key).
		WithSize(size)
}

// NewShortWriteError creates an error for an encode call that wrote fewer (or
// more) bytes than SizeOf had promised.
func NewShortWriteError(key string, address uint64, expected, wrote int32) *CodecError {
	return NewCodecError(nil, ErrorCodeCodec, "codec wrote a different number of bytes than it sized").
		WithKey(key).
		WithAddress(address).
		WithSize(wrote).
		WithDetail("expected", expected)
}

// NewInvalidKeyError creates an error for a key the engine rejects before it
// ever reaches the index: today this is limited to the reserved keys (0 and
// the type's minimum value, for both int64 and int32 keys) that the engine
// refuses for LongPrimitiveIndex and IntPrimitiveIndex.
func NewInvalidKeyError(key string, reason string) *CodecError {
	return NewCodecError(nil, ErrorCodeInvalidKey, "key is invalid for the configured index variant").
		WithKey(key).
		WithDetail("reason", reason)
}
