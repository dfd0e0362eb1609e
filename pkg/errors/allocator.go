package errors

// AllocatorError is a specialized error type for allocator-related failures:
// out-of-space conditions in the slab and mmap bump allocators, and
// allocation/free calls made with inconsistent size bookkeeping.
type AllocatorError struct {
	*baseError

	sizeClass uint32 // Size class the request was rounded to, if applicable.
	requested uint32 // The size that was requested from the allocator.
	available uint64 // Remaining space at the time of the failure.
}

// NewAllocatorError creates a new allocator-specific error.
func NewAllocatorError(err error, code ErrorCode, msg string) *AllocatorError {
	return &AllocatorError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while maintaining the AllocatorError type.
func (ae *AllocatorError) WithMessage(msg string) *AllocatorError {
	ae.baseError.WithMessage(msg)
	return ae
}

// WithCode sets the error code while preserving the AllocatorError type.
func (ae *AllocatorError) WithCode(code ErrorCode) *AllocatorError {
	ae.baseError.WithCode(code)
	return ae
}

// WithDetail adds contextual information while maintaining the AllocatorError type.
func (ae *AllocatorError) WithDetail(key string, value any) *AllocatorError {
	ae.baseError.WithDetail(key, value)
	return ae
}

// WithSizeClass records which size class the request was routed to.
func (ae *AllocatorError) WithSizeClass(class uint32) *AllocatorError {
	ae.sizeClass = class
	return ae
}

// WithRequested records the size that was requested from the allocator.
func (ae *AllocatorError) WithRequested(size uint32) *AllocatorError {
	ae.requested = size
	return ae
}

// WithAvailable records the remaining capacity at the time of the failure.
func (ae *AllocatorError) WithAvailable(available uint64) *AllocatorError {
	ae.available = available
	return ae
}

// SizeClass returns the size class the request was routed to.
func (ae *AllocatorError) SizeClass() uint32 {
	return ae.sizeClass
}

// Requested returns the size that was requested from the allocator.
func (ae *AllocatorError) Requested() uint32 {
	return ae.requested
}

// Available returns the remaining capacity at the time of the failure.
func (ae *AllocatorError) Available() uint64 {
	return ae.available
}

// NewOutOfSpaceError creates an error for an allocation that would exceed the
// allocator's configured limit.
func NewOutOfSpaceError(requested uint32, available uint64) *AllocatorError {
	return NewAllocatorError(nil, ErrorCodeOutOfSpace, "allocator has insufficient space for this request").
		WithRequested(requested).
		WithAvailable(available)
}

// NewInvalidSizeError creates an error for a zero-byte allocation request. A
// codec that reports a negative size is reported by NewNegativeSizeError.
func NewInvalidSizeError(requested uint32) *AllocatorError {
	return NewAllocatorError(nil, ErrorCodeInvalidSize, "allocation size must be greater than zero").
		WithRequested(requested)
}
