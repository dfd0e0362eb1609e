// Package mem provides the raw, unchecked memory primitives every other
// component in the store is built on: typed load/store at an integer
// address, atomic fences and compare-and-swap, and bulk copy/fill between
// addresses and byte slices.
//
// Every function here trusts its caller completely. There is no bounds
// checking, no nil checking beyond what the runtime gives for free, and no
// recovery from a bad address: all access is bounds-checked by the caller,
// the primitives themselves are unchecked. Allocators and codecs are the
// only callers; user code never touches this package.
//
// Endianness is the host's native byte order throughout. A store built on
// this package is not portable across machines with different byte orders,
// by design.
package mem

import (
	"sync/atomic"
	"unsafe"
)

// LoadInt8 reads a signed byte at addr.
func LoadInt8(addr uintptr) int8 { return *(*int8)(unsafe.Pointer(addr)) }

// StoreInt8 writes a signed byte at addr.
func StoreInt8(addr uintptr, v int8) { *(*int8)(unsafe.Pointer(addr)) = v }

// LoadInt16 reads a little/native-endian 16-bit signed integer at addr.
func LoadInt16(addr uintptr) int16 { return *(*int16)(unsafe.Pointer(addr)) }

// StoreInt16 writes a 16-bit signed integer at addr.
func StoreInt16(addr uintptr, v int16) { *(*int16)(unsafe.Pointer(addr)) = v }

// LoadInt32 reads a 32-bit signed integer at addr.
func LoadInt32(addr uintptr) int32 { return *(*int32)(unsafe.Pointer(addr)) }

// StoreInt32 writes a 32-bit signed integer at addr.
func StoreInt32(addr uintptr, v int32) { *(*int32)(unsafe.Pointer(addr)) = v }

// LoadInt64 reads a 64-bit signed integer at addr.
func LoadInt64(addr uintptr) int64 { return *(*int64)(unsafe.Pointer(addr)) }

// StoreInt64 writes a 64-bit signed integer at addr.
func StoreInt64(addr uintptr, v int64) { *(*int64)(unsafe.Pointer(addr)) = v }

// LoadFloat32 reads a 32-bit IEEE-754 float at addr.
func LoadFloat32(addr uintptr) float32 { return *(*float32)(unsafe.Pointer(addr)) }

// StoreFloat32 writes a 32-bit IEEE-754 float at addr.
func StoreFloat32(addr uintptr, v float32) { *(*float32)(unsafe.Pointer(addr)) = v }

// LoadFloat64 reads a 64-bit IEEE-754 float at addr.
func LoadFloat64(addr uintptr) float64 { return *(*float64)(unsafe.Pointer(addr)) }

// StoreFloat64 writes a 64-bit IEEE-754 float at addr.
func StoreFloat64(addr uintptr, v float64) { *(*float64)(unsafe.Pointer(addr)) = v }

// LoadBool reads a boolean encoded as a single byte at addr.
func LoadBool(addr uintptr) bool { return LoadInt8(addr) != 0 }

// StoreBool writes a boolean encoded as a single byte at addr.
func StoreBool(addr uintptr, v bool) {
	if v {
		StoreInt8(addr, 1)
	} else {
		StoreInt8(addr, 0)
	}
}

// LoadVolatileInt32 performs a sequentially-consistent load of the 32-bit
// integer at addr.
func LoadVolatileInt32(addr uintptr) int32 {
	return atomic.LoadInt32((*int32)(unsafe.Pointer(addr)))
}

// StoreVolatileInt32 performs a sequentially-consistent store of the 32-bit
// integer at addr.
func StoreVolatileInt32(addr uintptr, v int32) {
	atomic.StoreInt32((*int32)(unsafe.Pointer(addr)), v)
}

// CASInt32 performs a sequentially-consistent compare-and-swap of the 32-bit
// integer at addr.
func CASInt32(addr uintptr, old, new int32) bool {
	return atomic.CompareAndSwapInt32((*int32)(unsafe.Pointer(addr)), old, new)
}

// LoadVolatileInt64 performs a sequentially-consistent load of the 64-bit
// integer at addr.
func LoadVolatileInt64(addr uintptr) int64 {
	return atomic.LoadInt64((*int64)(unsafe.Pointer(addr)))
}

// StoreVolatileInt64 performs a sequentially-consistent store of the 64-bit
// integer at addr.
func StoreVolatileInt64(addr uintptr, v int64) {
	atomic.StoreInt64((*int64)(unsafe.Pointer(addr)), v)
}

// CASInt64 performs a sequentially-consistent compare-and-swap of the 64-bit
// integer at addr.
func CASInt64(addr uintptr, old, new int64) bool {
	return atomic.CompareAndSwapInt64((*int64)(unsafe.Pointer(addr)), old, new)
}

// CASUint64 performs a sequentially-consistent compare-and-swap of the
// unsigned 64-bit integer at addr.
func CASUint64(addr uintptr, old, new uint64) bool {
	return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), old, new)
}

// Copy bulk-transfers n bytes from src to dst. The two ranges must not
// overlap; callers that need overlap-safe semantics should use Go's own
// slice copy instead of raw addresses.
func Copy(dst, src uintptr, n int) {
	if n <= 0 {
		return
	}
	dstSlice := unsafe.Slice((*byte)(unsafe.Pointer(dst)), n)
	srcSlice := unsafe.Slice((*byte)(unsafe.Pointer(src)), n)
	copy(dstSlice, srcSlice)
}

// CopyFromBytes copies n bytes from src[srcOff:srcOff+n] to dst.
func CopyFromBytes(src []byte, srcOff int, dst uintptr, n int) {
	if n <= 0 {
		return
	}
	dstSlice := unsafe.Slice((*byte)(unsafe.Pointer(dst)), n)
	copy(dstSlice, src[srcOff:srcOff+n])
}

// CopyToBytes copies n bytes from src into dst[dstOff:dstOff+n].
func CopyToBytes(src uintptr, dst []byte, dstOff int, n int) {
	if n <= 0 {
		return
	}
	srcSlice := unsafe.Slice((*byte)(unsafe.Pointer(src)), n)
	copy(dst[dstOff:dstOff+n], srcSlice)
}

// Fill writes n copies of b starting at addr.
func Fill(addr uintptr, n int, b byte) {
	if n <= 0 {
		return
	}
	s := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	for i := range s {
		s[i] = b
	}
}

// BufferBase returns the address of buf's first byte, or 0 for an empty
// slice. This is how every mapped region (anonymous or file-backed) hands
// its backing []byte to the address-based primitives above.
func BufferBase(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}
