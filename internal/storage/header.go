package storage

import (
	"encoding/binary"

	"github.com/iamNilotpal/ignite/pkg/errors"
)

// HeaderSize is the fixed size, in bytes, reserved at the front of an mmap
// file for the Header. It is deliberately page-aligned so the payload area
// that follows it starts on its own page.
const HeaderSize = 4096

// Magic identifies a file as an ignite mmap store: the ASCII bytes "RMAP"
// read as a big-endian uint32, written to the file in host-native order.
const Magic uint32 = 0x524D4150

// Version is bumped whenever the on-disk Header or index wire format
// changes incompatibly.
const Version uint32 = 1

// Header is the fixed-layout metadata block persisted at the start of
// every mmap-backed store file. Every field is written in host-native byte
// order, matching the rest of this store's on-disk formats: an ignite file
// is not portable across machines with
// different endianness.
type Header struct {
	Magic         uint32
	Version       uint32
	IndexType     uint32
	Segments      uint32 // segment count for IndexSegmented; unused (0) by every other variant
	EntryCount    uint64
	CurrentOffset uint64 // mmap allocator bump pointer, relative to the payload area
	IndexOffset   uint64 // absolute file offset where the serialized index begins
	IndexSize     uint64 // byte length of the serialized index section
}

// encode renders h into a HeaderSize-byte buffer suitable for writing at
// file offset 0.
func (h *Header) encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.NativeEndian.PutUint32(buf[0:4], h.Magic)
	binary.NativeEndian.PutUint32(buf[4:8], h.Version)
	binary.NativeEndian.PutUint32(buf[8:12], h.IndexType)
	binary.NativeEndian.PutUint32(buf[12:16], h.Segments)
	binary.NativeEndian.PutUint64(buf[16:24], h.EntryCount)
	binary.NativeEndian.PutUint64(buf[24:32], h.CurrentOffset)
	binary.NativeEndian.PutUint64(buf[32:40], h.IndexOffset)
	binary.NativeEndian.PutUint64(buf[40:48], h.IndexSize)
	return buf
}

// decodeHeader parses a HeaderSize-byte buffer read from file offset 0.
// It returns an IncompatibleFile error if the magic or version doesn't
// match what this build writes.
func decodeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, errors.NewStorageError(
			nil, errors.ErrorCodeHeaderReadFailure, "file is too short to contain a header",
		)
	}

	h := &Header{
		Magic:         binary.NativeEndian.Uint32(buf[0:4]),
		Version:       binary.NativeEndian.Uint32(buf[4:8]),
		IndexType:     binary.NativeEndian.Uint32(buf[8:12]),
		Segments:      binary.NativeEndian.Uint32(buf[12:16]),
		EntryCount:    binary.NativeEndian.Uint64(buf[16:24]),
		CurrentOffset: binary.NativeEndian.Uint64(buf[24:32]),
		IndexOffset:   binary.NativeEndian.Uint64(buf[32:40]),
		IndexSize:     binary.NativeEndian.Uint64(buf[40:48]),
	}

	if h.Magic != Magic {
		return nil, errors.NewStorageError(
			nil, errors.ErrorCodeIncompatibleFile, "file does not carry the ignite mmap magic number",
		).WithDetail("magic", h.Magic)
	}
	if h.Version != Version {
		return nil, errors.NewStorageError(
			nil, errors.ErrorCodeIncompatibleFile, "file was written by an incompatible version",
		).WithDetail("version", h.Version)
	}

	return h, nil
}
