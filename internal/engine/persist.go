package engine

import (
	"bytes"
	"encoding/binary"

	"github.com/iamNilotpal/ignite/internal/index"
	"github.com/iamNilotpal/ignite/internal/storage"
	"github.com/iamNilotpal/ignite/pkg/errors"
	"github.com/iamNilotpal/ignite/pkg/options"
)

// indexRecordHeaderSize is the fixed-width portion of each serialized index
// entry: a uint32 key length, a uint64 address, and an int32 size.
const indexRecordHeaderSize = 4 + 8 + 4

// serializeIndex walks every entry via index.ForEach and renders it as
// [u32 keyLen][u64 address][i32 size][keyBytes], back to back, in
// iteration order: the fixed-width fields come first and the key bytes
// follow them, not the length prefix. The entry count itself is not repeated here; it is
// carried in the store's Header instead, since Header is fixed-size and
// known before the index walk runs.
func (e *Engine[K, V]) serializeIndex() []byte {
	var buf bytes.Buffer
	var header [indexRecordHeaderSize]byte

	e.index.ForEach(func(key K, entry index.Entry) bool {
		keyBytes := e.keyCodec.EncodeKey(key)
		binary.NativeEndian.PutUint32(header[0:4], uint32(len(keyBytes)))
		binary.NativeEndian.PutUint64(header[4:12], entry.Address)
		binary.NativeEndian.PutUint32(header[12:16], uint32(entry.Size))
		buf.Write(header[:])
		buf.Write(keyBytes)
		return true
	})

	return buf.Bytes()
}

// persistIndex writes the serialized index past the end of the mapped
// payload area and records its location, size, entry count, and the
// allocator's bump offset in the store's Header. Called once, from Close.
func (e *Engine[K, V]) persistIndex() error {
	data := e.serializeIndex()
	indexOffset := e.storage.Capacity()

	if err := e.storage.WriteIndexSection(indexOffset, data); err != nil {
		return err
	}

	var currentOffset uint64
	if bump, ok := e.allocator.(interface{ CurrentOffset() uint64 }); ok {
		currentOffset = bump.CurrentOffset()
	}

	var segments uint32
	if e.options.IndexVariant == options.IndexSegmented {
		segments = e.options.Segments
	}

	header := &storage.Header{
		Magic:         storage.Magic,
		Version:       storage.Version,
		IndexType:     uint32(e.options.IndexVariant),
		Segments:      segments,
		EntryCount:    uint64(e.index.Len()),
		CurrentOffset: currentOffset,
		IndexOffset:   indexOffset,
		IndexSize:     uint64(len(data)),
	}
	return e.storage.WriteHeader(header)
}

// restoreIndex is the inverse of persistIndex, run from New when OpenMmap
// reports an existing (non-fresh) file. It reads the index section named by
// header and replays every entry into the freshly built, empty index via
// PutAndGetOld — the same atomic insertion path a live Put uses, so there is
// only one code path that knows how to populate an index.
func (e *Engine[K, V]) restoreIndex(header *storage.Header) error {
	if header.IndexSize == 0 {
		return nil
	}

	data, err := e.storage.ReadIndexSection(header.IndexOffset, header.IndexSize)
	if err != nil {
		return err
	}

	offset := 0
	for i := uint64(0); i < header.EntryCount; i++ {
		if offset+indexRecordHeaderSize > len(data) {
			return errors.NewIndexCorruptionError("restoreIndex", int(header.EntryCount), nil)
		}

		keyLen := int(binary.NativeEndian.Uint32(data[offset : offset+4]))
		address := binary.NativeEndian.Uint64(data[offset+4 : offset+12])
		size := int32(binary.NativeEndian.Uint32(data[offset+12 : offset+16]))
		offset += indexRecordHeaderSize

		if offset+keyLen > len(data) {
			return errors.NewIndexCorruptionError("restoreIndex", int(header.EntryCount), nil)
		}
		key := e.keyCodec.DecodeKey(data[offset : offset+keyLen])
		offset += keyLen

		e.index.PutAndGetOld(key, index.Entry{Address: address, Size: size})
	}

	return nil
}
