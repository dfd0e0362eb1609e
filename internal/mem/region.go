package mem

import (
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/iamNilotpal/ignite/pkg/errors"
)

// SegmentSize bounds a single mmap call. A store backed by more bytes than
// this gets multiple segments stitched together by Region. On 64-bit Linux
// a single unix.Mmap call could in practice address far more than this, but
// capping it keeps address translation cheap (a shift and a mask) and keeps
// the region resizable one segment at a time instead of requiring one giant
// contiguous reservation up front.
const SegmentSize = 1 << 30 // 1 GiB

// Region is a growable span of addressable memory backed either by an
// anonymous mapping (OffHeap mode) or a file (Mmap mode). It hands out
// addresses via Address, which callers feed into the Load/Store/Copy
// primitives in this package.
type Region struct {
	segments atomic.Value // []region_segment, replaced wholesale under growMu
	length   atomic.Uint64
	growMu   sync.Mutex // serializes appends to segments; readers never block on it
	file     *os.File   // nil for anonymous regions
}

type region_segment struct {
	buf []byte
}

func (r *Region) loadSegments() []region_segment {
	v, _ := r.segments.Load().([]region_segment)
	return v
}

// NewAnonymous reserves size bytes of anonymous, zero-filled memory not
// backed by any file. The mapping disappears when the Region is closed or
// the process exits; it is never persisted.
func NewAnonymous(size uint64) (*Region, error) {
	r := &Region{}
	if err := r.grow(size); err != nil {
		return nil, err
	}
	return r, nil
}

// NewFile maps size bytes of file, which must already be at least that long
// (see filesys.ExtendFile). The Region keeps file open for the lifetime of
// the mapping so Flush can call msync and Close can unmap cleanly.
func NewFile(file *os.File, size uint64) (*Region, error) {
	r := &Region{file: file}
	if err := r.grow(size); err != nil {
		return nil, err
	}
	return r, nil
}

// Grow extends the region, mapping whatever additional whole or partial
// segments are needed to reach size bytes total, mirroring Stor.getChunk's
// "map chunks lazily as the store grows" behavior: the segment list is
// replaced wholesale under growMu so concurrent readers calling Address or
// Slice never observe a partially-built slice.
func (r *Region) Grow(size uint64) error {
	r.growMu.Lock()
	defer r.growMu.Unlock()
	return r.grow(size)
}

func (r *Region) grow(size uint64) error {
	segments := r.loadSegments()
	length := r.length.Load()

	for length < size {
		remaining := size - length
		segLen := uint64(SegmentSize)
		if remaining < segLen {
			segLen = remaining
		}

		var buf []byte
		var err error
		if r.file != nil {
			buf, err = unix.Mmap(
				int(r.file.Fd()), int64(length), int(segLen),
				unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED,
			)
		} else {
			buf, err = unix.Mmap(
				-1, 0, int(segLen),
				unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE,
			)
		}
		if err != nil {
			return errors.NewStorageIOError("mmap", err)
		}

		segments = append(segments, region_segment{buf: buf})
		length += segLen
	}

	r.segments.Store(segments)
	r.length.Store(length)
	return nil
}

// Length reports the total number of addressable bytes across all segments.
func (r *Region) Length() uint64 { return r.length.Load() }

// Address translates a region-relative offset into a process address
// usable with the Load/Store/Copy primitives. It panics only when offset
// maps past the last segment; an offset beyond Length that still falls in
// the last segment's slot is not detected, so callers are expected to
// bounds-check beforehand, per this package's unchecked-primitives contract.
func (r *Region) Address(offset uint64) uintptr {
	segIdx := offset / SegmentSize
	intra := offset % SegmentSize
	seg := r.loadSegments()[segIdx]
	return BufferBase(seg.buf) + uintptr(intra)
}

// Slice returns the raw bytes of the segment containing offset, truncated
// to the requested length if the range does not cross a segment boundary.
// It gives a caller a real []byte instead of an address when that is more
// convenient.
func (r *Region) Slice(offset uint64, length int) []byte {
	segIdx := offset / SegmentSize
	intra := offset % SegmentSize
	seg := r.loadSegments()[segIdx].buf
	return seg[intra : intra+uint64(length)]
}

// Flush calls msync on every segment backed by a file. It is a no-op for
// anonymous regions, which are never durable.
func (r *Region) Flush() error {
	if r.file == nil {
		return nil
	}
	for _, seg := range r.loadSegments() {
		if len(seg.buf) == 0 {
			continue
		}
		if err := unix.Msync(seg.buf, unix.MS_SYNC); err != nil {
			return errors.NewStorageIOError("msync", err)
		}
	}
	return nil
}

// Close unmaps every segment. The caller remains responsible for closing
// the backing file, if any.
func (r *Region) Close() error {
	for _, seg := range r.loadSegments() {
		if len(seg.buf) == 0 {
			continue
		}
		if err := unix.Munmap(seg.buf); err != nil {
			return errors.NewStorageIOError("munmap", err)
		}
	}
	r.segments.Store([]region_segment(nil))
	r.length.Store(0)
	return nil
}
