// Package options provides data structures and functions for configuring an
// Ignite store. It defines the two construction modes described by the
// storage specification — OffHeap (anonymous mapped memory, bounded by a
// configured maximum) and Mmap (a memory-mapped file, either persistent or
// temporary) — along with the index variant and sizing knobs that apply to
// both.
package options

import (
	"strings"
)

// Mode selects which region/allocator backend a store is built on.
type Mode int

const (
	// ModeOffHeap backs the store with an anonymous memory mapping bounded by
	// MaxMemory. Values are lost when the process exits.
	ModeOffHeap Mode = iota

	// ModeMmap backs the store with a memory-mapped file. Depending on
	// Path.Kind, the file is either persistent (survives a graceful close and
	// reopen) or temporary (unlinked on close).
	ModeMmap
)

func (m Mode) String() string {
	switch m {
	case ModeOffHeap:
		return "off-heap"
	case ModeMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// IndexVariant selects which index implementation maps keys to (address,
// size) locators.
type IndexVariant int

const (
	// IndexHash is a single concurrent hash table.
	IndexHash IndexVariant = iota

	// IndexSegmented is an array of independently locked hash table shards.
	IndexSegmented

	// IndexLongPrimitive is an open-addressed table over int64 keys stored in
	// parallel primitive arrays. Only valid when the store's key type is int64.
	IndexLongPrimitive

	// IndexIntPrimitive is the int32-keyed counterpart of IndexLongPrimitive.
	IndexIntPrimitive
)

func (v IndexVariant) String() string {
	switch v {
	case IndexHash:
		return "hash"
	case IndexSegmented:
		return "segmented"
	case IndexLongPrimitive:
		return "long-primitive"
	case IndexIntPrimitive:
		return "int-primitive"
	default:
		return "unknown"
	}
}

// PathKind distinguishes a persistent mmap file from a temporary one.
type PathKind int

const (
	// PathPersistent names a file on disk that survives a graceful close and
	// can be reopened by a later session.
	PathPersistent PathKind = iota

	// PathTemporary generates a path under the OS temp directory and unlinks
	// it when the store is closed.
	PathTemporary
)

// PathSpec describes where an Mmap-mode store's backing file lives.
type PathSpec struct {
	Kind PathKind
	Path string // Only meaningful when Kind == PathPersistent.
}

// Options holds every configuration parameter for an Ignite store. It is
// built via NewDefaultOptions and a chain of OptionFunc values; it never
// holds codecs, since Options is not generic over the store's key/value
// types — codecs are supplied directly to the constructor that opens a
// store.
type Options struct {
	// Mode selects the OffHeap or Mmap backend.
	Mode Mode

	// MaxMemory bounds an OffHeap store's total allocation, in bytes.
	MaxMemory uint64

	// Path describes an Mmap store's backing file.
	Path PathSpec

	// AllocateSize is the initial (and, absent cross-session growth, total)
	// size of an Mmap store's backing file, in bytes.
	AllocateSize uint64

	// IndexVariant selects the index implementation.
	IndexVariant IndexVariant

	// Segments is the shard count for IndexSegmented. WithSegments rounds it
	// up to the next power of two; a value set directly is not rounded, and
	// Validate only rejects 0.
	Segments uint32

	// InitialCapacity is the starting bucket/slot count for the index.
	// Primitive variants round this up to the next power of two.
	InitialCapacity uint32

	// DataDir resolves a relative persistent path; Mmap mode joins a
	// non-absolute PathSpec.Path under it.
	DataDir string
}

// OptionFunc is a function type that modifies an Ignite store's configuration.
type OptionFunc func(*Options)

// WithMode selects the OffHeap or Mmap backend.
func WithMode(mode Mode) OptionFunc {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithMaxMemory sets the byte ceiling for an OffHeap store.
func WithMaxMemory(bytes uint64) OptionFunc {
	return func(o *Options) {
		if bytes >= MinMaxMemory {
			o.MaxMemory = bytes
		}
	}
}

// WithPersistentPath configures Mmap mode to use a durable file at path.
func WithPersistentPath(path string) OptionFunc {
	return func(o *Options) {
		path = strings.TrimSpace(path)
		if path != "" {
			o.Mode = ModeMmap
			o.Path = PathSpec{Kind: PathPersistent, Path: path}
		}
	}
}

// WithTemporaryPath configures Mmap mode to use a generated, delete-on-close file.
func WithTemporaryPath() OptionFunc {
	return func(o *Options) {
		o.Mode = ModeMmap
		o.Path = PathSpec{Kind: PathTemporary}
	}
}

// WithAllocateSize sets the backing file size for Mmap mode.
func WithAllocateSize(bytes uint64) OptionFunc {
	return func(o *Options) {
		if bytes >= MinAllocateSize {
			o.AllocateSize = bytes
		}
	}
}

// WithIndexVariant selects the index implementation.
func WithIndexVariant(variant IndexVariant) OptionFunc {
	return func(o *Options) {
		o.IndexVariant = variant
	}
}

// WithSegments sets the shard count for IndexSegmented. Values that are not
// already a power of two are rounded up.
func WithSegments(count uint32) OptionFunc {
	return func(o *Options) {
		if count == 0 {
			return
		}
		o.Segments = nextPowerOfTwo(count)
	}
}

// WithInitialCapacity sets the starting capacity of the index.
func WithInitialCapacity(capacity uint32) OptionFunc {
	return func(o *Options) {
		if capacity > 0 {
			o.InitialCapacity = capacity
		}
	}
}

// WithDataDir sets the base directory used to resolve a relative persistent path.
func WithDataDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.DataDir = directory
		}
	}
}

func nextPowerOfTwo(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
